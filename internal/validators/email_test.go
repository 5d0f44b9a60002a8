package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IPAddr
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if mx, ok := f.mx[name]; ok {
		return mx, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if ips, ok := f.ips[host]; ok {
		return ips, nil
	}
	return nil, errors.New("no such host")
}

func TestEmailDomainChecker(t *testing.T) {
	v := NewEmailDomainChecker(fakeResolver{
		mx:  map[string][]*net.MX{"mail.example": {{Host: "mx.mail.example", Pref: 10}}},
		ips: map[string][]net.IPAddr{"a.example": {{IP: net.ParseIP("10.0.0.1")}}},
	})
	ctx := context.Background()

	assert.True(t, v.Valid(ctx, "ana@mail.example"))
	assert.True(t, v.Valid(ctx, "ana@a.example"))
	assert.False(t, v.Valid(ctx, "ana@nowhere.example"))
	assert.False(t, v.Valid(ctx, "ana@"))
	assert.False(t, v.Valid(ctx, "no-at-sign"))
}
