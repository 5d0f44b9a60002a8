package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Resolver is satisfied by *net.Resolver.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type EmailDomainChecker struct {
	resolver Resolver
	timeout  time.Duration
}

func NewEmailDomainChecker(resolver Resolver) *EmailDomainChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: resolver, timeout: 3 * time.Second}
}

// Valid reports whether the address's domain has an MX record or, failing
// that, resolves to an address.
func (v *EmailDomainChecker) Valid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	if mx, err := v.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := v.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
