package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (p *recordingPutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	p.input = in
	p.body, _ = io.ReadAll(in.Body)
	if p.err != nil {
		return nil, p.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	putter := &recordingPutter{}
	store := NewS3Store(putter, "fortune", "https://cdn.example.com/")

	url, err := store.Put(context.Background(), "uploads/1/a.webp", "image/webp", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/uploads/1/a.webp", url)
	assert.Equal(t, "fortune", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "uploads/1/a.webp", aws.ToString(putter.input.Key))
	assert.Equal(t, "image/webp", aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte("data"), putter.body)
}

func TestS3Store_DefaultURLAndError(t *testing.T) {
	store := NewS3Store(&recordingPutter{err: errors.New("denied")}, "fortune", "")
	assert.Equal(t, "https://fortune.s3.amazonaws.com/k", store.URL("k"))

	_, err := store.Put(context.Background(), "k", "image/webp", nil)
	assert.ErrorContains(t, err, "denied")
}
