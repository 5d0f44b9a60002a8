package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/infra/imageproc"
)

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type ImageProcessor interface {
	Process(data []byte) ([]byte, error)
}

type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type UploadImage struct {
	processor ImageProcessor
	store     ObjectStore
}

func NewUploadImage(processor ImageProcessor, store ObjectStore) *UploadImage {
	return &UploadImage{processor: processor, store: store}
}

func (uc *UploadImage) Execute(ctx context.Context, actor identity.Actor, data []byte) (*Result, error) {
	if !actor.IsAuthenticated() {
		return nil, httperr.Forbidden("authentication_required")
	}
	if len(data) == 0 {
		return nil, httperr.Validation("file", "required", "No file was submitted.")
	}

	out, err := uc.processor.Process(data)
	if err != nil {
		if errors.Is(err, imageproc.ErrUnsupportedImage) {
			return nil, httperr.Validation("file", "invalid_image", "Upload a valid JPEG, PNG, GIF or WebP image.")
		}
		return nil, err
	}

	key := fmt.Sprintf("uploads/%d/%s.webp", actor.UserID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imageproc.ContentType, out)
	if err != nil {
		return nil, err
	}
	return &Result{URL: url, Key: key}, nil
}
