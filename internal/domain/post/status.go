package post

import (
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/httperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// InitialStatus is the status of every newly created post.
func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusPublished, StatusRejected:
		return st, nil
	default:
		return "", httperr.Validation("status", "invalid_status", "Status must be pending, published or rejected.")
	}
}
