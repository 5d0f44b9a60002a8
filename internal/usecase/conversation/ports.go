package conversation

import (
	"context"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// Limiter reports whether the user may send another message now.
type Limiter interface {
	Allow(ctx context.Context, userID uint) (bool, error)
}

// Notifier pushes a new message to connected participants. Delivery is
// best-effort and never fails the send.
type Notifier interface {
	NotifyMessage(conv *models.Conversation, msg *models.Message)
}
