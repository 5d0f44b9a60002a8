package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/conversation"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

func (uc *ListMessages) Execute(ctx context.Context, actor identity.Actor, conversationID uint) ([]models.Message, error) {
	if _, err := load(ctx, uc.repo, conversationID, actor); err != nil {
		return nil, err
	}
	return uc.repo.ListMessages(ctx, conversationID)
}

type SendMessageInput struct {
	Content  string
	ImageURL string
}

type SendMessage struct {
	repo     domain.Repository
	limiter  Limiter
	notifier Notifier
	audit    *audit.Dispatcher
}

// NewSendMessage accepts a nil limiter (no rate limit) and a nil notifier
// (no realtime push).
func NewSendMessage(
	repo domain.Repository,
	limiter Limiter,
	notifier Notifier,
	audit *audit.Dispatcher,
) *SendMessage {
	return &SendMessage{repo: repo, limiter: limiter, notifier: notifier, audit: audit}
}

func (uc *SendMessage) Execute(
	ctx context.Context,
	actor identity.Actor,
	conversationID uint,
	in SendMessageInput,
) (*models.Message, error) {
	conv, err := load(ctx, uc.repo, conversationID, actor)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(in.Content)
	imageURL := strings.TrimSpace(in.ImageURL)
	if content == "" && imageURL == "" {
		return nil, httperr.Validation("content", "required", "A message needs content or an image.")
	}

	if uc.limiter != nil {
		ok, err := uc.limiter.Allow(ctx, actor.UserID)
		if err != nil {
			// Limiter failures fail open.
			slog.Warn("rate limiter unavailable", slog.String("error", err.Error()))
		} else if !ok {
			return nil, httperr.RateLimited("message_rate_limited")
		}
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       actor.UserID,
		Content:        content,
		ImageURL:       imageURL,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		uc.notifier.NotifyMessage(conv, msg)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionMessageSent,
		Entity:   "message",
		EntityID: audit.Ref(msg.ID),
		Metadata: map[string]uint{"conversation_id": conv.ID},
	})
	return msg, nil
}
