package conversation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/conversation"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

var errConversationNotFound = httperr.Missing("conversation_not_found", "Conversation not found.")

func load(ctx context.Context, repo domain.Repository, id uint, actor identity.Actor) (*models.Conversation, error) {
	c, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errConversationNotFound
		}
		return nil, err
	}
	if err := domain.CanAccess(c, actor); err != nil {
		return nil, err
	}
	return c, nil
}

// ======================================================
// LIST
// ======================================================

type ListConversations struct {
	repo domain.Repository
}

func NewListConversations(repo domain.Repository) *ListConversations {
	return &ListConversations{repo: repo}
}

func (uc *ListConversations) Execute(
	ctx context.Context,
	actor identity.Actor,
	limit int,
	offset int,
) ([]models.Conversation, int64, error) {
	return uc.repo.ListForUser(ctx, actor.UserID, limit, offset)
}

// ======================================================
// START
// ======================================================

type StartConversation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartConversation(repo domain.Repository, audit *audit.Dispatcher) *StartConversation {
	return &StartConversation{repo: repo, audit: audit}
}

// Execute returns the single conversation of the unordered pair, creating
// it when absent. created is false when the conversation already existed,
// including when a concurrent request inserted it first.
func (uc *StartConversation) Execute(
	ctx context.Context,
	actor identity.Actor,
	otherID uint,
) (conv *models.Conversation, created bool, err error) {
	pair, err := domain.NewPair(actor.UserID, otherID)
	if err != nil {
		return nil, false, err
	}

	exists, err := uc.repo.UserExists(ctx, otherID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, httperr.Validation("participant2_id", "invalid_participant", "Participant does not exist.")
	}

	conv, err = uc.repo.FindByPair(ctx, pair)
	if err == nil {
		return conv, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	conv = &models.Conversation{ParticipantAID: pair.A, ParticipantBID: pair.B}
	if err := uc.repo.Create(ctx, conv); err != nil {
		if !httperr.IsUniqueViolation(err) {
			return nil, false, err
		}
		existing, ferr := uc.repo.FindByPair(ctx, pair)
		if ferr != nil {
			return nil, false, ferr
		}
		return existing, false, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionConversationStarted,
		Entity:   "conversation",
		EntityID: audit.Ref(conv.ID),
		Metadata: map[string]uint{"participant_a": pair.A, "participant_b": pair.B},
	})
	return conv, true, nil
}

// ======================================================
// GET
// ======================================================

type GetConversation struct {
	repo domain.Repository
}

func NewGetConversation(repo domain.Repository) *GetConversation {
	return &GetConversation{repo: repo}
}

func (uc *GetConversation) Execute(ctx context.Context, actor identity.Actor, id uint) (*models.Conversation, error) {
	if _, err := load(ctx, uc.repo, id, actor); err != nil {
		return nil, err
	}
	return uc.repo.GetWithMessages(ctx, id)
}
