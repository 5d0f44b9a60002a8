package conversation

import (
	"context"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type Repository interface {
	UserExists(ctx context.Context, id uint) (bool, error)

	// -------- Conversations --------
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Conversation, int64, error)
	// FindByPair returns gorm.ErrRecordNotFound when the pair has no conversation.
	FindByPair(ctx context.Context, pair Pair) (*models.Conversation, error)
	// Create fails with a unique violation when the pair already exists.
	Create(ctx context.Context, c *models.Conversation) error
	Get(ctx context.Context, id uint) (*models.Conversation, error)
	GetWithMessages(ctx context.Context, id uint) (*models.Conversation, error)

	// -------- Messages --------
	ListMessages(ctx context.Context, conversationID uint) ([]models.Message, error)
	CreateMessage(ctx context.Context, m *models.Message) error
}
