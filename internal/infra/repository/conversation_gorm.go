package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/conversation"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type ConversationGormRepository struct {
	db *gorm.DB
}

func NewConversationGormRepository(db *gorm.DB) *ConversationGormRepository {
	return &ConversationGormRepository{db: db}
}

func preloadParticipants(db *gorm.DB) *gorm.DB {
	return db.Preload("ParticipantA").Preload("ParticipantB")
}

func (r *ConversationGormRepository) UserExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Conversations
// --------------------------------------------------

func (r *ConversationGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
	limit int,
	offset int,
) ([]models.Conversation, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Conversation
	if err := preloadParticipants(q).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ConversationGormRepository) FindByPair(ctx context.Context, pair domain.Pair) (*models.Conversation, error) {
	var c models.Conversation
	if err := preloadParticipants(r.db.WithContext(ctx)).
		Where("participant_a_id = ? AND participant_b_id = ?", pair.A, pair.B).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationGormRepository) Create(ctx context.Context, c *models.Conversation) error {
	if err := r.db.WithContext(ctx).
		Omit("ParticipantA", "ParticipantB", "Messages").
		Create(c).Error; err != nil {
		return err
	}
	return preloadParticipants(r.db.WithContext(ctx)).First(c, c.ID).Error
}

func (r *ConversationGormRepository) Get(ctx context.Context, id uint) (*models.Conversation, error) {
	var c models.Conversation
	if err := preloadParticipants(r.db.WithContext(ctx)).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationGormRepository) GetWithMessages(ctx context.Context, id uint) (*models.Conversation, error) {
	var c models.Conversation
	if err := preloadParticipants(r.db.WithContext(ctx)).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC").Order("messages.id ASC")
		}).
		Preload("Messages.Sender").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *ConversationGormRepository) ListMessages(ctx context.Context, conversationID uint) ([]models.Message, error) {
	var out []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConversationGormRepository) CreateMessage(ctx context.Context, m *models.Message) error {
	if err := r.db.WithContext(ctx).Omit("Sender").Create(m).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&m.Sender, m.SenderID).Error
}

var _ domain.Repository = (*ConversationGormRepository)(nil)
