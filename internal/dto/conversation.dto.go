package dto

import (
	"time"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type MessageDTO struct {
	ID             uint           `json:"id"`
	ConversationID uint           `json:"conversation_id"`
	Sender         UserSummaryDTO `json:"sender"`
	Content        string         `json:"content"`
	ImageURL       string         `json:"image_url"`
	CreatedAt      time.Time      `json:"created_at"`
}

type ConversationDTO struct {
	ID           uint             `json:"id"`
	Participants []UserSummaryDTO `json:"participants"`
	Messages     []MessageDTO     `json:"messages,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func NewMessage(m *models.Message) MessageDTO {
	return MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         NewUserSummary(m.Sender),
		Content:        m.Content,
		ImageURL:       m.ImageURL,
		CreatedAt:      m.CreatedAt,
	}
}

func NewMessages(msgs []models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, NewMessage(&msgs[i]))
	}
	return out
}

// NewConversation leaves Messages empty unless they were loaded.
func NewConversation(c *models.Conversation) ConversationDTO {
	out := ConversationDTO{
		ID: c.ID,
		Participants: []UserSummaryDTO{
			NewUserSummary(c.ParticipantA),
			NewUserSummary(c.ParticipantB),
		},
		CreatedAt: c.CreatedAt,
	}
	if len(c.Messages) > 0 {
		out.Messages = NewMessages(c.Messages)
	}
	return out
}

func NewConversations(list []models.Conversation) []ConversationDTO {
	out := make([]ConversationDTO, 0, len(list))
	for i := range list {
		out = append(out, NewConversation(&list[i]))
	}
	return out
}
