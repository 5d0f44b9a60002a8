package models

import "time"

// Conversation is stored with ParticipantAID < ParticipantBID so the
// unique index covers the unordered pair.
type Conversation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ParticipantAID uint `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:1" json:"participant_a_id"`
	ParticipantA   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"participant_a"`

	ParticipantBID uint `gorm:"not null;uniqueIndex:idx_conversation_pair,priority:2;index" json:"participant_b_id"`
	ParticipantB   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"participant_b"`

	Messages []Message `gorm:"constraint:OnDelete:CASCADE;" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConversationID uint `gorm:"not null;index" json:"conversation_id"`

	SenderID uint `gorm:"not null" json:"sender_id"`
	Sender   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`

	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
