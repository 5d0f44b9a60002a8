package models

import "time"

type Post struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`

	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `gorm:"size:500" json:"image_url"`
	Status   string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	ModifiedAt time.Time `gorm:"autoUpdateTime" json:"modified_at"`
}

type Comment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PostID uint `gorm:"not null;index" json:"post_id"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID uint `gorm:"not null" json:"author_id"`
	Author   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`

	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
