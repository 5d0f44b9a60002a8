package dto

import (
	"time"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type PostDTO struct {
	ID         uint           `json:"id"`
	Author     UserSummaryDTO `json:"author"`
	Content    string         `json:"content"`
	ImageURL   string         `json:"image_url"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ModifiedAt time.Time      `json:"modified_at"`
}

type CommentDTO struct {
	ID        uint           `json:"id"`
	PostID    uint           `json:"post_id"`
	Author    UserSummaryDTO `json:"author"`
	Content   string         `json:"content"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewPost(p *models.Post) PostDTO {
	return PostDTO{
		ID:         p.ID,
		Author:     NewUserSummary(p.Author),
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
}

func NewPosts(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for i := range posts {
		out = append(out, NewPost(&posts[i]))
	}
	return out
}

func NewComment(c *models.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    NewUserSummary(c.Author),
		Content:   c.Content,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
	}
}

func NewComments(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, NewComment(&comments[i]))
	}
	return out
}
