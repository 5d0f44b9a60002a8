package post

import (
	"context"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type Repository interface {
	// -------- Posts --------
	// ListVisible orders newest first, ties broken by id descending.
	ListVisible(ctx context.Context, scope Scope, limit, offset int) ([]models.Post, int64, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	CreatePost(ctx context.Context, p *models.Post) error
	UpdatePost(ctx context.Context, p *models.Post) error
	// DeletePost removes the post and its comments.
	DeletePost(ctx context.Context, id uint) error

	// -------- Comments --------
	ListComments(ctx context.Context, postID uint) ([]models.Comment, error)
	CreateComment(ctx context.Context, c *models.Comment) error
}
