package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/post"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type PostGormRepository struct {
	db *gorm.DB
}

func NewPostGormRepository(db *gorm.DB) *PostGormRepository {
	return &PostGormRepository{db: db}
}

// --------------------------------------------------
// Posts
// --------------------------------------------------

func (r *PostGormRepository) ListVisible(
	ctx context.Context,
	scope domain.Scope,
	limit int,
	offset int,
) ([]models.Post, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Post{})

	switch {
	case scope.All:
	case scope.AuthorID != 0:
		q = q.Where("status = ? OR author_id = ?", string(domain.StatusPublished), scope.AuthorID)
	default:
		q = q.Where("status = ?", string(domain.StatusPublished))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := q.
		Preload("Author").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostGormRepository) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostGormRepository) CreatePost(ctx context.Context, p *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("Author").Create(p).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&p.Author, p.AuthorID).Error
}

func (r *PostGormRepository) UpdatePost(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("content", "image_url", "status", "modified_at").
		Updates(p).Error
}

func (r *PostGormRepository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// --------------------------------------------------
// Comments
// --------------------------------------------------

func (r *PostGormRepository) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *PostGormRepository) CreateComment(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Author", "Post").Create(c).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&c.Author, c.AuthorID).Error
}

var _ domain.Repository = (*PostGormRepository)(nil)
