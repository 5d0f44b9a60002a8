package post

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/post"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

var errPostNotFound = httperr.Missing("post_not_found", "Post not found.")

// load hides posts the viewer may not see behind the same 404 as missing ones.
func load(ctx context.Context, repo domain.Repository, id uint, viewer identity.Actor) (*models.Post, error) {
	p, err := repo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPostNotFound
		}
		return nil, err
	}
	if !domain.Visible(p, viewer) {
		return nil, errPostNotFound
	}
	return p, nil
}

func validContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", httperr.Validation("content", "required", "This field is required.")
	}
	return content, nil
}

// ======================================================
// LIST
// ======================================================

type ListPosts struct {
	repo domain.Repository
}

func NewListPosts(repo domain.Repository) *ListPosts {
	return &ListPosts{repo: repo}
}

func (uc *ListPosts) Execute(
	ctx context.Context,
	viewer identity.Actor,
	limit int,
	offset int,
) ([]models.Post, int64, error) {
	return uc.repo.ListVisible(ctx, domain.ScopeFor(viewer), limit, offset)
}

// ======================================================
// GET
// ======================================================

type GetPost struct {
	repo domain.Repository
}

func NewGetPost(repo domain.Repository) *GetPost {
	return &GetPost{repo: repo}
}

func (uc *GetPost) Execute(ctx context.Context, viewer identity.Actor, id uint) (*models.Post, error) {
	return load(ctx, uc.repo, id, viewer)
}

// ======================================================
// CREATE
// ======================================================

type CreatePostInput struct {
	Content  string
	ImageURL string
}

type CreatePost struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePost(repo domain.Repository, audit *audit.Dispatcher) *CreatePost {
	return &CreatePost{repo: repo, audit: audit}
}

func (uc *CreatePost) Execute(ctx context.Context, actor identity.Actor, in CreatePostInput) (*models.Post, error) {
	if !actor.IsAuthenticated() {
		return nil, httperr.Forbidden("authentication_required")
	}

	content, err := validContent(in.Content)
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		AuthorID: actor.UserID,
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
		Status:   string(domain.InitialStatus()),
	}
	if err := uc.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionPostCreated,
		Entity:   "post",
		EntityID: audit.Ref(p.ID),
	})
	return p, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdatePostInput carries only the fields present in the request.
type UpdatePostInput struct {
	Content  *string
	ImageURL *string
	Status   *string
}

type UpdatePost struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePost(repo domain.Repository, audit *audit.Dispatcher) *UpdatePost {
	return &UpdatePost{repo: repo, audit: audit}
}

func (uc *UpdatePost) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	in UpdatePostInput,
) (*models.Post, error) {
	p, err := load(ctx, uc.repo, id, actor)
	if err != nil {
		return nil, err
	}
	if err := domain.CanModify(p, actor); err != nil {
		return nil, err
	}
	if in.Status != nil {
		return nil, httperr.Validation("status", "status_read_only", "Status is set by moderation only.")
	}

	if in.Content != nil {
		content, err := validContent(*in.Content)
		if err != nil {
			return nil, err
		}
		p.Content = content
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	if err := uc.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionPostUpdated,
		Entity:   "post",
		EntityID: audit.Ref(p.ID),
	})
	return p, nil
}

// ======================================================
// DELETE
// ======================================================

type DeletePost struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePost(repo domain.Repository, audit *audit.Dispatcher) *DeletePost {
	return &DeletePost{repo: repo, audit: audit}
}

func (uc *DeletePost) Execute(ctx context.Context, actor identity.Actor, id uint) error {
	p, err := load(ctx, uc.repo, id, actor)
	if err != nil {
		return err
	}
	if err := domain.CanModify(p, actor); err != nil {
		return err
	}

	if err := uc.repo.DeletePost(ctx, p.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionPostDeleted,
		Entity:   "post",
		EntityID: audit.Ref(p.ID),
	})
	return nil
}

// ======================================================
// MODERATE
// ======================================================

type ModeratePost struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModeratePost(repo domain.Repository, audit *audit.Dispatcher) *ModeratePost {
	return &ModeratePost{repo: repo, audit: audit}
}

func (uc *ModeratePost) Execute(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	status string,
) (*models.Post, error) {
	if err := domain.CanModerate(actor); err != nil {
		return nil, err
	}

	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	p, err := load(ctx, uc.repo, id, actor)
	if err != nil {
		return nil, err
	}

	previous := p.Status
	p.Status = string(st)
	if err := uc.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionPostModerated,
		Entity:   "post",
		EntityID: audit.Ref(p.ID),
		Metadata: map[string]string{"from": previous, "to": p.Status},
	})
	return p, nil
}
