package post

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/post"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type ListComments struct {
	repo domain.Repository
}

func NewListComments(repo domain.Repository) *ListComments {
	return &ListComments{repo: repo}
}

// Execute returns post_not_found when the viewer cannot see the post.
func (uc *ListComments) Execute(ctx context.Context, viewer identity.Actor, postID uint) ([]models.Comment, error) {
	if _, err := load(ctx, uc.repo, postID, viewer); err != nil {
		return nil, err
	}
	return uc.repo.ListComments(ctx, postID)
}

type CreateCommentInput struct {
	Content  string
	ImageURL string
}

type CreateComment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateComment(repo domain.Repository, audit *audit.Dispatcher) *CreateComment {
	return &CreateComment{repo: repo, audit: audit}
}

func (uc *CreateComment) Execute(
	ctx context.Context,
	actor identity.Actor,
	postID uint,
	in CreateCommentInput,
) (*models.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, httperr.Forbidden("authentication_required")
	}
	if _, err := load(ctx, uc.repo, postID, actor); err != nil {
		return nil, err
	}

	content, err := validContent(in.Content)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{
		PostID:   postID,
		AuthorID: actor.UserID,
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := uc.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionCommentCreated,
		Entity:   "comment",
		EntityID: audit.Ref(c.ID),
		Metadata: map[string]uint{"post_id": postID},
	})
	return c, nil
}
