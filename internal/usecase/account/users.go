package account

import (
	"context"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/account"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, actor identity.Actor) (*models.User, error) {
	user, err := uc.repo.GetUser(ctx, actor.UserID)
	if err != nil {
		return nil, httperr.Missing("user_not_found", "User not found.")
	}
	return user, nil
}

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	actor identity.Actor,
	limit int,
	offset int,
) ([]models.User, int64, error) {
	if !actor.Privileged {
		return nil, 0, httperr.Forbidden("admin_only")
	}
	return uc.repo.ListUsers(ctx, limit, offset)
}
