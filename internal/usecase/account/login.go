package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/auth"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/account"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(ctx context.Context, login, password string) (*models.User, error) {
	user, err := uc.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
