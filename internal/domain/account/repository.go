package account

import (
	"context"

	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type Repository interface {
	GetRole(ctx context.Context, id uint) (*models.Role, error)

	EmailTaken(ctx context.Context, email string) (bool, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// CreateAccount inserts the user and, in the same transaction, the
	// profile of the given variant. VariantUnknown creates no profile.
	CreateAccount(ctx context.Context, user *models.User, variant profile.Variant) error

	// FindByLogin matches the username or the lowercased email.
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error)
}
