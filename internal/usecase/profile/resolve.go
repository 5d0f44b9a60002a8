package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// Resolver maps a user to the profile variant of its role.
type Resolver struct {
	repo domain.Repository
}

func NewResolver(repo domain.Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (r *Resolver) Resolve(ctx context.Context, user *models.User) (domain.Resolved, error) {
	out := domain.Resolved{Variant: domain.VariantForRole(user.RoleName())}

	switch out.Variant {
	case domain.VariantProvider:
		p, err := r.repo.FindProviderProfile(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return out, err
		}
		out.Provider = p
	case domain.VariantClient:
		p, err := r.repo.FindClientProfile(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return out, err
		}
		out.Client = p
	}
	return out, nil
}

// ResolveUser loads the user with its role and resolves its profile.
// A missing profile is reported as profile_not_found.
func (r *Resolver) ResolveUser(ctx context.Context, userID uint) (domain.Resolved, error) {
	user, err := r.repo.GetUserWithRole(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Resolved{}, errProfileNotFound
		}
		return domain.Resolved{}, err
	}

	res, err := r.Resolve(ctx, user)
	if err != nil {
		return res, err
	}
	if !res.Found() {
		return res, errProfileNotFound
	}
	return res, nil
}

var errProfileNotFound = httperr.Missing("profile_not_found", "Profile not found.")
