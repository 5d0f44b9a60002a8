package profile

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type ListProviders struct {
	repo domain.Repository
}

func NewListProviders(repo domain.Repository) *ListProviders {
	return &ListProviders{repo: repo}
}

func (uc *ListProviders) Execute(ctx context.Context) ([]models.ProviderProfile, error) {
	return uc.repo.ListProviderProfiles(ctx)
}

type SearchProviders struct {
	repo domain.Repository
}

func NewSearchProviders(repo domain.Repository) *SearchProviders {
	return &SearchProviders{repo: repo}
}

// Execute matches names and skill names. A blank query matches nothing.
func (uc *SearchProviders) Execute(ctx context.Context, query string) ([]models.ProviderProfile, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.ProviderProfile{}, nil
	}
	return uc.repo.SearchProviderProfiles(ctx, q)
}
