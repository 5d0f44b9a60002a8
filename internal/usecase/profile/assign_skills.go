package profile

import (
	"context"
	"encoding/json"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type AssignSkills struct {
	repo     domain.Repository
	resolver *Resolver
	policy   domain.SkillPolicy
}

func NewAssignSkills(
	repo domain.Repository,
	resolver *Resolver,
	policy domain.SkillPolicy,
) *AssignSkills {
	return &AssignSkills{repo: repo, resolver: resolver, policy: policy}
}

// Execute replaces the caller's skill set. Only fortune tellers have one.
func (uc *AssignSkills) Execute(
	ctx context.Context,
	actor identity.Actor,
	rawIDs json.RawMessage,
) (*models.ProviderProfile, error) {
	res, err := uc.resolver.ResolveUser(ctx, actor.UserID)
	if err != nil && !httperr.IsKind(err, httperr.KindNotFound) {
		return nil, err
	}
	if res.Variant != domain.VariantProvider || res.Provider == nil {
		return nil, httperr.Forbidden("not_a_provider")
	}

	ids, err := domain.ParseSkillIDs(rawIDs)
	if err != nil {
		return nil, err
	}

	skills, err := loadSkills(ctx, uc.repo, uc.policy, ids)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveProviderProfile(ctx, res.Provider, &skills); err != nil {
		return nil, err
	}
	return uc.repo.FindProviderProfile(ctx, actor.UserID)
}
