package profile

import (
	"context"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type UpdateMyProfile struct {
	repo     domain.Repository
	resolver *Resolver
	policy   domain.SkillPolicy
}

func NewUpdateMyProfile(
	repo domain.Repository,
	resolver *Resolver,
	policy domain.SkillPolicy,
) *UpdateMyProfile {
	return &UpdateMyProfile{repo: repo, resolver: resolver, policy: policy}
}

func (uc *UpdateMyProfile) Execute(
	ctx context.Context,
	actor identity.Actor,
	patch domain.Patch,
) (domain.Resolved, error) {
	res, err := uc.resolver.ResolveUser(ctx, actor.UserID)
	if err != nil {
		return res, err
	}

	switch res.Variant {
	case domain.VariantProvider:
		if err := patch.ApplyProvider(res.Provider); err != nil {
			return res, err
		}
		requested, err := patch.SkillIDs()
		if err != nil {
			return res, err
		}
		var skills *[]models.Skill
		if requested != nil {
			matched, err := loadSkills(ctx, uc.repo, uc.policy, *requested)
			if err != nil {
				return res, err
			}
			skills = &matched
		}
		if err := uc.repo.SaveProviderProfile(ctx, res.Provider, skills); err != nil {
			return res, err
		}
	case domain.VariantClient:
		if err := patch.ApplyClient(res.Client); err != nil {
			return res, err
		}
		if err := uc.repo.SaveClientProfile(ctx, res.Client); err != nil {
			return res, err
		}
	}

	return uc.resolver.ResolveUser(ctx, actor.UserID)
}

func loadSkills(
	ctx context.Context,
	repo domain.Repository,
	policy domain.SkillPolicy,
	ids []uint,
) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}
	found, err := repo.FindSkillsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return domain.ReconcileSkills(policy, ids, found)
}
