package profile

import (
	"context"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
)

type GetMyProfile struct {
	resolver *Resolver
}

func NewGetMyProfile(resolver *Resolver) *GetMyProfile {
	return &GetMyProfile{resolver: resolver}
}

func (uc *GetMyProfile) Execute(ctx context.Context, actor identity.Actor) (domain.Resolved, error) {
	return uc.resolver.ResolveUser(ctx, actor.UserID)
}
