package skill

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListSkills struct {
	repo profile.Repository
}

func NewListSkills(repo profile.Repository) *ListSkills {
	return &ListSkills{repo: repo}
}

func (uc *ListSkills) Execute(ctx context.Context) ([]models.Skill, error) {
	return uc.repo.ListSkills(ctx)
}

// ======================================================
// CREATE
// ======================================================

type CreateSkill struct {
	repo  profile.Repository
	audit *audit.Dispatcher
}

func NewCreateSkill(repo profile.Repository, audit *audit.Dispatcher) *CreateSkill {
	return &CreateSkill{repo: repo, audit: audit}
}

func (uc *CreateSkill) Execute(ctx context.Context, actor identity.Actor, name string) (*models.Skill, error) {
	if !actor.Privileged {
		return nil, httperr.Forbidden("admin_only")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.Validation("name", "required", "This field is required.")
	}
	if len(name) > 100 {
		return nil, httperr.Validation("name", "too_long", "Ensure this field has no more than 100 characters.")
	}

	s := &models.Skill{Name: name}
	if err := uc.repo.CreateSkill(ctx, s); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Validation("name", "skill_exists", "A skill with that name already exists.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionSkillCreated,
		Entity:   "skill",
		EntityID: audit.Ref(s.ID),
		Metadata: map[string]string{"name": s.Name},
	})
	return s, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteSkill struct {
	repo  profile.Repository
	audit *audit.Dispatcher
}

func NewDeleteSkill(repo profile.Repository, audit *audit.Dispatcher) *DeleteSkill {
	return &DeleteSkill{repo: repo, audit: audit}
}

func (uc *DeleteSkill) Execute(ctx context.Context, actor identity.Actor, id uint) error {
	if !actor.Privileged {
		return httperr.Forbidden("admin_only")
	}

	deleted, err := uc.repo.DeleteSkill(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.Missing("skill_not_found", "Skill not found.")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(actor.UserID),
		Action:   audit.ActionSkillDeleted,
		Entity:   "skill",
		EntityID: audit.Ref(id),
	})
	return nil
}
