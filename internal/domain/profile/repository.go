package profile

import (
	"context"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserWithRole(ctx context.Context, userID uint) (*models.User, error)

	// -------- Profiles --------
	// Find* return gorm.ErrRecordNotFound when the profile does not exist.
	FindProviderProfile(ctx context.Context, userID uint) (*models.ProviderProfile, error)
	FindClientProfile(ctx context.Context, userID uint) (*models.ClientProfile, error)

	// SaveProviderProfile replaces the skill set when skills is non-nil.
	SaveProviderProfile(ctx context.Context, p *models.ProviderProfile, skills *[]models.Skill) error
	SaveClientProfile(ctx context.Context, p *models.ClientProfile) error

	ListProviderProfiles(ctx context.Context) ([]models.ProviderProfile, error)
	SearchProviderProfiles(ctx context.Context, query string) ([]models.ProviderProfile, error)

	// -------- Skills --------
	FindSkillsByIDs(ctx context.Context, ids []uint) ([]models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, s *models.Skill) error
	// DeleteSkill detaches the skill from every profile before removing it.
	DeleteSkill(ctx context.Context, id uint) (bool, error)
}
