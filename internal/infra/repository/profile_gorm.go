package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

func preloadProvider(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("skills.name ASC")
		})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ProfileGormRepository) GetUserWithRole(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *ProfileGormRepository) FindProviderProfile(ctx context.Context, userID uint) (*models.ProviderProfile, error) {
	var p models.ProviderProfile
	if err := preloadProvider(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) FindClientProfile(ctx context.Context, userID uint) (*models.ClientProfile, error) {
	var p models.ClientProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileGormRepository) SaveProviderProfile(
	ctx context.Context,
	p *models.ProviderProfile,
	skills *[]models.Skill,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if skills == nil {
			return nil
		}

		assoc := tx.Model(p).Association("Skills")
		if len(*skills) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(*skills); err != nil {
			return err
		}

		p.Skills = *skills
		return nil
	})
}

func (r *ProfileGormRepository) SaveClientProfile(ctx context.Context, p *models.ClientProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *ProfileGormRepository) ListProviderProfiles(ctx context.Context) ([]models.ProviderProfile, error) {
	var out []models.ProviderProfile
	if err := preloadProvider(r.db.WithContext(ctx)).
		Order("user_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchProviderProfiles matches first name, last name or any skill name.
// Ids are collected with DISTINCT first so a profile matching several
// skills comes back once.
func (r *ProfileGormRepository) SearchProviderProfiles(ctx context.Context, query string) ([]models.ProviderProfile, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.ProviderProfile{}).
		Distinct("provider_profiles.user_id").
		Joins("JOIN users ON users.id = provider_profiles.user_id").
		Joins("LEFT JOIN provider_profile_skills pps ON pps.profile_user_id = provider_profiles.user_id").
		Joins("LEFT JOIN skills ON skills.id = pps.skill_id").
		Where(
			`LOWER(users.first_name) LIKE ? ESCAPE '\' OR LOWER(users.last_name) LIKE ? ESCAPE '\' OR LOWER(skills.name) LIKE ? ESCAPE '\'`,
			like, like, like,
		).
		Pluck("provider_profiles.user_id", &ids).Error; err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []models.ProviderProfile{}, nil
	}

	var out []models.ProviderProfile
	if err := preloadProvider(r.db.WithContext(ctx)).
		Where("user_id IN ?", ids).
		Order("user_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Skills
// --------------------------------------------------

func (r *ProfileGormRepository) FindSkillsByIDs(ctx context.Context, ids []uint) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}

	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *ProfileGormRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *ProfileGormRepository) CreateSkill(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ProfileGormRepository) DeleteSkill(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM provider_profile_skills WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Skill{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

var _ profile.Repository = (*ProfileGormRepository)(nil)
