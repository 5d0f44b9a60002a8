package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/domain/account"
	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetRole(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *AccountGormRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	user *models.User,
	variant profile.Variant,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Role").Create(user).Error; err != nil {
			return err
		}

		switch variant {
		case profile.VariantProvider:
			return tx.Create(&models.ProviderProfile{UserID: user.ID}).Error
		case profile.VariantClient:
			return tx.Create(&models.ClientProfile{UserID: user.ID}).Error
		}
		return nil
	})
}

func (r *AccountGormRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	login = strings.TrimSpace(login)

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("username = ? OR email = ?", login, strings.ToLower(login)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := q.
		Preload("Role").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

var _ account.Repository = (*AccountGormRepository)(nil)
