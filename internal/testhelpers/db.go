package testhelpers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/fortune-club/internal/db"
	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// NewTestDB opens an isolated in-memory sqlite database with the full schema
// and the default roles. A single connection serialises access so background
// writers never hit table locks.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db), "migrate")
	require.NoError(t, dbpkg.SeedRoles(db), "seed roles")
	return db
}

func Role(t *testing.T, db *gorm.DB, name string) models.Role {
	t.Helper()
	var role models.Role
	require.NoError(t, db.Where("name = ?", strings.ToLower(name)).First(&role).Error)
	return role
}

// CreateUser inserts a user with the given role and the profile that role
// gets at registration. An empty role leaves the user without one.
func CreateUser(t *testing.T, db *gorm.DB, username, roleName string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		PasswordHash: string(hash),
	}
	if roleName != "" {
		role := Role(t, db, roleName)
		user.RoleID = &role.ID
	}
	require.NoError(t, db.Omit("Role").Create(&user).Error)

	switch profile.VariantForRole(roleName) {
	case profile.VariantProvider:
		require.NoError(t, db.Create(&models.ProviderProfile{UserID: user.ID}).Error)
	case profile.VariantClient:
		require.NoError(t, db.Create(&models.ClientProfile{UserID: user.ID}).Error)
	}

	require.NoError(t, db.Preload("Role").First(&user, user.ID).Error)
	return user
}

func CreateSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	s := models.Skill{Name: name}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func Ctx() context.Context {
	return context.Background()
}
