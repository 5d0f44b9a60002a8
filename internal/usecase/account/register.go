package account

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	"github.com/BruksfildServices01/fortune-club/internal/auth"
	domain "github.com/BruksfildServices01/fortune-club/internal/domain/account"
	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const minPasswordLength = 8

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	RoleID    uint
}

// EmailDomainChecker rejects addresses whose domain cannot receive mail.
type EmailDomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

type Register struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	domains EmailDomainChecker
}

func NewRegister(repo domain.Repository, audit *audit.Dispatcher) *Register {
	return &Register{repo: repo, audit: audit}
}

// WithEmailDomainCheck enables the DNS check on the email domain.
func (uc *Register) WithEmailDomainCheck(checker EmailDomainChecker) *Register {
	uc.domains = checker
	return uc
}

// Execute creates the user together with the profile its role calls for.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, httperr.Validation("email", "invalid_email", "Enter a valid email address.")
	}
	if uc.domains != nil && !uc.domains.Valid(ctx, email) {
		return nil, httperr.Validation("email", "invalid_email_domain", "The email domain does not look valid.")
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, httperr.Validation("username", "required", "This field is required.")
	}

	if len(in.Password) < minPasswordLength {
		return nil, httperr.Validation("password", "password_too_short", "Ensure this field has at least 8 characters.")
	}

	firstName := strings.TrimSpace(in.FirstName)
	if firstName == "" {
		return nil, httperr.Validation("first_name", "required", "This field is required.")
	}

	role, err := uc.repo.GetRole(ctx, in.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.Validation("user_role_id", "invalid_role", "Invalid user role ID provided.")
		}
		return nil, err
	}
	// Admin accounts are not self-service.
	variant := profile.VariantForRole(role.Name)
	if variant == profile.VariantUnknown {
		return nil, httperr.Validation("user_role_id", "invalid_role", "Invalid user role ID provided.")
	}

	if taken, err := uc.repo.EmailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, httperr.Validation("email", "email_taken", "A user with that email already exists.")
	}

	if taken, err := uc.repo.UsernameTaken(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, httperr.Validation("username", "username_taken", "A user with that username already exists.")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		RoleID:       &role.ID,
	}

	if err := uc.repo.CreateAccount(ctx, user, variant); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Validation("username", "account_exists", "A user with that email or username already exists.")
		}
		return nil, err
	}
	user.Role = role

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ref(user.ID),
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: audit.Ref(user.ID),
		Metadata: map[string]string{"role": role.Name},
	})

	return user, nil
}
