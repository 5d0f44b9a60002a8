package identity

import (
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const (
	RoleProvider = "fortune teller"
	RoleClient   = "client"
	RoleAdmin    = "admin"
)

// Actor is the verified caller of an operation. The zero value is anonymous.
type Actor struct {
	UserID     uint
	RoleName   string
	Privileged bool
}

func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

func (a Actor) Is(userID uint) bool {
	return a.IsAuthenticated() && a.UserID == userID
}

// IsPrivileged grants moderation capability to staff users and admins.
func IsPrivileged(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.IsStaff || strings.EqualFold(strings.TrimSpace(user.RoleName()), RoleAdmin)
}

func ActorFor(user *models.User) Actor {
	return Actor{
		UserID:     user.ID,
		RoleName:   strings.ToLower(user.RoleName()),
		Privileged: IsPrivileged(user),
	}
}
