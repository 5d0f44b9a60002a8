package dto

import (
	"time"

	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// UserSummaryDTO is how other users appear inside posts, comments and messages.
type UserSummaryDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UserDTO struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	IsStaff    bool      `json:"is_staff"`
	Privileged bool      `json:"privileged"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUserSummary(u models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUser(u *models.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       u.RoleName(),
		IsStaff:    u.IsStaff,
		Privileged: identity.IsPrivileged(u),
		CreatedAt:  u.CreatedAt,
	}
}

func NewUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}
