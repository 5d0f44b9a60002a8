package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsStaff      bool   `gorm:"default:false" json:"is_staff"`

	RoleID *uint `json:"role_id"`
	Role   *Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleName is empty when no role was assigned or the role was not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
