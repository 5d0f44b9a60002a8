package models

import "time"

// ProviderProfile belongs to users with the "fortune teller" role.
type ProviderProfile struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Bio               string `gorm:"type:text" json:"bio"`
	ProfileImage      string `gorm:"size:500" json:"profile_image"`
	PhoneNumber       string `gorm:"size:20" json:"phone_number"`
	YearsOfExperience *int   `json:"years_of_experience"`
	Availability      string `gorm:"type:text" json:"availability"`
	CulturalSpecialty string `gorm:"type:text" json:"cultural_specialty"`

	Skills []Skill `gorm:"many2many:provider_profile_skills;joinForeignKey:ProfileUserID;joinReferences:SkillID;constraint:OnDelete:CASCADE;" json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientProfile belongs to users with the "client" role.
type ClientProfile struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Bio          string     `gorm:"type:text" json:"bio"`
	ProfileImage string     `gorm:"size:500" json:"profile_image"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender       string     `gorm:"size:20" json:"gender"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
