package dto

import (
	"time"

	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

type SkillDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProviderProfileDTO struct {
	User              uint       `json:"user"`
	Username          string     `json:"username"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Bio               string     `json:"bio"`
	ProfileImage      string     `json:"profile_image"`
	PhoneNumber       string     `json:"phone_number"`
	YearsOfExperience *int       `json:"years_of_experience"`
	Availability      string     `json:"availability"`
	CulturalSpecialty string     `json:"cultural_specialty"`
	Skills            []SkillDTO `json:"skills"`
}

type ClientProfileDTO struct {
	User         uint    `json:"user"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Bio          string  `json:"bio"`
	ProfileImage string  `json:"profile_image"`
	DateOfBirth  *string `json:"date_of_birth"`
	Gender       string  `json:"gender"`
}

// ProfileDTO tags the payload with the variant it carries.
type ProfileDTO struct {
	Type    profile.Variant `json:"type"`
	Profile any             `json:"profile"`
}

func NewSkill(s models.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name}
}

func NewSkills(skills []models.Skill) []SkillDTO {
	out := make([]SkillDTO, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewSkill(s))
	}
	return out
}

func NewProviderProfile(p *models.ProviderProfile) ProviderProfileDTO {
	return ProviderProfileDTO{
		User:              p.UserID,
		Username:          p.User.Username,
		FirstName:         p.User.FirstName,
		LastName:          p.User.LastName,
		Email:             p.User.Email,
		Bio:               p.Bio,
		ProfileImage:      p.ProfileImage,
		PhoneNumber:       p.PhoneNumber,
		YearsOfExperience: p.YearsOfExperience,
		Availability:      p.Availability,
		CulturalSpecialty: p.CulturalSpecialty,
		Skills:            NewSkills(p.Skills),
	}
}

func NewProviderProfiles(list []models.ProviderProfile) []ProviderProfileDTO {
	out := make([]ProviderProfileDTO, 0, len(list))
	for i := range list {
		out = append(out, NewProviderProfile(&list[i]))
	}
	return out
}

func NewClientProfile(p *models.ClientProfile) ClientProfileDTO {
	out := ClientProfileDTO{
		User:         p.UserID,
		Username:     p.User.Username,
		FirstName:    p.User.FirstName,
		LastName:     p.User.LastName,
		Email:        p.User.Email,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
		Gender:       p.Gender,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format(time.DateOnly)
		out.DateOfBirth = &dob
	}
	return out
}

func NewProfile(r profile.Resolved) ProfileDTO {
	switch r.Variant {
	case profile.VariantProvider:
		return ProfileDTO{Type: r.Variant, Profile: NewProviderProfile(r.Provider)}
	case profile.VariantClient:
		return ProfileDTO{Type: r.Variant, Profile: NewClientProfile(r.Client)}
	default:
		return ProfileDTO{Type: r.Variant}
	}
}
