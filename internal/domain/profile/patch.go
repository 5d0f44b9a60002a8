package profile

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const dateLayout = "2006-01-02"

var (
	sharedFields   = []string{"bio", "profile_image"}
	providerFields = []string{"phone_number", "years_of_experience", "availability", "cultural_specialty", "skill_ids"}
	clientFields   = []string{"date_of_birth", "gender"}

	// Echoed back by clients that resend a fetched profile; never written.
	readOnlyFields = []string{"user", "first_name", "last_name", "email", "skills"}
)

// Patch is a partial profile update as sent by the client.
type Patch map[string]json.RawMessage

func contains(list []string, key string) bool {
	for _, v := range list {
		if v == key {
			return true
		}
	}
	return false
}

// Check rejects fields that belong to the other variant or to no variant.
func (p Patch) Check(v Variant) error {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if contains(sharedFields, k) || contains(readOnlyFields, k) {
			continue
		}
		switch {
		case v == VariantProvider && contains(providerFields, k):
		case v == VariantClient && contains(clientFields, k):
		case contains(providerFields, k) || contains(clientFields, k):
			return httperr.Validation(k, "field_not_allowed_for_role", "This field does not belong to your profile type.")
		default:
			return httperr.Validation(k, "unknown_field", "Unknown profile field.")
		}
	}
	return nil
}

func (p Patch) decode(field string, dst any) error {
	raw, ok := p[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return httperr.Validation(field, "invalid_value", "Invalid value.")
	}
	return nil
}

func (p Patch) has(field string) bool {
	_, ok := p[field]
	return ok
}

// SkillIDs returns the requested skill ids, or nil when the patch does not touch skills.
func (p Patch) SkillIDs() (*[]uint, error) {
	raw, ok := p["skill_ids"]
	if !ok {
		return nil, nil
	}
	ids, err := ParseSkillIDs(raw)
	if err != nil {
		return nil, err
	}
	return &ids, nil
}

// ParseSkillIDs accepts only a JSON array of integers.
func ParseSkillIDs(raw json.RawMessage) ([]uint, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, httperr.Validation("skill_ids", "skill_ids_not_list", "skill_ids must be a list of integers.")
	}
	var ids []uint
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return nil, httperr.Validation("skill_ids", "skill_ids_not_list", "skill_ids must be a list of integers.")
	}
	return ids, nil
}

func (p Patch) ApplyProvider(pp *models.ProviderProfile) error {
	if err := p.Check(VariantProvider); err != nil {
		return err
	}

	fields := []struct {
		name string
		dst  any
	}{
		{"bio", &pp.Bio},
		{"profile_image", &pp.ProfileImage},
		{"phone_number", &pp.PhoneNumber},
		{"availability", &pp.Availability},
		{"cultural_specialty", &pp.CulturalSpecialty},
	}
	for _, f := range fields {
		if err := p.decode(f.name, f.dst); err != nil {
			return err
		}
	}

	if p.has("years_of_experience") {
		var years *int
		if err := p.decode("years_of_experience", &years); err != nil {
			return err
		}
		if years != nil && *years < 0 {
			return httperr.Validation("years_of_experience", "invalid_value", "Must not be negative.")
		}
		pp.YearsOfExperience = years
	}
	return nil
}

func (p Patch) ApplyClient(cp *models.ClientProfile) error {
	if err := p.Check(VariantClient); err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"bio", &cp.Bio},
		{"profile_image", &cp.ProfileImage},
		{"gender", &cp.Gender},
	} {
		if err := p.decode(f.name, f.dst); err != nil {
			return err
		}
	}

	if p.has("date_of_birth") {
		var s *string
		if err := p.decode("date_of_birth", &s); err != nil {
			return err
		}
		if s == nil || *s == "" {
			cp.DateOfBirth = nil
			return nil
		}
		dob, err := time.Parse(dateLayout, *s)
		if err != nil {
			return httperr.Validation("date_of_birth", "invalid_date", "Use the YYYY-MM-DD format.")
		}
		cp.DateOfBirth = &dob
	}
	return nil
}
