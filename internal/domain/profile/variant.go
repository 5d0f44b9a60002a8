package profile

import (
	"strings"

	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const (
	RoleProvider = "fortune teller"
	RoleClient   = "client"
)

type Variant string

const (
	VariantProvider Variant = "provider"
	VariantClient   Variant = "client"
	VariantUnknown  Variant = "unknown"
)

// VariantForRole matches role names case-insensitively. Roles other than
// provider and client (admin included) have no profile.
func VariantForRole(roleName string) Variant {
	switch strings.ToLower(strings.TrimSpace(roleName)) {
	case RoleProvider:
		return VariantProvider
	case RoleClient:
		return VariantClient
	default:
		return VariantUnknown
	}
}

// Resolved is the tagged union returned by the resolver. At most one of
// Provider and Client is set, and only the one matching Variant.
type Resolved struct {
	Variant  Variant
	Provider *models.ProviderProfile
	Client   *models.ClientProfile
}

func (r Resolved) Found() bool {
	switch r.Variant {
	case VariantProvider:
		return r.Provider != nil
	case VariantClient:
		return r.Client != nil
	default:
		return false
	}
}
