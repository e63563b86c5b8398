package domain

import (
	"fmt"
	"strings"
)

// Role account role
type Role string

const (
	RolePatient      Role = "patient"
	RoleProfessional Role = "professionnel"
	RoleAdmin        Role = "admin"
)

// ParseRole parses a role, empty string and "client" mean patient
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", "client", RolePatient:
		return RolePatient, nil
	case RoleProfessional:
		return RoleProfessional, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// Identity authenticated caller, resolved from the session token
type Identity struct {
	UserID         int64
	Role           Role
	ProfessionalID *int64 // set when the user owns a professional profile
}

func (i Identity) IsPatient() bool {
	return i.Role == RolePatient
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsProfessional true if the caller acts for a professional profile
func (i Identity) IsProfessional() bool {
	return i.ProfessionalID != nil && *i.ProfessionalID > 0
}

// OwnsProfessional true if the caller acts for the given professional
func (i Identity) OwnsProfessional(professionalID int64) bool {
	return i.IsProfessional() && *i.ProfessionalID == professionalID
}
