package domain

import (
	"fmt"
	"strings"
	"time"
)

// Specialty medical specialty
type Specialty struct {
	ID          int64
	Name        string
	Description *string
	Icon        *string
}

// ValidationStatus moderation state of a professional profile
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "en_attente"
	ValidationApproved ValidationStatus = "valide"
	ValidationRejected ValidationStatus = "refuse"
)

// ParseValidationStatus parses a moderation state
func ParseValidationStatus(s string) (ValidationStatus, error) {
	switch ValidationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ValidationPending:
		return ValidationPending, nil
	case ValidationApproved:
		return ValidationApproved, nil
	case ValidationRejected:
		return ValidationRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown validation status %q", ErrValidation, s)
	}
}

// Professional healthcare professional
type Professional struct {
	ID               int64
	UserID           *int64
	LastName         string
	FirstName        string
	Email            string
	Phone            *string
	RPPS             string
	SpecialtyID      int64
	Bio              *string
	PhotoURL         *string
	ConsultationFee  float64
	AcceptsRemote    bool
	ValidationStatus ValidationStatus
	ValidatedAt      *time.Time
	ValidatedBy      *int64
	RegisteredAt     time.Time
	Cabinets         []Cabinet // filled by listings only
	SpecialtyName    string    // filled by listings only
}

// ConsultationReason typed consultation of a specialty with its estimated duration
type ConsultationReason struct {
	ID              int64
	SpecialtyID     int64
	Label           string
	DurationMinutes int
	Fee             float64
}

// Cabinet practice location
type Cabinet struct {
	ID         int64
	Name       string
	Address    string
	City       string
	PostalCode string
	Phone      *string
	Latitude   *float64
	Longitude  *float64
}

// Validate checks required cabinet fields
func (c *Cabinet) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Address) == "" ||
		strings.TrimSpace(c.City) == "" || strings.TrimSpace(c.PostalCode) == "" {
		return fmt.Errorf("%w: nom, adresse, ville and code_postal are required", ErrValidation)
	}
	return nil
}

// Affiliation link between a professional and a cabinet
type Affiliation struct {
	ProfessionalID int64
	CabinetID      int64
	StartDate      time.Time
	EndDate        *time.Time
	IsPrimary      bool
}

// Favorite patient bookmark on a professional
type Favorite struct {
	PatientID      int64
	ProfessionalID int64
	AddedAt        time.Time
	Professional   *Professional // filled by listings only
}
