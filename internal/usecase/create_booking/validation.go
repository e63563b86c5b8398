package create_booking

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Identity.UserID <= 0 {
		return ErrUnauthenticated
	}
	if !req.Identity.IsPatient() {
		return ErrNotPatient
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionnel_id is required", ErrInvalidInput)
	}
	if req.CabinetID <= 0 {
		return fmt.Errorf("%w: cabinet_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: heure_debut is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid heure_debut: %v", ErrInvalidInput, err)
	}
	if req.ReasonID != nil && *req.ReasonID <= 0 {
		return fmt.Errorf("%w: motif_consultation_id must be positive", ErrInvalidInput)
	}

	switch req.Mode {
	case "":
		req.Mode = domain.ModeInPerson
	case domain.ModeInPerson, domain.ModeRemote:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if req.PatientNotes != nil && utf8.RuneCountInString(*req.PatientNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes_patient longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// endTime вычисляет конец консультации; конец не может быть позже 24:00
func endTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	end, err := start.AddMinutes(durationMinutes)
	if errors.Is(err, types.ErrTimeOutOfRange) {
		return "", fmt.Errorf("%w: consultation of %d minutes from %s ends after midnight",
			ErrInvalidTimeSlot, durationMinutes, start)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return end, nil
}
