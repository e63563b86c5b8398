package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-MedicalBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID int64   `json:"professionnel_id"`
	CabinetID      int64   `json:"cabinet_id"`
	Date           string  `json:"date"`        // "2026-03-02"
	StartTime      string  `json:"heure_debut"` // "09:00"
	ReasonID       *int64  `json:"motif_consultation_id,omitempty"`
	Mode           string  `json:"mode,omitempty"`
	PatientNotes   *string `json:"notes_patient,omitempty"`
}

var (
	errBadDate = errors.New("bad date")
	errBadTime = errors.New("bad time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(identity domain.Identity) (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadTime, err)
	}

	mode, err := domain.ParseBookingMode(r.Mode)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Identity:       identity,
		ProfessionalID: r.ProfessionalID,
		CabinetID:      r.CabinetID,
		Date:           date,
		StartTime:      startTime,
		Mode:           mode,
		ReasonID:       r.ReasonID,
		PatientNotes:   r.PatientNotes,
	}, nil
}
