package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// AvailabilityRule weekly recurring window of a professional at a cabinet
type AvailabilityRule struct {
	ID             int64
	ProfessionalID int64
	CabinetID      int64
	Weekday        int // Monday = 0 ... Sunday = 6
	StartTime      types.TimeString
	EndTime        types.TimeString
	SlotMinutes    int
}

// Validate checks the rule's own fields
func (r *AvailabilityRule) Validate() error {
	if r.Weekday < 0 || r.Weekday >= DaysInWeek {
		return fmt.Errorf("%w: jour_semaine must be in 0..6", ErrValidation)
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: heure_debut: %v", ErrValidation, err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: heure_fin: %v", ErrValidation, err)
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: heure_debut must be before heure_fin", ErrValidation)
	}
	if r.SlotMinutes < MinSlotMinutes {
		return fmt.Errorf("%w: duree_creneau must be at least %d", ErrValidation, MinSlotMinutes)
	}
	return nil
}

// Candidates start times of the rule: from start, step SlotMinutes, while t+step <= end
func (r *AvailabilityRule) Candidates() []types.TimeString {
	if r.SlotMinutes <= 0 {
		return nil
	}
	start, end := r.StartTime.Minutes(), r.EndTime.Minutes()
	if start < 0 || end <= start {
		return []types.TimeString{}
	}

	result := make([]types.TimeString, 0, (end-start)/r.SlotMinutes)
	for t := start; t+r.SlotMinutes <= end; t += r.SlotMinutes {
		ts, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		result = append(result, ts)
	}
	return result
}

// DayIndex weekday with Monday = 0
func DayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % DaysInWeek
}
