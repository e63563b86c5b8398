package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirme"
	StatusCancelled BookingStatus = "annule"
	StatusCompleted BookingStatus = "termine"
	StatusNoShow    BookingStatus = "no_show"
)

// BookingStatuses closed set of accepted statuses
var BookingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// ParseBookingStatus is the single place where status strings are accepted
func ParseBookingStatus(s string) (BookingStatus, error) {
	candidate := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range BookingStatuses {
		if st == candidate {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

// IsLive returns true for statuses that occupy the professional's time
func (s BookingStatus) IsLive() bool {
	return s != StatusCancelled
}

// BookingMode consultation mode
type BookingMode string

const (
	ModeInPerson BookingMode = "presentiel"
	ModeRemote   BookingMode = "teleconsultation"
)

// ParseBookingMode parses a mode case-insensitively, empty means in person
func ParseBookingMode(s string) (BookingMode, error) {
	switch BookingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeInPerson:
		return ModeInPerson, nil
	case ModeRemote:
		return ModeRemote, nil
	default:
		return "", fmt.Errorf("%w: unknown booking mode %q", ErrValidation, s)
	}
}

// Booking represents an appointment of a patient with a professional
type Booking struct {
	ID             int64
	PatientID      int64 // users.id
	ProfessionalID int64
	CabinetID      int64 // no foreign key, kept after the cabinet is gone
	ReasonID       *int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus
	Mode           BookingMode

	PatientNotes      *string
	ProfessionalNotes *string
	ReminderSent      bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsLive()
}

// Covers returns true if t falls in [start, end)
func (b *Booking) Covers(t types.TimeString) bool {
	return !t.IsBefore(b.StartTime) && t.IsBefore(b.EndTime)
}

// Overlaps returns true if the booking intersects [start, end)
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

// Overlaps half-open interval intersection, touching intervals do not overlap
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// CanTransitionBooking returns true if the caller may change the booking's status:
// the booking's patient or the booking's professional
func CanTransitionBooking(caller Identity, b *Booking) bool {
	if b == nil {
		return false
	}
	if caller.UserID == b.PatientID {
		return true
	}
	return caller.OwnsProfessional(b.ProfessionalID)
}

// BookingFilter filter for booking listings
type BookingFilter struct {
	PatientID        *int64
	ProfessionalID   *int64
	Date             *time.Time
	IncludeCancelled bool
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey days since the Unix epoch, part of the day lock key
func DateKey(t time.Time) int32 {
	return int32(DateOnly(t).Unix() / 86400)
}
