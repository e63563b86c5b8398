package domain

// Default values
const (
	DefaultSlotMinutes         = 30
	DefaultConsultationMinutes = 30
	DefaultConsultationFee     = 50.0
	DefaultCountry             = "France"

	// GenericReasonLabel label of the reason created for bookings made without one
	GenericReasonLabel = "Consultation"
)

// Business validation constants
const (
	MinSlotMinutes   = 5
	MinReasonMinutes = 5
	MaxNotesLength   = 2000
	MinPasswordLen   = 8
	DaysInWeek       = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
