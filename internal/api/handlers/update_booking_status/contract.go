package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, caller domain.Identity, bookingID int64, rawStatus string, professionalNotes *string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
