package get_professional_bookings

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

type BookingService interface {
	GetProfessionalBookings(ctx context.Context, caller domain.Identity) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
