package admin

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
)

type BookingService interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, bookingID int64) error
}

type AccountService interface {
	ListUsers(ctx context.Context, caller domain.Identity) ([]*domain.User, error)
	DeleteUser(ctx context.Context, caller domain.Identity, id int64) error
}

type ProfessionalService interface {
	List(ctx context.Context, caller domain.Identity) ([]*domain.Professional, error)
	Get(ctx context.Context, caller domain.Identity, id int64) (*domain.Professional, error)
	Create(ctx context.Context, caller domain.Identity, pro *domain.Professional) (*domain.Professional, error)
	Update(ctx context.Context, caller domain.Identity, id int64, update *models.AdminUpdate) (*domain.Professional, error)
	Delete(ctx context.Context, caller domain.Identity, id int64) error
	SetValidation(ctx context.Context, caller domain.Identity, id int64, rawStatus string) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
