package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
)

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// RuleRepository интерфейс репозитория еженедельных правил
type RuleRepository interface {
	List(ctx context.Context, filter ruleRepo.Filter) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListActiveForDay получает неотменённые бронирования специалиста на дату
	ListActiveForDay(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
