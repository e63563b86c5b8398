package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockDay(ctx context.Context, professionalID int64, date time.Time) error
	CountOverlapping(ctx context.Context, professionalID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error)
	HasUpcomingWithProfessional(ctx context.Context, patientID, professionalID int64, fromDate time.Time, excludeID *int64) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// CabinetRepository интерфейс репозитория кабинетов
type CabinetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cabinet, error)
}

// ReasonRepository интерфейс репозитория мотивов консультации
type ReasonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ConsultationReason, error)
	GetOrCreate(ctx context.Context, specialtyID int64, label string, durationMinutes int, fee float64) (*domain.ConsultationReason, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingMetrics счётчик исходов бронирования
type BookingMetrics interface {
	RecordBookingOutcome(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
