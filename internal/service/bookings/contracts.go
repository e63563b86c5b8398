package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	LockDay(ctx context.Context, professionalID int64, date time.Time) error
	CountOverlapping(ctx context.Context, professionalID int64, date time.Time, start, end types.TimeString, excludeID *int64) (int, error)
	HasUpcomingWithProfessional(ctx context.Context, patientID, professionalID int64, fromDate time.Time, excludeID *int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, professionalNotes *string, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
