package professionals

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
)

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	List(ctx context.Context, filter professionalRepo.Filter) ([]*domain.Professional, error)
	Update(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	SetValidation(ctx context.Context, id int64, status domain.ValidationStatus, adminID int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
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

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
