package catalog

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
)

// SpecialtyRepository интерфейс репозитория специальностей
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	List(ctx context.Context) ([]*domain.Specialty, error)
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	List(ctx context.Context, filter professionalRepo.Filter) ([]*domain.Professional, error)
}

// CabinetRepository интерфейс репозитория кабинетов
type CabinetRepository interface {
	List(ctx context.Context) ([]*domain.Cabinet, error)
	ListByProfessionals(ctx context.Context, professionalIDs []int64) (map[int64][]domain.Cabinet, error)
}

// ReasonRepository интерфейс репозитория мотивов консультации
type ReasonRepository interface {
	ListBySpecialty(ctx context.Context, specialtyID int64) ([]*domain.ConsultationReason, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
