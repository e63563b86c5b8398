package favorites

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Add(ctx context.Context, patientID, professionalID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, patientID, professionalID int64) error
	ListByPatient(ctx context.Context, patientID int64) ([]*domain.Favorite, error)
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
