package catalog

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

type CatalogService interface {
	ListSpecialties(ctx context.Context) ([]*domain.Specialty, error)
	ListProfessionals(ctx context.Context, specialtyID *int64) ([]*domain.Professional, error)
	ListCabinets(ctx context.Context) ([]*domain.Cabinet, error)
	ListReasons(ctx context.Context, specialtyID int64) ([]*domain.ConsultationReason, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
