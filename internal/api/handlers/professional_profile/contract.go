package professional_profile

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
)

type ProfessionalService interface {
	GetOwn(ctx context.Context, caller domain.Identity) (*domain.Professional, error)
	UpdateOwn(ctx context.Context, caller domain.Identity, update *models.ProfileUpdate) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
