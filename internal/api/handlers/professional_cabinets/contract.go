package professional_cabinets

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

type CabinetService interface {
	List(ctx context.Context, caller domain.Identity) ([]*domain.Cabinet, error)
	Attach(ctx context.Context, caller domain.Identity, cabinet *domain.Cabinet) (*domain.Cabinet, error)
	Update(ctx context.Context, caller domain.Identity, cabinet *domain.Cabinet) (*domain.Cabinet, error)
	Detach(ctx context.Context, caller domain.Identity, cabinetID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
