package availability_rules

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, caller domain.Identity) ([]*domain.AvailabilityRule, error)
	Create(ctx context.Context, caller domain.Identity, req *models.CreateRuleRequest) (*domain.AvailabilityRule, error)
	Update(ctx context.Context, caller domain.Identity, id int64, req *models.UpdateRuleRequest) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, caller domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
