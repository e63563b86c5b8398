package availability

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, professionalID, id int64) (*domain.AvailabilityRule, error)
	List(ctx context.Context, filter ruleRepo.Filter) ([]*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, professionalID, id int64) error
}

// CabinetRepository интерфейс репозитория кабинетов
type CabinetRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Cabinet, error)
	IsAffiliated(ctx context.Context, professionalID, cabinetID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
