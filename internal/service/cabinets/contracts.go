package cabinets

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// CabinetRepository интерфейс репозитория кабинетов и привязок
type CabinetRepository interface {
	Create(ctx context.Context, cabinet *domain.Cabinet) (*domain.Cabinet, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.Cabinet, error)
	Update(ctx context.Context, cabinet *domain.Cabinet) (*domain.Cabinet, error)
	Delete(ctx context.Context, id int64) error
	Affiliate(ctx context.Context, aff domain.Affiliation) error
	IsAffiliated(ctx context.Context, professionalID, cabinetID int64) (bool, error)
	LockForUpdate(ctx context.Context, cabinetID int64) error
	Unaffiliate(ctx context.Context, professionalID, cabinetID int64) error
	CountAffiliations(ctx context.Context, cabinetID int64) (int, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	DeleteByCabinet(ctx context.Context, professionalID, cabinetID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
