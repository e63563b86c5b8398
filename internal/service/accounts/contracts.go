package accounts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	GetByEmail(ctx context.Context, email string) (*domain.Professional, error)
}

// SpecialtyRepository интерфейс репозитория специальностей
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
}

// TokenIssuer выпускает токен сессии
type TokenIssuer interface {
	Issue(identity domain.Identity) (string, time.Time, error)
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
