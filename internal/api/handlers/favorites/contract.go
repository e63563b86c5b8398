package favorites

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

type FavoriteService interface {
	Add(ctx context.Context, caller domain.Identity, professionalID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, caller domain.Identity, professionalID int64) error
	List(ctx context.Context, caller domain.Identity) ([]*domain.Favorite, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
