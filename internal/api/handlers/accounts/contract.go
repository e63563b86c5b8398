package accounts

import (
	"context"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/accounts/models"
)

type AccountService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, login, password string) (*models.LoginResult, error)
	GetProfile(ctx context.Context, caller domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Identity, update *models.ProfileUpdate) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
