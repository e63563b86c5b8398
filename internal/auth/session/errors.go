package session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrInvalidToken токен не прошёл проверку подписи или срока
	ErrInvalidToken = fmt.Errorf("session: invalid token: %w", domain.ErrUnauthorized)

	// ErrSign ошибка подписи токена
	ErrSign = errors.New("session: failed to sign token")
)
