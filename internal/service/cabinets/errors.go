package cabinets

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrNotProfessional у пользователя нет профиля специалиста
	ErrNotProfessional = fmt.Errorf("cabinets: caller has no professional profile: %w", domain.ErrForbidden)

	// ErrCabinetNotFound кабинет не найден среди кабинетов специалиста
	ErrCabinetNotFound = fmt.Errorf("cabinets: cabinet not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("cabinets: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cabinets: internal error")
)
