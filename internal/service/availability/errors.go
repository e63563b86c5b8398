package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrNotProfessional у пользователя нет профиля специалиста
	ErrNotProfessional = fmt.Errorf("availability: caller has no professional profile: %w", domain.ErrForbidden)

	// ErrRuleNotFound правило не найдено или принадлежит другому специалисту
	ErrRuleNotFound = fmt.Errorf("availability: rule not found: %w", domain.ErrNotFound)

	// ErrCabinetNotFound кабинет не существует
	ErrCabinetNotFound = fmt.Errorf("availability: cabinet not found: %w", domain.ErrNotFound)

	// ErrCabinetNotAffiliated специалист не принимает в этом кабинете
	ErrCabinetNotAffiliated = fmt.Errorf("availability: professional is not affiliated with the cabinet: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("availability: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
