package professionals

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrNotProfessional у пользователя нет профиля специалиста
	ErrNotProfessional = fmt.Errorf("professionals: caller has no professional profile: %w", domain.ErrForbidden)

	// ErrAdminOnly операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("professionals: administrator role required: %w", domain.ErrForbidden)

	// ErrProfessionalNotFound специалист не найден
	ErrProfessionalNotFound = fmt.Errorf("professionals: professional not found: %w", domain.ErrNotFound)

	// ErrDuplicate email, RPPS или учётная запись уже используются
	ErrDuplicate = fmt.Errorf("professionals: email, rpps or user already used: %w", domain.ErrConflict)

	// ErrUnknownSpecialty специальность не существует
	ErrUnknownSpecialty = fmt.Errorf("professionals: unknown specialty: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("professionals: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("professionals: internal error")
)
