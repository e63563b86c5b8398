package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrSpecialtyNotFound специальность не найдена
	ErrSpecialtyNotFound = fmt.Errorf("catalog: specialty not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
