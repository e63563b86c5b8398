package favorites

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrNotPatient избранное доступно только пациентам
	ErrNotPatient = fmt.Errorf("favorites: only patients have favorites: %w", domain.ErrForbidden)

	// ErrProfessionalNotFound специалист не найден
	ErrProfessionalNotFound = fmt.Errorf("favorites: professional not found: %w", domain.ErrNotFound)

	// ErrFavoriteNotFound специалиста нет в избранном
	ErrFavoriteNotFound = fmt.Errorf("favorites: favorite not found: %w", domain.ErrNotFound)

	// ErrAlreadyFavorite специалист уже в избранном
	ErrAlreadyFavorite = fmt.Errorf("favorites: professional already in favorites: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favorites: internal error")
)
