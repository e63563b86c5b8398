package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrUnauthenticated нет аутентифицированного пользователя
	ErrUnauthenticated = fmt.Errorf("create_booking: authentication required: %w", domain.ErrUnauthorized)

	// ErrNotPatient бронировать может только пациент
	ErrNotPatient = fmt.Errorf("create_booking: only patients can book: %w", domain.ErrForbidden)

	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = fmt.Errorf("create_booking: professional not found: %w", domain.ErrNotFound)

	// ErrCabinetNotFound возвращается, когда кабинет не найден
	ErrCabinetNotFound = fmt.Errorf("create_booking: cabinet not found: %w", domain.ErrNotFound)

	// ErrReasonNotFound возвращается, когда мотив консультации не найден
	ErrReasonNotFound = fmt.Errorf("create_booking: consultation reason not found: %w", domain.ErrNotFound)

	// ErrReasonSpecialtyMismatch мотив относится к другой специальности
	ErrReasonSpecialtyMismatch = fmt.Errorf("create_booking: reason does not belong to the professional's specialty: %w", domain.ErrValidation)

	// ErrInvalidTimeSlot конец консультации выходит за пределы суток
	ErrInvalidTimeSlot = fmt.Errorf("create_booking: invalid time slot: %w", domain.ErrValidation)

	// ErrSlotNotAvailable слот пересекается с живым бронированием
	ErrSlotNotAvailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrConflict)

	// ErrAlreadyBooked у пациента уже есть предстоящая запись к этому специалисту
	ErrAlreadyBooked = fmt.Errorf("create_booking: patient already has an upcoming booking with this professional: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
