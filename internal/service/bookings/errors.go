package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование
	ErrAccessDenied = fmt.Errorf("bookings: access denied: %w", domain.ErrForbidden)

	// ErrNotesForbidden заметки специалиста может писать только специалист
	ErrNotesForbidden = fmt.Errorf("bookings: only the professional can write professional notes: %w", domain.ErrForbidden)

	// ErrNotProfessional у пользователя нет профиля специалиста
	ErrNotProfessional = fmt.Errorf("bookings: caller has no professional profile: %w", domain.ErrForbidden)

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = fmt.Errorf("bookings: invalid booking status: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings: invalid input data: %w", domain.ErrValidation)

	// ErrSlotNotAvailable слот отменённого бронирования уже занят
	ErrSlotNotAvailable = fmt.Errorf("bookings: slot is no longer available: %w", domain.ErrConflict)

	// ErrAlreadyBooked у пациента уже есть другая живая запись к этому специалисту
	ErrAlreadyBooked = fmt.Errorf("bookings: patient already has an upcoming booking with this professional: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
