package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Identity       domain.Identity  // Кто бронирует
	ProfessionalID int64            // ID специалиста
	CabinetID      int64            // ID кабинета
	Date           time.Time        // Дата (без времени)
	StartTime      types.TimeString // Время начала, например "10:00"
	Mode           domain.BookingMode
	ReasonID       *int64  // Мотив консультации (опционально)
	PatientNotes   *string // Заметки пациента (опционально)
}

// Исходы попытки бронирования для метрик
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
