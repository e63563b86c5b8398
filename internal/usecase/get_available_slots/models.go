package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	ProfessionalID int64
	Date           *time.Time // nil - вернуть сами правила
	CabinetID      *int64     // опциональный фильтр по кабинету
}

// Response либо свободные слоты на дату, либо правила специалиста
type Response struct {
	Date  *time.Time
	Slots []types.TimeString // по возрастанию, без повторов
	Rules []*domain.AvailabilityRule
}

// HasDate true, если ответ содержит слоты
func (r *Response) HasDate() bool {
	return r.Date != nil
}
