package get_available_slots

import (
	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-MedicalBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse свободные начала приёма на дату
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse слоты на дату; без даты ответом служат сами правила
func FromUseCaseResponse(resp *getAvailableSlots.Response) interface{} {
	if !resp.HasDate() {
		return handlers.FromRules(resp.Rules)
	}

	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
