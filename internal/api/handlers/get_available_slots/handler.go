package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-MedicalBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "identifiant de professionnel invalide"
	msgInvalidDate           = "format de date invalide, attendu AAAA-MM-JJ"
	msgInvalidCabinetID      = "identifiant de cabinet invalide"
	msgProfessionalNotFound  = "professionnel non trouvé"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /professionnels/{id}/disponibilites/?date=YYYY-MM-DD&cabinet_id=
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /professionnels/{id}/disponibilites - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	req := &getAvailableSlots.Request{ProfessionalID: professionalID}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /professionnels/{id}/disponibilites - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	req.CabinetID, err = handlers.QueryID(r, "cabinet_id")
	if err != nil {
		h.logger.Warn("GET /professionnels/{id}/disponibilites - Invalid cabinet ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCabinetID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionnels/{id}/disponibilites - Professional not found: id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionnels/{id}/disponibilites - Failed to get slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionnels/{id}/disponibilites - professional_id=%d, slots=%d, rules=%d",
		professionalID, len(result.Slots), len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
