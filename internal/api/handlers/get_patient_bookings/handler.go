package get_patient_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
)

const msgUnauthenticated = "authentification requise"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /rendez-vous/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.GetPatientBookings(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /rendez-vous - Failed to get bookings: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rendez-vous - Bookings retrieved: user_id=%d, count=%d", identity.UserID, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(result))
}
