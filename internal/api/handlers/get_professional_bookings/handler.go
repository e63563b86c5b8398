package get_professional_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
)

const (
	msgUnauthenticated = "authentification requise"
	msgNotProfessional = "aucun professionnel associé à cet utilisateur"
)

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

// Handle GET /rendez-vous/professionnel/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.GetProfessionalBookings(r.Context(), identity)
	if err != nil {
		if errors.Is(err, bookings.ErrNotProfessional) {
			h.logger.Warn("GET /rendez-vous/professionnel - No professional profile: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgNotProfessional)
			return
		}
		h.logger.Error("GET /rendez-vous/professionnel - Failed to get bookings: user_id=%d, error=%v",
			identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rendez-vous/professionnel - Bookings retrieved: professional_id=%d, count=%d",
		*identity.ProfessionalID, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(result))
}
