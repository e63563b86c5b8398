package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "identifiant de rendez-vous invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgUnauthenticated    = "authentification requise"
	msgNotFound           = "rendez-vous non trouvé"
	msgForbidden          = "accès refusé"
	msgNotesForbidden     = "seul le professionnel peut saisir ses notes"
	msgInvalidStatus      = "statut invalide, attendu confirme, annule, termine ou no_show"
	msgInvalidInput       = "données invalides"
	msgSlotNotAvailable   = "le créneau de ce rendez-vous a été repris entre-temps"
	msgAlreadyBooked      = "vous avez déjà un rendez-vous à venir avec ce professionnel"
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

// Handle PUT /rendez-vous/{id}/statut/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /rendez-vous/{id}/statut - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rendez-vous/{id}/statut - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), identity, bookingID, req.Status, req.ProfessionalNotes)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /rendez-vous/{id}/statut - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotesForbidden):
			handlers.RespondForbidden(w, msgNotesForbidden)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /rendez-vous/{id}/statut - Access denied: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PUT /rendez-vous/{id}/statut - Slot taken meanwhile: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrAlreadyBooked):
			h.logger.Warn("PUT /rendez-vous/{id}/statut - Patient already booked with professional: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		default:
			h.logger.Error("PUT /rendez-vous/{id}/statut - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rendez-vous/{id}/statut - Status updated: booking_id=%d, status=%s, user_id=%d",
		bookingID, booking.Status, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBooking(booking))
}
