package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-MedicalBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidDate          = "format de date invalide, attendu AAAA-MM-JJ"
	msgInvalidTime          = "format d'heure invalide, attendu HH:MM"
	msgInvalidMode          = "mode invalide, attendu presentiel ou teleconsultation"
	msgUnauthenticated      = "authentification requise"
	msgNotPatient           = "seuls les patients peuvent prendre rendez-vous"
	msgProfessionalNotFound = "professionnel non trouvé"
	msgCabinetNotFound      = "cabinet non trouvé"
	msgReasonNotFound       = "motif de consultation non trouvé"
	msgReasonMismatch       = "ce motif n'appartient pas à la spécialité du professionnel"
	msgInvalidTimeSlot      = "créneau invalide"
	msgSlotNotAvailable     = "ce créneau n'est plus disponible"
	msgAlreadyBooked        = "vous avez déjà un rendez-vous à venir avec ce professionnel"
	msgInvalidInput         = "données invalides"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /rendez-vous/create/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rendez-vous/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /rendez-vous/create - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errBadDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errBadTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidMode)
		}
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /rendez-vous/create - Slot not available: professional_id=%d, date=%s, start=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /rendez-vous/create - Already booked: user_id=%d, professional_id=%d",
				identity.UserID, req.ProfessionalID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, createBooking.ErrNotPatient):
			h.logger.Warn("POST /rendez-vous/create - Not a patient: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgNotPatient)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrCabinetNotFound):
			handlers.RespondNotFound(w, msgCabinetNotFound)

		case errors.Is(err, createBooking.ErrReasonNotFound):
			handlers.RespondNotFound(w, msgReasonNotFound)

		case errors.Is(err, createBooking.ErrReasonSpecialtyMismatch):
			handlers.RespondBadRequest(w, msgReasonMismatch)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /rendez-vous/create - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rendez-vous/create - Failed to create booking: user_id=%d, professional_id=%d, error=%v",
				identity.UserID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rendez-vous/create - Booking created: booking_id=%d, user_id=%d, professional_id=%d",
		booking.ID, identity.UserID, booking.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromBooking(booking))
}
