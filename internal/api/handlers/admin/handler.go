package admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/accounts"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
)

const (
	msgUnauthenticated      = "authentification requise"
	msgAdminOnly            = "accès réservé aux administrateurs"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidID            = "identifiant invalide"
	msgBookingNotFound      = "rendez-vous non trouvé"
	msgUserNotFound         = "utilisateur non trouvé"
	msgCannotDeleteAdmin    = "impossible de supprimer un administrateur"
	msgProfessionalNotFound = "professionnel non trouvé"
	msgInvalidValidation    = "statut de validation invalide, attendu en_attente, valide ou refuse"
	msgDuplicate            = "email, numéro RPPS ou compte déjà utilisé"
	msgUnknownSpecialty     = "spécialité inconnue"
	msgInvalidInput         = "données invalides"
	msgBookingDeleted       = "rendez-vous supprimé"
	msgUserDeleted          = "utilisateur supprimé"
)

// Handler модерация: бронирования, клиенты, специалисты
type Handler struct {
	bookings      BookingService
	accounts      AccountService
	professionals ProfessionalService
	logger        Logger
}

func NewHandler(
	bookingService BookingService,
	accountService AccountService,
	professionalService ProfessionalService,
	logger Logger,
) *Handler {
	return &Handler{
		bookings:      bookingService,
		accounts:      accountService,
		professionals: professionalService,
		logger:        logger,
	}
}

// ListBookings GET /admin/rendez-vous/
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookings.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/rendez-vous - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(list))
}

// DeleteBooking DELETE /admin/rendez-vous/{id}/
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /admin/rendez-vous/{id} - Failed to delete booking: booking_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/rendez-vous/{id} - Booking deleted: booking_id=%d", id)
	handlers.RespondMessage(w, http.StatusOK, msgBookingDeleted)
}

// ListClients GET /admin/clients/
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	users, err := h.accounts.ListUsers(r.Context(), identity)
	if err != nil {
		h.respondAccountError(w, err, "GET /admin/clients")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromUsers(users))
}

// DeleteClient DELETE /admin/clients/{id}/
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.accounts.DeleteUser(r.Context(), identity, id); err != nil {
		h.respondAccountError(w, err, "DELETE /admin/clients/{id}")
		return
	}

	h.logger.Info("DELETE /admin/clients/{id} - User deleted: user_id=%d, admin_id=%d", id, identity.UserID)
	handlers.RespondMessage(w, http.StatusOK, msgUserDeleted)
}

// SetValidation PUT /admin/professionnels/{id}/validation/
func (h *Handler) SetValidation(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ValidationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pro, err := h.professionals.SetValidation(r.Context(), identity, id, req.Status)
	if err != nil {
		if errors.Is(err, professionals.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidValidation)
			return
		}
		h.respondProfessionalError(w, err, "PUT /admin/professionnels/{id}/validation")
		return
	}

	h.logger.Info("PUT /admin/professionnels/{id}/validation - Validation set: professional_id=%d, status=%s",
		pro.ID, pro.ValidationStatus)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessional(pro))
}

// ListProfessionals GET /professionnels/manage/
func (h *Handler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	list, err := h.professionals.List(r.Context(), identity)
	if err != nil {
		h.respondProfessionalError(w, err, "GET /professionnels/manage")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessionals(list))
}

// GetProfessional GET /professionnels/manage/{id}/
func (h *Handler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	pro, err := h.professionals.Get(r.Context(), identity, id)
	if err != nil {
		h.respondProfessionalError(w, err, "GET /professionnels/manage/{id}")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessional(pro))
}

// CreateProfessional POST /professionnels/manage/
func (h *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionnels/manage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pro, err := h.professionals.Create(r.Context(), identity, req.ToDomain())
	if err != nil {
		h.respondProfessionalError(w, err, "POST /professionnels/manage")
		return
	}

	h.logger.Info("POST /professionnels/manage - Professional created: professional_id=%d", pro.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromProfessional(pro))
}

// UpdateProfessional PUT /professionnels/manage/{id}/
func (h *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionnels/manage/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pro, err := h.professionals.Update(r.Context(), identity, id, req.ToAdminUpdate())
	if err != nil {
		h.respondProfessionalError(w, err, "PUT /professionnels/manage/{id}")
		return
	}

	h.logger.Info("PUT /professionnels/manage/{id} - Professional updated: professional_id=%d", pro.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessional(pro))
}

// DeleteProfessional DELETE /professionnels/manage/{id}/
func (h *Handler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.professionals.Delete(r.Context(), identity, id); err != nil {
		h.respondProfessionalError(w, err, "DELETE /professionnels/manage/{id}")
		return
	}

	h.logger.Info("DELETE /professionnels/manage/{id} - Professional deleted: professional_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondAccountError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, accounts.ErrAdminOnly):
		handlers.RespondForbidden(w, msgAdminOnly)
	case errors.Is(err, accounts.ErrUserNotFound):
		handlers.RespondNotFound(w, msgUserNotFound)
	case errors.Is(err, accounts.ErrCannotDeleteAdmin):
		h.logger.Warn("%s - Attempt to delete an administrator", route)
		handlers.RespondBadRequest(w, msgCannotDeleteAdmin)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) respondProfessionalError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, professionals.ErrAdminOnly):
		handlers.RespondForbidden(w, msgAdminOnly)
	case errors.Is(err, professionals.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgProfessionalNotFound)
	case errors.Is(err, professionals.ErrDuplicate):
		handlers.RespondConflict(w, msgDuplicate)
	case errors.Is(err, professionals.ErrUnknownSpecialty):
		handlers.RespondBadRequest(w, msgUnknownSpecialty)
	case errors.Is(err, professionals.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
