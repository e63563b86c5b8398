package professional_cabinets

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/cabinets"
)

const (
	msgUnauthenticated    = "authentification requise"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCabinetID   = "identifiant de cabinet invalide"
	msgNotProfessional    = "aucun professionnel associé à cet utilisateur"
	msgCabinetNotFound    = "cabinet non trouvé"
	msgInvalidInput       = "nom, adresse, ville et code_postal sont obligatoires"
)

type Handler struct {
	service CabinetService
	logger  Logger
}

func NewHandler(service CabinetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /professionnel/cabinets/
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	list, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.respondError(w, err, "GET /professionnel/cabinets")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromCabinets(list))
}

// Create POST /professionnel/cabinets/
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req handlers.CabinetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionnel/cabinets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cabinet, err := h.service.Attach(r.Context(), identity, req.ToDomain(0))
	if err != nil {
		h.respondError(w, err, "POST /professionnel/cabinets")
		return
	}

	h.logger.Info("POST /professionnel/cabinets - Cabinet attached: cabinet_id=%d, user_id=%d",
		cabinet.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromCabinet(*cabinet))
}

// Update PUT /professionnel/cabinets/{id}/
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	cabinetID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCabinetID)
		return
	}

	var req handlers.CabinetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionnel/cabinets/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cabinet, err := h.service.Update(r.Context(), identity, req.ToDomain(cabinetID))
	if err != nil {
		h.respondError(w, err, "PUT /professionnel/cabinets/{id}")
		return
	}

	h.logger.Info("PUT /professionnel/cabinets/{id} - Cabinet updated: cabinet_id=%d", cabinet.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromCabinet(*cabinet))
}

// Delete DELETE /professionnel/cabinets/{id}/
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	cabinetID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCabinetID)
		return
	}

	if err := h.service.Detach(r.Context(), identity, cabinetID); err != nil {
		h.respondError(w, err, "DELETE /professionnel/cabinets/{id}")
		return
	}

	h.logger.Info("DELETE /professionnel/cabinets/{id} - Cabinet detached: cabinet_id=%d, user_id=%d",
		cabinetID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, cabinets.ErrNotProfessional):
		handlers.RespondForbidden(w, msgNotProfessional)
	case errors.Is(err, cabinets.ErrCabinetNotFound):
		handlers.RespondNotFound(w, msgCabinetNotFound)
	case errors.Is(err, cabinets.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
