package professional_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
)

const (
	msgUnauthenticated    = "authentification requise"
	msgInvalidRequestBody = "corps de requête invalide"
	msgNotProfessional    = "aucun professionnel associé à cet utilisateur"
	msgNotFound           = "professionnel non trouvé"
	msgInvalidInput       = "données invalides"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /professionnel/profile/
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	pro, err := h.service.GetOwn(r.Context(), identity)
	if err != nil {
		h.respondError(w, err, "GET /professionnel/profile")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessional(pro))
}

// Update PUT /professionnel/profile/
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionnel/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pro, err := h.service.UpdateOwn(r.Context(), identity, req.ToServiceModel())
	if err != nil {
		h.respondError(w, err, "PUT /professionnel/profile")
		return
	}

	h.logger.Info("PUT /professionnel/profile - Profile updated: professional_id=%d", pro.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessional(pro))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, professionals.ErrNotProfessional):
		handlers.RespondForbidden(w, msgNotProfessional)
	case errors.Is(err, professionals.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, professionals.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
