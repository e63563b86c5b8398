package favorites

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	favoriteService "github.com/m04kA/SMC-MedicalBooking/internal/service/favorites"
)

const (
	msgUnauthenticated      = "authentification requise"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidProfessional  = "identifiant de professionnel invalide"
	msgNotPatient           = "les favoris sont réservés aux patients"
	msgProfessionalNotFound = "professionnel non trouvé"
	msgFavoriteNotFound     = "ce professionnel n'est pas dans vos favoris"
	msgAlreadyFavorite      = "ce professionnel est déjà dans vos favoris"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /favoris/
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	list, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.respondError(w, err, "GET /favoris")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromFavorites(list))
}

// Add POST /favoris/
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req AddFavoriteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /favoris - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ProfessionalID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidProfessional)
		return
	}

	fav, err := h.service.Add(r.Context(), identity, req.ProfessionalID)
	if err != nil {
		h.respondError(w, err, "POST /favoris")
		return
	}

	h.logger.Info("POST /favoris - Favorite added: user_id=%d, professional_id=%d", identity.UserID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromFavorite(fav))
}

// Remove DELETE /favoris/{professionnel_id}/
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	professionalID, err := handlers.PathID(r, "professionnel_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProfessional)
		return
	}

	if err := h.service.Remove(r.Context(), identity, professionalID); err != nil {
		h.respondError(w, err, "DELETE /favoris/{professionnel_id}")
		return
	}

	h.logger.Info("DELETE /favoris/{professionnel_id} - Favorite removed: user_id=%d, professional_id=%d",
		identity.UserID, professionalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, favoriteService.ErrNotPatient):
		handlers.RespondForbidden(w, msgNotPatient)
	case errors.Is(err, favoriteService.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgProfessionalNotFound)
	case errors.Is(err, favoriteService.ErrFavoriteNotFound):
		handlers.RespondNotFound(w, msgFavoriteNotFound)
	case errors.Is(err, favoriteService.ErrAlreadyFavorite):
		handlers.RespondConflict(w, msgAlreadyFavorite)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
