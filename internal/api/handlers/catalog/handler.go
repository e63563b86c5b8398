package catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-MedicalBooking/internal/service/catalog"
)

const (
	msgInvalidSpecialtyID = "identifiant de spécialité invalide"
	msgSpecialtyNotFound  = "spécialité non trouvée"
)

// Handler публичные справочники
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Specialties GET /specialites/
func (h *Handler) Specialties(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListSpecialties(r.Context())
	if err != nil {
		h.logger.Error("GET /specialites - Failed to list specialties: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSpecialties(list))
}

// Professionals GET /professionnels/?specialite_id=
func (h *Handler) Professionals(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.QueryID(r, "specialite_id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	list, err := h.service.ListProfessionals(r.Context(), specialtyID)
	if err != nil {
		h.logger.Error("GET /professionnels - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromProfessionals(list))
}

// Cabinets GET /cabinets/
func (h *Handler) Cabinets(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListCabinets(r.Context())
	if err != nil {
		h.logger.Error("GET /cabinets - Failed to list cabinets: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromCabinets(list))
}

// Reasons GET /specialites/{id}/motifs/
func (h *Handler) Reasons(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	list, err := h.service.ListReasons(r.Context(), specialtyID)
	if err != nil {
		if errors.Is(err, catalogService.ErrSpecialtyNotFound) {
			handlers.RespondNotFound(w, msgSpecialtyNotFound)
			return
		}
		h.logger.Error("GET /specialites/{id}/motifs - Failed to list reasons: specialty_id=%d, error=%v",
			specialtyID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReasons(list))
}
