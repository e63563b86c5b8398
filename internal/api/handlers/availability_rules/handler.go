package availability_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability"
)

const (
	msgUnauthenticated      = "authentification requise"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidRuleID        = "identifiant de disponibilité invalide"
	msgInvalidTime          = "format d'heure invalide, attendu HH:MM"
	msgNotProfessional      = "aucun professionnel associé à cet utilisateur"
	msgRuleNotFound         = "disponibilité non trouvée"
	msgCabinetNotFound      = "cabinet non trouvé"
	msgCabinetNotAffiliated = "vous n'exercez pas dans ce cabinet"
	msgInvalidInput         = "données invalides"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /professionnel/disponibilites/
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	rules, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.respondError(w, err, "GET /professionnel/disponibilites")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromRules(rules))
}

// Create POST /professionnel/disponibilites/
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionnel/disponibilites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /professionnel/disponibilites - %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	rule, err := h.service.Create(r.Context(), identity, serviceReq)
	if err != nil {
		h.respondError(w, err, "POST /professionnel/disponibilites")
		return
	}

	h.logger.Info("POST /professionnel/disponibilites - Rule created: rule_id=%d, professional_id=%d",
		rule.ID, rule.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromRule(rule))
}

// Update PUT /professionnel/disponibilites/{id}/
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	ruleID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionnel/disponibilites/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	rule, err := h.service.Update(r.Context(), identity, ruleID, serviceReq)
	if err != nil {
		h.respondError(w, err, "PUT /professionnel/disponibilites/{id}")
		return
	}

	h.logger.Info("PUT /professionnel/disponibilites/{id} - Rule updated: rule_id=%d", rule.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromRule(rule))
}

// Delete DELETE /professionnel/disponibilites/{id}/
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	ruleID, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), identity, ruleID); err != nil {
		h.respondError(w, err, "DELETE /professionnel/disponibilites/{id}")
		return
	}

	h.logger.Info("DELETE /professionnel/disponibilites/{id} - Rule deleted: rule_id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, availability.ErrNotProfessional):
		handlers.RespondForbidden(w, msgNotProfessional)
	case errors.Is(err, availability.ErrRuleNotFound):
		handlers.RespondNotFound(w, msgRuleNotFound)
	case errors.Is(err, availability.ErrCabinetNotFound):
		handlers.RespondNotFound(w, msgCabinetNotFound)
	case errors.Is(err, availability.ErrCabinetNotAffiliated):
		handlers.RespondBadRequest(w, msgCabinetNotAffiliated)
	case errors.Is(err, availability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
