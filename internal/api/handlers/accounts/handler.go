package accounts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	accountService "github.com/m04kA/SMC-MedicalBooking/internal/service/accounts"
)

const (
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidBirthDate    = "format de date de naissance invalide, attendu AAAA-MM-JJ"
	msgMissingCredentials  = "email ou nom d'utilisateur et mot de passe requis"
	msgUnauthenticated     = "authentification requise"
	msgInvalidCredentials  = "identifiants invalides"
	msgAccountInactive     = "compte désactivé ou suspendu"
	msgUsernameTaken       = "ce nom d'utilisateur est déjà utilisé"
	msgEmailTaken          = "cet email est déjà utilisé"
	msgSocialSecurityTaken = "ce numéro de sécurité sociale est déjà enregistré"
	msgUserNotFound        = "utilisateur non trouvé"
	msgInvalidInput        = "données invalides"
	msgLoggedOut           = "déconnexion réussie"
)

type Handler struct {
	service    AccountService
	cookieName string
	logger     Logger
}

func NewHandler(service AccountService, cookieName string, logger Logger) *Handler {
	return &Handler{
		service:    service,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Register POST /register/
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBirthDate)
		return
	}

	user, err := h.service.Register(r.Context(), serviceReq)
	if err != nil {
		h.respondError(w, err, "POST /register")
		return
	}

	h.logger.Info("POST /register - User registered: user_id=%d, role=%s", user.ID, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromUser(user))
}

// Login POST /login/
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Login() == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.service.Login(r.Context(), req.Login(), req.Password)
	if err != nil {
		h.respondError(w, err, "POST /login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      handlers.FromUser(result.User),
	})
}

// Logout POST /logout/
// Токен не хранится на сервере, достаточно удалить cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	handlers.RespondMessage(w, http.StatusOK, msgLoggedOut)
}

// CheckAdmin GET /check-admin/
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"is_admin": identity.IsAdmin()})
}

// GetProfile GET /user/profile/
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	user, err := h.service.GetProfile(r.Context(), identity)
	if err != nil {
		h.respondError(w, err, "GET /user/profile")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromUser(user))
}

// UpdateProfile PUT /user/profile/
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /user/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	update, err := req.ToServiceModel()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBirthDate)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), identity, update)
	if err != nil {
		h.respondError(w, err, "PUT /user/profile")
		return
	}

	h.logger.Info("PUT /user/profile - Profile updated: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromUser(user))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, route string) {
	switch {
	case errors.Is(err, accountService.ErrInvalidCredentials):
		h.logger.Warn("%s - Invalid credentials", route)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
	case errors.Is(err, accountService.ErrAccountInactive):
		handlers.RespondForbidden(w, msgAccountInactive)
	case errors.Is(err, accountService.ErrUsernameTaken):
		handlers.RespondConflict(w, msgUsernameTaken)
	case errors.Is(err, accountService.ErrEmailTaken):
		handlers.RespondConflict(w, msgEmailTaken)
	case errors.Is(err, accountService.ErrSocialSecurityTaken):
		handlers.RespondConflict(w, msgSocialSecurityTaken)
	case errors.Is(err, accountService.ErrUserNotFound):
		handlers.RespondNotFound(w, msgUserNotFound)
	case errors.Is(err, accountService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
