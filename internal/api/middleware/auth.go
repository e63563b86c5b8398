package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

const (
	msgUnauthorized  = "authentification requise"
	msgAdminOnly     = "accès réservé aux administrateurs"
	msgInvalidSession = "session invalide ou expirée"
)

type identityKey struct{}

// WithIdentity кладет identity в контекст
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext identity аутентифицированного пользователя
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// Auth требует токен сессии: заголовок "Authorization: Bearer <token>" или cookie
func Auth(sessions SessionParser, cookieName string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r, cookieName)
			if raw == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			identity, err := sessions.Parse(raw)
			if err != nil {
				logger.Warn("%s %s - Invalid session: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if !identity.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
