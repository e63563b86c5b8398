package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
)

// Recover переводит панику обработчика в 500 и пишет стек в лог
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - panic (request_id=%s): %v\n%s",
						r.Method, r.URL.Path, RequestIDFromContext(r.Context()), rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
