package middleware

import (
	"time"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

// SessionParser восстанавливает identity из токена сессии
type SessionParser interface {
	Parse(raw string) (domain.Identity, error)
}

// HTTPMetrics коллектор метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
