package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

const issuer = "medbook"

// Claims содержимое токена сессии
type Claims struct {
	Role           string `json:"role"`
	ProfessionalID *int64 `json:"professional_id,omitempty"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены сессии (HS256)
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создает менеджер сессий
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL время жизни токена
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает токен для identity и возвращает его вместе со временем истечения
func (m *Manager) Issue(identity domain.Identity) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Role:           string(identity.Role),
		ProfessionalID: identity.ProfessionalID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrSign, err)
	}
	return token, expiresAt, nil
}

// Parse проверяет токен и восстанавливает identity
func (m *Manager) Parse(raw string) (domain.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return domain.Identity{
		UserID:         userID,
		Role:           role,
		ProfessionalID: claims.ProfessionalID,
	}, nil
}
