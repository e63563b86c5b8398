package professional_profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

type fakeService struct {
	pro *domain.Professional
	err error
}

func (f *fakeService) GetOwn(context.Context, domain.Identity) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pro, nil
}

func (f *fakeService) UpdateOwn(_ context.Context, _ domain.Identity, update *models.ProfileUpdate) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	update.Apply(f.pro)
	return f.pro, nil
}

func withIdentity(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: 3, Role: domain.RoleProfessional}))
}

func TestGet(t *testing.T) {
	svc := &fakeService{pro: &domain.Professional{ID: 5, LastName: "Martin", SpecialtyID: 1, ConsultationFee: 50}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Get(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/professionnel/profile/", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nom":"Martin"`)
}

func TestUpdate(t *testing.T) {
	svc := &fakeService{pro: &domain.Professional{ID: 5, ConsultationFee: 50}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/professionnel/profile/",
		strings.NewReader(`{"tarif_consultation":60,"accepte_teleconsultation":true}`))

	NewHandler(svc, logger.NewNop()).Update(rec, withIdentity(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60.0, svc.pro.ConsultationFee)
	assert.True(t, svc.pro.AcceptsRemote)
}

func TestErrors(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"not professional": {professionals.ErrNotProfessional, http.StatusForbidden},
		"negative fee":     {professionals.ErrInvalidInput, http.StatusBadRequest},
		"internal":         {professionals.ErrInternal, http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/professionnel/profile/", strings.NewReader(`{"tarif_consultation":-1}`))

			NewHandler(&fakeService{err: tc.err}, logger.NewNop()).Update(rec, withIdentity(req))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
