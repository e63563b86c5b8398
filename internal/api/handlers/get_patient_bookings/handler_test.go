package get_patient_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

type fakeService struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeService) GetPatientBookings(context.Context, domain.Identity) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

func serve(svc *fakeService, withIdentity bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/rendez-vous/", nil)
	if withIdentity {
		req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: 4, Role: domain.RolePatient}))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{bookings: []*domain.Booking{{
		ID: 1, PatientID: 4, Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed, Mode: domain.ModeInPerson,
	}}}

	rec := serve(svc, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-03-02"`)
	assert.Contains(t, rec.Body.String(), `"heure_debut":"09:00"`)
}

func TestHandle_Empty(t *testing.T) {
	rec := serve(&fakeService{}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, false).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db down")}, true).Code)
}
