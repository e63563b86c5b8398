package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-MedicalBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*domain.Booking, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{
		ID:             11,
		PatientID:      req.Identity.UserID,
		ProfessionalID: req.ProfessionalID,
		CabinetID:      req.CabinetID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        "09:30",
		Status:         domain.StatusConfirmed,
		Mode:           req.Mode,
	}, nil
}

var patient = domain.Identity{UserID: 4, Role: domain.RolePatient}

func serve(t *testing.T, uc *fakeUseCase, body string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rendez-vous/create/", strings.NewReader(body))
	if withIdentity {
		req = req.WithContext(middleware.WithIdentity(req.Context(), patient))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	body := `{"professionnel_id":1,"cabinet_id":10,"date":"2026-03-02","heure_debut":"09:00","mode":"Teleconsultation"}`

	rec := serve(t, uc, body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, patient, uc.got.Identity)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, domain.ModeRemote, uc.got.Mode)

	var resp handlers.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "09:30", resp.EndTime)
	assert.Equal(t, "confirme", resp.Status)
}

func TestHandle_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"not json", `{`, msgInvalidRequestBody},
		{"bad date", `{"date":"02/03/2026","heure_debut":"09:00"}`, msgInvalidDate},
		{"bad time", `{"date":"2026-03-02","heure_debut":"9h"}`, msgInvalidTime},
		{"bad mode", `{"date":"2026-03-02","heure_debut":"09:00","mode":"visio"}`, msgInvalidMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := serve(t, uc, tc.body, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.msg)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{createBooking.ErrSlotNotAvailable, http.StatusConflict, "conflict"},
		{createBooking.ErrAlreadyBooked, http.StatusConflict, "conflict"},
		{createBooking.ErrNotPatient, http.StatusForbidden, "forbidden"},
		{createBooking.ErrCabinetNotFound, http.StatusNotFound, "not_found"},
		{createBooking.ErrReasonSpecialtyMismatch, http.StatusBadRequest, "validation"},
		{fmt.Errorf("%w: boom", createBooking.ErrInternal), http.StatusInternalServerError, "internal"},
	}
	body := `{"professionnel_id":1,"cabinet_id":10,"date":"2026-03-02","heure_debut":"09:00"}`
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tc.err}, body, true)

			assert.Equal(t, tc.status, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.kind, resp.Kind)
		})
	}
}

func TestHandle_NoIdentity(t *testing.T) {
	rec := serve(t, &fakeUseCase{}, `{}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
