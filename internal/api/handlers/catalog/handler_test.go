package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	catalogService "github.com/m04kA/SMC-MedicalBooking/internal/service/catalog"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

type fakeService struct {
	gotSpecialty *int64
}

func (f *fakeService) ListSpecialties(context.Context) ([]*domain.Specialty, error) {
	return []*domain.Specialty{{ID: 1, Name: "Cardiologie"}}, nil
}

func (f *fakeService) ListProfessionals(_ context.Context, specialtyID *int64) ([]*domain.Professional, error) {
	f.gotSpecialty = specialtyID
	return []*domain.Professional{{
		ID: 5, LastName: "Martin", SpecialtyID: 1, SpecialtyName: "Cardiologie",
		Cabinets: []domain.Cabinet{{ID: 2, Name: "Cabinet Pasteur"}},
	}}, nil
}

func (f *fakeService) ListCabinets(context.Context) ([]*domain.Cabinet, error) {
	return nil, catalogService.ErrInternal
}

func (f *fakeService) ListReasons(_ context.Context, specialtyID int64) ([]*domain.ConsultationReason, error) {
	if specialtyID != 1 {
		return nil, catalogService.ErrSpecialtyNotFound
	}
	return []*domain.ConsultationReason{{ID: 3, SpecialtyID: 1, Label: "Bilan", DurationMinutes: 45}}, nil
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/specialites/", h.Specialties)
	r.HandleFunc("/specialites/{id}/motifs/", h.Reasons)
	r.HandleFunc("/professionnels/", h.Professionals)
	r.HandleFunc("/cabinets/", h.Cabinets)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestProfessionals(t *testing.T) {
	svc := &fakeService{}

	rec := get(newRouter(svc), "/professionnels/?specialite_id=1")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotSpecialty)
	assert.Equal(t, int64(1), *svc.gotSpecialty)

	var got []handlers.ProfessionalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Cardiologie", got[0].Specialty.Name)
	require.Len(t, got[0].Cabinets, 1)
	assert.Equal(t, "Cabinet Pasteur", got[0].Cabinets[0].Name)

	rec = get(newRouter(svc), "/professionnels/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotSpecialty)

	rec = get(newRouter(svc), "/professionnels/?specialite_id=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpecialtiesAndReasons(t *testing.T) {
	r := newRouter(&fakeService{})

	rec := get(r, "/specialites/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nom":"Cardiologie"`)

	rec = get(r, "/specialites/1/motifs/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"duree_estimee":45`)

	rec = get(r, "/specialites/9/motifs/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCabinets_InternalError(t *testing.T) {
	rec := get(newRouter(&fakeService{}), "/cabinets/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "catalog:")
}
