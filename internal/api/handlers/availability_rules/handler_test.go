package availability_rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
)

type fakeService struct {
	created *models.CreateRuleRequest
	updated *models.UpdateRuleRequest
	deleted int64
	err     error
}

func (f *fakeService) List(context.Context, domain.Identity) ([]*domain.AvailabilityRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.AvailabilityRule{{ID: 1, ProfessionalID: 5, CabinetID: 2, Weekday: 0, StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30}}, nil
}

func (f *fakeService) Create(_ context.Context, caller domain.Identity, req *models.CreateRuleRequest) (*domain.AvailabilityRule, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	rule := req.ToDomainRule(*caller.ProfessionalID)
	rule.ID = 10
	return rule, nil
}

func (f *fakeService) Update(_ context.Context, _ domain.Identity, id int64, req *models.UpdateRuleRequest) (*domain.AvailabilityRule, error) {
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	rule := &domain.AvailabilityRule{ID: id, ProfessionalID: 5, CabinetID: 2, StartTime: "09:00", EndTime: "12:00", SlotMinutes: 30}
	req.Apply(rule)
	return rule, nil
}

func (f *fakeService) Delete(_ context.Context, _ domain.Identity, id int64) error {
	f.deleted = id
	return f.err
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			identity := domain.Identity{UserID: 3, Role: domain.RoleProfessional, ProfessionalID: ptr.Ptr(int64(5))}
			next.ServeHTTP(w, req.WithContext(middleware.WithIdentity(req.Context(), identity)))
		})
	})
	r.HandleFunc("/professionnel/disponibilites/", h.List).Methods(http.MethodGet)
	r.HandleFunc("/professionnel/disponibilites/", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/professionnel/disponibilites/{id}/", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/professionnel/disponibilites/{id}/", h.Delete).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestList(t *testing.T) {
	rec := do(newRouter(&fakeService{}), http.MethodGet, "/professionnel/disponibilites/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []handlers.RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "09:00", got[0].StartTime)
	assert.Equal(t, 30, got[0].SlotMinutes)
}

func TestCreate(t *testing.T) {
	t.Run("default slot duration", func(t *testing.T) {
		svc := &fakeService{}
		rec := do(newRouter(svc), http.MethodPost, "/professionnel/disponibilites/",
			`{"cabinet_id":2,"jour_semaine":1,"heure_debut":"14:00","heure_fin":"18:00"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.created)
		assert.Nil(t, svc.created.SlotMinutes)
		assert.Contains(t, rec.Body.String(), `"duree_creneau":30`)
	})

	t.Run("bad time", func(t *testing.T) {
		svc := &fakeService{}
		rec := do(newRouter(svc), http.MethodPost, "/professionnel/disponibilites/",
			`{"cabinet_id":2,"jour_semaine":1,"heure_debut":"2pm","heure_fin":"18:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.created)
	})

	t.Run("not affiliated", func(t *testing.T) {
		svc := &fakeService{err: availability.ErrCabinetNotAffiliated}
		rec := do(newRouter(svc), http.MethodPost, "/professionnel/disponibilites/",
			`{"cabinet_id":9,"jour_semaine":1,"heure_debut":"14:00","heure_fin":"18:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgCabinetNotAffiliated)
	})
}

func TestUpdate(t *testing.T) {
	svc := &fakeService{}
	rec := do(newRouter(svc), http.MethodPut, "/professionnel/disponibilites/4/", `{"heure_fin":"13:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated.EndTime)
	assert.Nil(t, svc.updated.StartTime)
	assert.Contains(t, rec.Body.String(), `"heure_fin":"13:00"`)

	rec = do(newRouter(&fakeService{err: availability.ErrRuleNotFound}), http.MethodPut,
		"/professionnel/disponibilites/4/", `{"heure_fin":"13:00"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	svc := &fakeService{}
	rec := do(newRouter(svc), http.MethodDelete, "/professionnel/disponibilites/4/", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(4), svc.deleted)

	rec = do(newRouter(&fakeService{err: availability.ErrNotProfessional}), http.MethodDelete,
		"/professionnel/disponibilites/4/", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
