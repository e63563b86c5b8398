package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/accounts"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

type fakeBookings struct{ deleted []int64 }

func (f *fakeBookings) ListAll(context.Context) ([]*domain.Booking, error) {
	return []*domain.Booking{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeBookings) Delete(_ context.Context, id int64) error {
	if id == 404 {
		return bookings.ErrBookingNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAccounts struct {
	users map[int64]*domain.User
}

func (f *fakeAccounts) ListUsers(_ context.Context, caller domain.Identity) ([]*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, accounts.ErrAdminOnly
	}
	result := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeAccounts) DeleteUser(_ context.Context, _ domain.Identity, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return accounts.ErrUserNotFound
	}
	if u.IsAdmin() {
		return accounts.ErrCannotDeleteAdmin
	}
	delete(f.users, id)
	return nil
}

type fakeProfessionals struct {
	created   *domain.Professional
	update    *models.AdminUpdate
	validated string
}

func (f *fakeProfessionals) List(context.Context, domain.Identity) ([]*domain.Professional, error) {
	return []*domain.Professional{}, nil
}

func (f *fakeProfessionals) Get(_ context.Context, _ domain.Identity, id int64) (*domain.Professional, error) {
	if id != 5 {
		return nil, professionals.ErrProfessionalNotFound
	}
	return &domain.Professional{ID: 5}, nil
}

func (f *fakeProfessionals) Create(_ context.Context, _ domain.Identity, pro *domain.Professional) (*domain.Professional, error) {
	f.created = pro
	if pro.RPPS == "" {
		return nil, professionals.ErrInvalidInput
	}
	pro.ID = 6
	return pro, nil
}

func (f *fakeProfessionals) Update(_ context.Context, _ domain.Identity, id int64, update *models.AdminUpdate) (*domain.Professional, error) {
	f.update = update
	pro := &domain.Professional{ID: id, LastName: "Martin"}
	update.Apply(pro)
	return pro, nil
}

func (f *fakeProfessionals) Delete(context.Context, domain.Identity, int64) error {
	return professionals.ErrDuplicate
}

func (f *fakeProfessionals) SetValidation(_ context.Context, _ domain.Identity, id int64, raw string) (*domain.Professional, error) {
	status, err := domain.ParseValidationStatus(raw)
	if err != nil {
		return nil, professionals.ErrInvalidInput
	}
	f.validated = raw
	return &domain.Professional{ID: id, ValidationStatus: status}, nil
}

type fixture struct {
	bookings      *fakeBookings
	accounts      *fakeAccounts
	professionals *fakeProfessionals
	router        *mux.Router
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookings{},
		accounts: &fakeAccounts{users: map[int64]*domain.User{
			1: {ID: 1, Username: "root", Role: domain.RoleAdmin},
			2: {ID: 2, Username: "alice", Role: domain.RolePatient},
		}},
		professionals: &fakeProfessionals{},
	}
	h := NewHandler(f.bookings, f.accounts, f.professionals, logger.NewNop())

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: 1, Role: domain.RoleAdmin})))
		})
	})
	r.HandleFunc("/admin/rendez-vous/", h.ListBookings).Methods(http.MethodGet)
	r.HandleFunc("/admin/rendez-vous/{id}/", h.DeleteBooking).Methods(http.MethodDelete)
	r.HandleFunc("/admin/clients/", h.ListClients).Methods(http.MethodGet)
	r.HandleFunc("/admin/clients/{id}/", h.DeleteClient).Methods(http.MethodDelete)
	r.HandleFunc("/admin/professionnels/{id}/validation/", h.SetValidation).Methods(http.MethodPut)
	r.HandleFunc("/professionnels/manage/", h.ListProfessionals).Methods(http.MethodGet)
	r.HandleFunc("/professionnels/manage/", h.CreateProfessional).Methods(http.MethodPost)
	r.HandleFunc("/professionnels/manage/{id}/", h.GetProfessional).Methods(http.MethodGet)
	r.HandleFunc("/professionnels/manage/{id}/", h.UpdateProfessional).Methods(http.MethodPut)
	r.HandleFunc("/professionnels/manage/{id}/", h.DeleteProfessional).Methods(http.MethodDelete)
	f.router = r
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestBookings(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/admin/rendez-vous/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":2`)

	rec = f.do(http.MethodDelete, "/admin/rendez-vous/3/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{3}, f.bookings.deleted)

	rec = f.do(http.MethodDelete, "/admin/rendez-vous/404/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClients(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/admin/clients/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = f.do(http.MethodDelete, "/admin/clients/1/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, f.accounts.users, int64(1))

	rec = f.do(http.MethodDelete, "/admin/clients/2/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, f.accounts.users, int64(2))

	rec = f.do(http.MethodDelete, "/admin/clients/2/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetValidation(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPut, "/admin/professionnels/5/validation/", `{"statut_validation":"valide"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"statut_validation":"valide"`)

	rec = f.do(http.MethodPut, "/admin/professionnels/5/validation/", `{"statut_validation":"ok"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManageProfessionals(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/professionnels/manage/",
		`{"nom":"Martin","prenom":"Paul","email":"p@x.fr","numero_rpps":"10101010101","specialite_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.DefaultConsultationFee, f.professionals.created.ConsultationFee)
	assert.Equal(t, "10101010101", f.professionals.created.RPPS)

	rec = f.do(http.MethodPost, "/professionnels/manage/", `{"nom":"Martin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/professionnels/manage/5/", `{"tarif_consultation":70}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, f.professionals.update.LastName)
	assert.Contains(t, rec.Body.String(), `"nom":"Martin"`)
	assert.Contains(t, rec.Body.String(), `"tarif_consultation":70`)

	rec = f.do(http.MethodGet, "/professionnels/manage/9/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/professionnels/manage/5/", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(http.MethodGet, "/professionnels/manage/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
