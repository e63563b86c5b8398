package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	specialtyRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
)

type fakeStore struct {
	pros      []*domain.Professional
	cabinets  map[int64][]domain.Cabinet
	cabinetsQ [][]int64
	failList  bool
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Specialty, error) {
	if id != 1 {
		return nil, specialtyRepo.ErrSpecialtyNotFound
	}
	return &domain.Specialty{ID: 1, Name: "Cardiologie"}, nil
}

func (f *fakeStore) List(_ context.Context) ([]*domain.Specialty, error) {
	if f.failList {
		return nil, errors.New("connection reset")
	}
	return []*domain.Specialty{{ID: 1, Name: "Cardiologie"}}, nil
}

type fakePros struct{ store *fakeStore }

func (f fakePros) List(_ context.Context, filter professionalRepo.Filter) ([]*domain.Professional, error) {
	result := make([]*domain.Professional, 0)
	for _, p := range f.store.pros {
		if filter.SpecialtyID == nil || p.SpecialtyID == *filter.SpecialtyID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeCabinets struct{ store *fakeStore }

func (f fakeCabinets) List(_ context.Context) ([]*domain.Cabinet, error) {
	return []*domain.Cabinet{{ID: 10}}, nil
}

func (f fakeCabinets) ListByProfessionals(_ context.Context, ids []int64) (map[int64][]domain.Cabinet, error) {
	f.store.cabinetsQ = append(f.store.cabinetsQ, ids)
	return f.store.cabinets, nil
}

type fakeReasons struct{}

func (fakeReasons) ListBySpecialty(_ context.Context, specialtyID int64) ([]*domain.ConsultationReason, error) {
	return []*domain.ConsultationReason{{ID: 3, SpecialtyID: specialtyID, Label: "Bilan", DurationMinutes: 45}}, nil
}

func newService(store *fakeStore) *Service {
	return NewService(store, fakePros{store}, fakeCabinets{store}, fakeReasons{}, logger.NewNop())
}

func TestListProfessionals_WithCabinets(t *testing.T) {
	store := &fakeStore{
		pros: []*domain.Professional{
			{ID: 1, SpecialtyID: 1},
			{ID: 2, SpecialtyID: 2},
		},
		cabinets: map[int64][]domain.Cabinet{1: {{ID: 10}, {ID: 11}}},
	}
	svc := newService(store)

	pros, err := svc.ListProfessionals(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, pros, 2)
	assert.Len(t, pros[0].Cabinets, 2)
	assert.NotNil(t, pros[1].Cabinets)
	assert.Empty(t, pros[1].Cabinets)
	require.Len(t, store.cabinetsQ, 1)
	assert.Equal(t, []int64{1, 2}, store.cabinetsQ[0])

	pros, err = svc.ListProfessionals(context.Background(), ptr.Ptr(int64(2)))
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, int64(2), pros[0].ID)
}

func TestListProfessionals_EmptySkipsCabinets(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	pros, err := svc.ListProfessionals(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, pros)
	assert.Empty(t, store.cabinetsQ)
}

func TestListReasons(t *testing.T) {
	svc := newService(&fakeStore{})

	reasons, err := svc.ListReasons(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Equal(t, 45, reasons[0].DurationMinutes)

	_, err = svc.ListReasons(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSpecialties_RepositoryError(t *testing.T) {
	svc := newService(&fakeStore{failList: true})

	_, err := svc.ListSpecialties(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "internal", domain.Kind(err))
}
