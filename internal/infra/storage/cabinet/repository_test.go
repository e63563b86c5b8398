package cabinet

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestAffiliate_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("INSERT INTO professionnel_cabinets").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Affiliate(context.Background(), domain.Affiliation{
		ProfessionalID: 3, CabinetID: 2, StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrAlreadyAffiliated)
}

func TestCountAffiliations(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM professionnel_cabinets WHERE cabinet_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountAffiliations(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLockForUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id FROM cabinets WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	require.NoError(t, repo.LockForUpdate(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockForUpdate_Missing(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id FROM cabinets WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.ErrorIs(t, repo.LockForUpdate(context.Background(), 9), ErrCabinetNotFound)
}

func TestUnaffiliate_Missing(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM professionnel_cabinets WHERE cabinet_id = \$1 AND professionnel_id = \$2`).
		WithArgs(int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Unaffiliate(context.Background(), 3, 2), ErrAffiliationNotFound)
}

func TestListByProfessionals_GroupsRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT pc.professionnel_id, c.id, .+ JOIN professionnel_cabinets pc .+ WHERE pc.professionnel_id IN \(\$1,\$2\)`).
		WithArgs(int64(3), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"professionnel_id", "id", "nom", "adresse", "ville", "code_postal", "telephone", "latitude", "longitude"}).
			AddRow(int64(3), int64(1), "A", "1 rue", "Paris", "75001", nil, nil, nil).
			AddRow(int64(3), int64(2), "B", "2 rue", "Lyon", "69001", "0102", 45.7, 4.8).
			AddRow(int64(4), int64(2), "B", "2 rue", "Lyon", "69001", "0102", 45.7, 4.8))

	got, err := repo.ListByProfessionals(context.Background(), []int64{3, 4})

	require.NoError(t, err)
	assert.Len(t, got[3], 2)
	assert.Len(t, got[4], 1)
	require.NotNil(t, got[4][0].Latitude)
	assert.InDelta(t, 45.7, *got[4][0].Latitude, 0.001)
}
