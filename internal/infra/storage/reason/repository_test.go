package reason

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestGetOrCreate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO motifs_consultation .+ ON CONFLICT \(specialite_id, libelle\) DO UPDATE`).
		WithArgs(int64(3), "Consultation", 30, 50.0).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(11), int64(3), "Consultation", 20, "45.00"))

	reason, err := repo.GetOrCreate(context.Background(), 3, "Consultation", 30, 50)

	require.NoError(t, err)
	assert.Equal(t, int64(11), reason.ID)
	// существующая длительность сохраняется
	assert.Equal(t, 20, reason.DurationMinutes)
	assert.Equal(t, 45.0, reason.Fee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT .+ FROM motifs_consultation WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrReasonNotFound)
}

func TestListBySpecialty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT .+ FROM motifs_consultation WHERE specialite_id = \\$1 ORDER BY libelle ASC").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(3), "Bilan", 45, 70.0).
			AddRow(int64(2), int64(3), "Suivi", 15, 30.0))

	reasons, err := repo.ListBySpecialty(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, reasons, 2)
	assert.Equal(t, "Suivi", reasons[1].Label)
}
