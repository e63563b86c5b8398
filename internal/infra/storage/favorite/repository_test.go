package favorite

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func TestAdd(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO favoris \\(patient_id,professionnel_id\\) VALUES \\(\\$1,\\$2\\) RETURNING date_ajout").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"date_ajout"}).AddRow(now))

	fav, err := repo.Add(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, now, fav.AddedAt)
}

func TestAdd_Errors(t *testing.T) {
	cases := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{"duplicate", "23505", ErrAlreadyFavorite},
		{"unknown professional", "23503", ErrUnknownProfessional},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("INSERT INTO favoris").WillReturnError(&pq.Error{Code: tc.code})

			_, err := repo.Add(context.Background(), 1, 2)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRemove_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec("DELETE FROM favoris").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Remove(context.Background(), 1, 2), ErrFavoriteNotFound)
}
