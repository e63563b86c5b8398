package professional

import (
	"context"
	"database/sql"
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

func TestGetByUserID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM professionnels p JOIN specialites s ON s.id = p.specialite_id WHERE p.user_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "nom", "prenom", "email", "telephone", "numero_rpps", "specialite_id",
			"bio", "photo_url", "tarif_consultation", "accepte_teleconsultation", "statut_validation",
			"date_validation", "valide_par", "date_inscription", "specialite",
		}).AddRow(
			int64(3), int64(42), "Martin", "Claire", "c@x.fr", nil, "TEMP42123", int64(1),
			nil, nil, "50.00", false, "en_attente", nil, nil, now, "Cardiologie",
		))

	p, err := repo.GetByUserID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, 50.0, p.ConsultationFee)
	assert.Equal(t, domain.ValidationPending, p.ValidationStatus)
	assert.Equal(t, "Cardiologie", p.SpecialtyName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCreate_Errors(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"23505", ErrDuplicate},
		{"23503", ErrUnknownSpecialty},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("INSERT INTO professionnels").WillReturnError(&pq.Error{Code: pq.ErrorCode(tc.code)})

			_, err := repo.Create(context.Background(), &domain.Professional{LastName: "A", Email: "a@x", RPPS: "1", SpecialtyID: 9})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSetValidation(t *testing.T) {
	repo, mock := newRepo(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE professionnels SET statut_validation = \$1, date_validation = \$2, valide_par = \$3 WHERE id = \$4`).
		WithArgs("valide", at, int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetValidation(context.Background(), 3, domain.ValidationApproved, 1, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
