package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
)

var bookingColumns = []string{
	"id", "patient_id", "professionnel_id", "cabinet_id", "motif_id", "date",
	"heure_debut", "heure_fin", "statut", "mode", "notes_patient", "notes_professionnel",
	"rappel_envoye", "date_creation", "date_modification", "date_annulation",
}

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func TestCreate(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO rendez_vous").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_creation", "date_modification"}).AddRow(int64(15), now, now))

	b := &domain.Booking{
		PatientID:      10,
		ProfessionalID: 3,
		CabinetID:      2,
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "09:30",
		Status:         domain.StatusConfirmed,
		Mode:           domain.ModeInPerson,
	}
	created, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, int64(15), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM rendez_vous WHERE id = \$1`).
		WithArgs(int64(15)).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			int64(15), int64(10), int64(3), int64(2), nil, date,
			"09:00:00", "09:30:00", "confirme", "presentiel", "douleur", nil,
			false, now, now, nil,
		))

	b, err := repo.GetByID(context.Background(), 15)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, domain.ModeInPerson, b.Mode)
	assert.EqualValues(t, "09:00", b.StartTime)
	assert.EqualValues(t, "09:30", b.EndTime)
	assert.Nil(t, b.ReasonID)
	require.NotNil(t, b.PatientNotes)
	assert.Equal(t, "douleur", *b.PatientNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT .+ FROM rendez_vous").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLockDay(t *testing.T) {
	repo, db, mock := newRepo(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	err := repo.LockDay(context.Background(), 3, date)
	assert.ErrorIs(t, err, ErrNotInTransaction)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtextextended\(\$1, 0\)\)`).
		WithArgs(dayLockKey(3, date)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)
	txCtx := dbmetrics.WithTx(context.Background(), tx)

	require.NoError(t, repo.LockDay(txCtx, 3, date))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDayLockKey_KeepsFullProfessionalID(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	wide := int64(1)<<32 + 3

	assert.NotEqual(t, dayLockKey(3, date), dayLockKey(wide, date))
	assert.NotEqual(t, dayLockKey(3, date), dayLockKey(3, date.AddDate(0, 0, 1)))
	assert.Equal(t, dayLockKey(3, date), dayLockKey(3, date.Add(15*time.Hour)))
	assert.Equal(t, "4294967299:20157", dayLockKey(wide, date))
}

func TestCountOverlapping(t *testing.T) {
	repo, _, mock := newRepo(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rendez_vous WHERE .*statut <> \$3 AND heure_debut < \$4 AND heure_fin > \$5 AND id <> \$6`).
		WithArgs(date, int64(3), "annule", "09:30:00", "09:00:00", int64(15)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountOverlapping(context.Background(), 3, date, "09:00", "09:30", ptr.Ptr(int64(15)))

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasUpcomingWithProfessional(t *testing.T) {
	repo, _, mock := newRepo(t)
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM rendez_vous WHERE .* \)`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasUpcomingWithProfessional(context.Background(), 10, 3, today, nil)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ByPatientOrdersByDateAndTime(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM rendez_vous WHERE patient_id = \$1 ORDER BY date ASC, heure_debut ASC`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.List(context.Background(), domain.BookingFilter{PatientID: ptr.Ptr(int64(10)), IncludeCancelled: true})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Cancel(t *testing.T) {
	repo, _, mock := newRepo(t)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE rendez_vous SET statut = \$1, date_modification = \$2, date_annulation = \$3 WHERE id = \$4`).
		WithArgs("annule", at, at, int64(15)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 15, domain.StatusCancelled, nil, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM rendez_vous WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrBookingNotFound)
}
