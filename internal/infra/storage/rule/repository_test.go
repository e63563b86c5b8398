package rule

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
)

var ruleColumns = []string{"id", "professionnel_id", "cabinet_id", "jour_semaine", "heure_debut", "heure_fin", "duree_creneau"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestList_FiltersAndOrders(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM disponibilites WHERE professionnel_id = \$1 AND jour_semaine = \$2 AND cabinet_id = \$3 ORDER BY jour_semaine ASC, heure_debut ASC`).
		WithArgs(int64(3), int64(0), int64(2)).
		WillReturnRows(sqlmock.NewRows(ruleColumns).
			AddRow(int64(1), int64(3), int64(2), 0, "09:00:00", "10:00:00", 30).
			AddRow(int64(2), int64(3), int64(2), 0, "14:00:00", "16:00:00", 20))

	rules, err := repo.List(context.Background(), Filter{ProfessionalID: 3, Weekday: ptr.Ptr(0), CabinetID: ptr.Ptr(int64(2))})

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.EqualValues(t, "14:00", rules[1].StartTime)
	assert.Equal(t, 20, rules[1].SlotMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ForeignRuleIsNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE disponibilites SET .+ WHERE id = \$6 AND professionnel_id = \$7`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &domain.AvailabilityRule{
		ID: 5, ProfessionalID: 4, CabinetID: 2, Weekday: 1, StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDeleteByCabinet(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM disponibilites WHERE cabinet_id = \$1 AND professionnel_id = \$2`).
		WithArgs(int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteByCabinet(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
