package migrations

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
)

func TestLoad_EmbeddedSchema(t *testing.T) {
	m := NewMigrator(nil, logger.NewNop())

	migs, err := m.Load()
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, 1, migs[0].Version)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS rendez_vous")
}

func TestLoad_SortsAndSkips(t *testing.T) {
	m := &Migrator{files: fstest.MapFS{
		"010_late.sql":  {Data: []byte("SELECT 10")},
		"002_mid.sql":   {Data: []byte("SELECT 2")},
		"readme.md":     {Data: []byte("x")},
		"nover.sql":     {Data: []byte("x")},
		"abc_bad.sql":   {Data: []byte("x")},
		"001_first.sql": {Data: []byte("SELECT 1")},
	}}

	migs, err := m.Load()
	require.NoError(t, err)
	require.Len(t, migs, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{migs[0].Version, migs[1].Version, migs[2].Version})
}

func TestUp_AppliesOnlyPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &Migrator{
		db: dbmetrics.Wrap(db, nil),
		files: fstest.MapFS{
			"001_a.sql": {Data: []byte("CREATE TABLE a (id INT)")},
			"002_b.sql": {Data: []byte("CREATE TABLE b (id INT)")},
		},
		logger: logger.NewNop(),
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs(2, "002_b.sql").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
