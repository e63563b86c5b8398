package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
)

//go:embed sql/*.sql
var embedded embed.FS

var (
	// ErrLoad ошибка чтения файлов миграций
	ErrLoad = errors.New("migrations: failed to load migrations")

	// ErrApply ошибка применения миграции
	ErrApply = errors.New("migrations: failed to apply migration")
)

// Migration одна SQL-миграция
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// DB соединение, в котором применяются миграции
type DB interface {
	dbmetrics.DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет миграции по возрастанию версии, каждую в своей транзакции
type Migrator struct {
	db     DB
	files  fs.FS
	logger Logger
}

// NewMigrator создает мигратор со встроенными миграциями
func NewMigrator(db DB, logger Logger) *Migrator {
	sub, _ := fs.Sub(embedded, "sql")
	return &Migrator{db: db, files: sub, logger: logger}
}

// Load читает *.sql с числовым префиксом версии ("001_core.sql" -> 1)
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var result []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		prefix, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		content, err := fs.ReadFile(m.files, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, name, err)
		}
		result = append(result, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Version < result[j].Version })
	return result, nil
}

// Up применяет все неприменённые миграции и возвращает их количество
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrApply, err)
	}

	migrations, err := m.Load()
	if err != nil {
		return 0, err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range migrations {
		if applied[mig.Version] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return count, err
		}
		m.logger.Info("Migration applied: %s", mig.Name)
		count++
	}
	return count, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: query applied versions: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApply, err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApply, mig.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApply, mig.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", mig.Version, mig.Name,
	); err != nil {
		return fmt.Errorf("%w: %s: record: %v", ErrApply, mig.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApply, mig.Name, err)
	}
	return nil
}
