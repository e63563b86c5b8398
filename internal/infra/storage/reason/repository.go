package reason

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
)

const table = "motifs_consultation"

var columns = []string{"id", "specialite_id", "libelle", "duree_estimee", "tarif"}

// Repository репозиторий мотивов консультации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мотивов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мотив по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ConsultationReason, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reason, err := scanReason(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReasonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reason: %w", ErrScanRow, err)
	}
	return reason, nil
}

// ListBySpecialty мотивы специальности по алфавиту
func (r *Repository) ListBySpecialty(ctx context.Context, specialtyID int64) ([]*domain.ConsultationReason, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"specialite_id": specialtyID}).
		OrderBy("libelle ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reasons := make([]*domain.ConsultationReason, 0)
	for rows.Next() {
		reason, err := scanReason(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySpecialty - scan reason: %w", ErrScanRow, err)
		}
		reasons = append(reasons, reason)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - rows iteration: %w", ErrScanRow, err)
	}
	return reasons, nil
}

// GetOrCreate возвращает мотив по (специальность, название), создавая его при отсутствии.
// Существующий мотив не меняется.
func (r *Repository) GetOrCreate(ctx context.Context, specialtyID int64, label string, durationMinutes int, fee float64) (*domain.ConsultationReason, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("specialite_id", "libelle", "duree_estimee", "tarif").
		Values(specialtyID, label, durationMinutes, fee).
		Suffix("ON CONFLICT (specialite_id, libelle) DO UPDATE SET libelle = EXCLUDED.libelle " +
			"RETURNING id, specialite_id, libelle, duree_estimee, tarif").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build upsert query: %v", ErrBuildQuery, err)
	}

	reason, err := scanReason(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - execute upsert: %w", ErrExecQuery, err)
	}
	return reason, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReason(row rowScanner) (*domain.ConsultationReason, error) {
	var reason domain.ConsultationReason
	if err := row.Scan(
		&reason.ID,
		&reason.SpecialtyID,
		&reason.Label,
		&reason.DurationMinutes,
		&reason.Fee,
	); err != nil {
		return nil, err
	}
	return &reason, nil
}
