package specialty

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

const table = "specialites"

var columns = []string{"id", "nom", "description", "icone"}

// Repository репозиторий специальностей (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специальностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает специальность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Specialty
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Description, &s.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan specialty: %w", ErrScanRow, err)
	}
	return &s, nil
}

// List все специальности по алфавиту
func (r *Repository) List(ctx context.Context) ([]*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("nom ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	specialties := make([]*domain.Specialty, 0)
	for rows.Next() {
		var s domain.Specialty
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Icon); err != nil {
			return nil, fmt.Errorf("%w: List - scan specialty: %w", ErrScanRow, err)
		}
		specialties = append(specialties, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}
	return specialties, nil
}
