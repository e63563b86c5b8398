package favorite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/pgerr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
)

const table = "favoris"

// Repository репозиторий избранных специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория избранного
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет специалиста в избранное пациента
func (r *Repository) Add(ctx context.Context, patientID, professionalID int64) (*domain.Favorite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("patient_id", "professionnel_id").
		Values(patientID, professionalID).
		Suffix("RETURNING date_ajout").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	fav := &domain.Favorite{PatientID: patientID, ProfessionalID: professionalID}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&fav.AddedAt); err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return nil, ErrAlreadyFavorite
		case pgerr.IsForeignKeyViolation(err):
			return nil, ErrUnknownProfessional
		}
		return nil, fmt.Errorf("%w: Add - execute insert: %w", ErrExecQuery, err)
	}
	return fav, nil
}

// Remove удаляет закладку
func (r *Repository) Remove(ctx context.Context, patientID, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"patient_id": patientID, "professionnel_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListByPatient закладки пациента, новые сначала
func (r *Repository) ListByPatient(ctx context.Context, patientID int64) ([]*domain.Favorite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("patient_id", "professionnel_id", "date_ajout").
		From(table).
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("date_ajout DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPatient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPatient - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		var fav domain.Favorite
		if err := rows.Scan(&fav.PatientID, &fav.ProfessionalID, &fav.AddedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByPatient - scan favorite: %w", ErrScanRow, err)
		}
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByPatient - rows iteration: %w", ErrScanRow, err)
	}
	return favorites, nil
}
