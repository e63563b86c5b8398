package rule

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

const table = "disponibilites"

var columns = []string{
	"id",
	"professionnel_id",
	"cabinet_id",
	"jour_semaine",
	"heure_debut",
	"heure_fin",
	"duree_creneau",
}

// Repository репозиторий еженедельных правил доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Filter выборка правил специалиста; nil-поля не фильтруют
type Filter struct {
	ProfessionalID int64
	Weekday        *int
	CabinetID      *int64
}

// Create создает правило
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("professionnel_id", "cabinet_id", "jour_semaine", "heure_debut", "heure_fin", "duree_creneau").
		Values(rule.ProfessionalID, rule.CabinetID, rule.Weekday, rule.StartTime, rule.EndTime, rule.SlotMinutes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return rule, nil
}

// GetByID получает правило специалиста по ID
func (r *Repository) GetByID(ctx context.Context, professionalID, id int64) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "professionnel_id": professionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %w", ErrScanRow, err)
	}
	return rule, nil
}

// List правила специалиста, упорядоченные по (jour_semaine, heure_debut)
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"professionnel_id": filter.ProfessionalID})

	if filter.Weekday != nil {
		builder = builder.Where(squirrel.Eq{"jour_semaine": *filter.Weekday})
	}
	if filter.CabinetID != nil {
		builder = builder.Where(squirrel.Eq{"cabinet_id": *filter.CabinetID})
	}

	query, args, err := builder.OrderBy("jour_semaine ASC", "heure_debut ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan rule: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}
	return rules, nil
}

// Update обновляет правило; правило другого специалиста считается ненайденным
func (r *Repository) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("cabinet_id", rule.CabinetID).
		Set("jour_semaine", rule.Weekday).
		Set("heure_debut", rule.StartTime).
		Set("heure_fin", rule.EndTime).
		Set("duree_creneau", rule.SlotMinutes).
		Where(squirrel.Eq{"id": rule.ID, "professionnel_id": rule.ProfessionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}
	if err := checkAffected(result, "Update"); err != nil {
		return nil, err
	}
	return rule, nil
}

// Delete удаляет правило специалиста
func (r *Repository) Delete(ctx context.Context, professionalID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "professionnel_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "Delete")
}

// DeleteByCabinet удаляет все правила специалиста в кабинете, возвращает число удалённых
func (r *Repository) DeleteByCabinet(ctx context.Context, professionalID, cabinetID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"professionnel_id": professionalID, "cabinet_id": cabinetID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCabinet - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCabinet - execute delete: %w", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCabinet - get rows affected: %v", ErrExecQuery, err)
	}
	return deleted, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	err := row.Scan(
		&rule.ID,
		&rule.ProfessionalID,
		&rule.CabinetID,
		&rule.Weekday,
		&rule.StartTime,
		&rule.EndTime,
		&rule.SlotMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
