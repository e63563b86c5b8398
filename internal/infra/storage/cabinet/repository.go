package cabinet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/pgerr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
)

const (
	cabinetsTable     = "cabinets"
	affiliationsTable = "professionnel_cabinets"
)

var columns = []string{
	"c.id",
	"c.nom",
	"c.adresse",
	"c.ville",
	"c.code_postal",
	"c.telephone",
	"c.latitude",
	"c.longitude",
}

// Repository репозиторий кабинетов и привязок специалистов к ним
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кабинетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает кабинет
func (r *Repository) Create(ctx context.Context, cabinet *domain.Cabinet) (*domain.Cabinet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(cabinetsTable).
		Columns("nom", "adresse", "ville", "code_postal", "telephone", "latitude", "longitude").
		Values(cabinet.Name, cabinet.Address, cabinet.City, cabinet.PostalCode,
			cabinet.Phone, cabinet.Latitude, cabinet.Longitude).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cabinet.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return cabinet, nil
}

// GetByID получает кабинет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cabinet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(cabinetsTable + " c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cabinet, err := scanCabinet(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCabinetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cabinet: %w", ErrScanRow, err)
	}
	return cabinet, nil
}

// List все кабинеты по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Cabinet, error) {
	builder := psqlbuilder.Select(columns...).
		From(cabinetsTable + " c").
		OrderBy("c.nom ASC", "c.id ASC")
	return r.query(ctx, builder, "List")
}

// ListByProfessional кабинеты, к которым привязан специалист (основной первым)
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.Cabinet, error) {
	builder := psqlbuilder.Select(columns...).
		From(cabinetsTable + " c").
		Join(affiliationsTable + " pc ON pc.cabinet_id = c.id").
		Where(squirrel.Eq{"pc.professionnel_id": professionalID}).
		OrderBy("pc.est_principal DESC", "c.nom ASC")
	return r.query(ctx, builder, "ListByProfessional")
}

// ListByProfessionals кабинеты нескольких специалистов одним запросом
func (r *Repository) ListByProfessionals(ctx context.Context, professionalIDs []int64) (map[int64][]domain.Cabinet, error) {
	result := make(map[int64][]domain.Cabinet, len(professionalIDs))
	if len(professionalIDs) == 0 {
		return result, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append([]string{"pc.professionnel_id"}, columns...)...).
		From(cabinetsTable + " c").
		Join(affiliationsTable + " pc ON pc.cabinet_id = c.id").
		Where(squirrel.Eq{"pc.professionnel_id": professionalIDs}).
		OrderBy("pc.professionnel_id ASC", "pc.est_principal DESC", "c.nom ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionals - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var professionalID int64
		var c domain.Cabinet
		if err := rows.Scan(&professionalID, &c.ID, &c.Name, &c.Address, &c.City, &c.PostalCode,
			&c.Phone, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("%w: ListByProfessionals - scan: %w", ErrScanRow, err)
		}
		result[professionalID] = append(result[professionalID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionals - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

// Update обновляет данные кабинета
func (r *Repository) Update(ctx context.Context, cabinet *domain.Cabinet) (*domain.Cabinet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(cabinetsTable).
		Set("nom", cabinet.Name).
		Set("adresse", cabinet.Address).
		Set("ville", cabinet.City).
		Set("code_postal", cabinet.PostalCode).
		Set("telephone", cabinet.Phone).
		Set("latitude", cabinet.Latitude).
		Set("longitude", cabinet.Longitude).
		Where(squirrel.Eq{"id": cabinet.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}
	if err := checkAffected(result, "Update", ErrCabinetNotFound); err != nil {
		return nil, err
	}
	return cabinet, nil
}

// Delete удаляет кабинет (правила и привязки удаляются каскадом, бронирования остаются)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(cabinetsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "Delete", ErrCabinetNotFound)
}

// Affiliate привязывает специалиста к кабинету
func (r *Repository) Affiliate(ctx context.Context, aff domain.Affiliation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(affiliationsTable).
		Columns("professionnel_id", "cabinet_id", "date_debut", "date_fin", "est_principal").
		Values(aff.ProfessionalID, aff.CabinetID, domain.DateOnly(aff.StartDate), aff.EndDate, aff.IsPrimary).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Affiliate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrAlreadyAffiliated
		}
		return fmt.Errorf("%w: Affiliate - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// IsAffiliated true, если специалист привязан к кабинету
func (r *Repository) IsAffiliated(ctx context.Context, professionalID, cabinetID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(affiliationsTable).
		Where(squirrel.Eq{"professionnel_id": professionalID, "cabinet_id": cabinetID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsAffiliated - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsAffiliated - scan: %w", ErrScanRow, err)
	}
	return exists, nil
}

// Unaffiliate удаляет привязку специалиста к кабинету
func (r *Repository) Unaffiliate(ctx context.Context, professionalID, cabinetID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(affiliationsTable).
		Where(squirrel.Eq{"professionnel_id": professionalID, "cabinet_id": cabinetID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Unaffiliate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unaffiliate - execute delete: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "Unaffiliate", ErrAffiliationNotFound)
}

// LockForUpdate блокирует строку кабинета до конца транзакции.
// Параллельные отвязки одного кабинета выполняются по очереди
func (r *Repository) LockForUpdate(ctx context.Context, cabinetID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(cabinetsTable).
		Where(squirrel.Eq{"id": cabinetID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockForUpdate - build query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCabinetNotFound
		}
		return fmt.Errorf("%w: LockForUpdate - scan: %w", ErrScanRow, err)
	}
	return nil
}

// CountAffiliations число специалистов, привязанных к кабинету
func (r *Repository) CountAffiliations(ctx context.Context, cabinetID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(affiliationsTable).
		Where(squirrel.Eq{"cabinet_id": cabinetID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAffiliations - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAffiliations - scan: %w", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) query(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.Cabinet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	cabinets := make([]*domain.Cabinet, 0)
	for rows.Next() {
		c, err := scanCabinet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan cabinet: %w", ErrScanRow, op, err)
		}
		cabinets = append(cabinets, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}
	return cabinets, nil
}

func checkAffected(result sql.Result, op string, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCabinet(row rowScanner) (*domain.Cabinet, error) {
	var c domain.Cabinet
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.PostalCode, &c.Phone, &c.Latitude, &c.Longitude); err != nil {
		return nil, err
	}
	return &c, nil
}
