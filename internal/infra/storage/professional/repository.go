package professional

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/pgerr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
)

const table = "professionnels"

var columns = []string{
	"p.id",
	"p.user_id",
	"p.nom",
	"p.prenom",
	"p.email",
	"p.telephone",
	"p.numero_rpps",
	"p.specialite_id",
	"p.bio",
	"p.photo_url",
	"p.tarif_consultation",
	"p.accepte_teleconsultation",
	"p.statut_validation",
	"p.date_validation",
	"p.valide_par",
	"p.date_inscription",
	"s.nom",
}

// Repository репозиторий специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Filter выборка для публичного списка
type Filter struct {
	SpecialtyID   *int64
	ValidatedOnly bool
}

func selectBase() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table + " p").
		Join("specialites s ON s.id = p.specialite_id")
}

// Create создает специалиста
func (r *Repository) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	status := p.ValidationStatus
	if status == "" {
		status = domain.ValidationPending
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"nom",
			"prenom",
			"email",
			"telephone",
			"numero_rpps",
			"specialite_id",
			"bio",
			"photo_url",
			"tarif_consultation",
			"accepte_teleconsultation",
			"statut_validation",
		).
		Values(
			p.UserID,
			p.LastName,
			p.FirstName,
			p.Email,
			p.Phone,
			p.RPPS,
			p.SpecialtyID,
			p.Bio,
			p.PhotoURL,
			p.ConsultationFee,
			p.AcceptsRemote,
			status,
		).
		Suffix("RETURNING id, date_inscription").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.RegisteredAt)
	switch {
	case pgerr.IsUniqueViolation(err):
		return nil, ErrDuplicate
	case pgerr.IsForeignKeyViolation(err):
		return nil, ErrUnknownSpecialty
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	p.ValidationStatus = status
	return p, nil
}

// GetByID получает специалиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id}, "GetByID")
}

// GetByUserID получает специалиста, связанного с учётной записью
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	return r.getOne(ctx, squirrel.Eq{"p.user_id": userID}, "GetByUserID")
}

// GetByEmail получает специалиста по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Professional, error) {
	return r.getOne(ctx, squirrel.Eq{"p.email": email}, "GetByEmail")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBase().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	p, err := scanProfessional(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan professional: %w", ErrScanRow, op, err)
	}
	return p, nil
}

// List специалисты по фамилии
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectBase()
	if filter.SpecialtyID != nil {
		builder = builder.Where(squirrel.Eq{"p.specialite_id": *filter.SpecialtyID})
	}
	if filter.ValidatedOnly {
		builder = builder.Where(squirrel.Eq{"p.statut_validation": domain.ValidationApproved})
	}

	query, args, err := builder.OrderBy("p.nom ASC", "p.prenom ASC", "p.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Professional, 0)
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan professional: %w", ErrScanRow, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

// Update сохраняет изменяемые поля профиля специалиста
func (r *Repository) Update(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("user_id", p.UserID).
		Set("nom", p.LastName).
		Set("prenom", p.FirstName).
		Set("email", p.Email).
		Set("telephone", p.Phone).
		Set("specialite_id", p.SpecialtyID).
		Set("bio", p.Bio).
		Set("photo_url", p.PhotoURL).
		Set("tarif_consultation", p.ConsultationFee).
		Set("accepte_teleconsultation", p.AcceptsRemote).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	switch {
	case pgerr.IsUniqueViolation(err):
		return nil, ErrDuplicate
	case pgerr.IsForeignKeyViolation(err):
		return nil, ErrUnknownSpecialty
	case err != nil:
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}
	if err := checkAffected(result, "Update"); err != nil {
		return nil, err
	}
	return p, nil
}

// SetValidation записывает решение модерации
func (r *Repository) SetValidation(
	ctx context.Context,
	id int64,
	status domain.ValidationStatus,
	adminID int64,
	at time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("statut_validation", status).
		Set("date_validation", at).
		Set("valide_par", adminID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetValidation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetValidation - execute update: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "SetValidation")
}

// Delete удаляет специалиста (его правила, привязки и бронирования удаляются каскадом)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "Delete")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var p domain.Professional
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.LastName,
		&p.FirstName,
		&p.Email,
		&p.Phone,
		&p.RPPS,
		&p.SpecialtyID,
		&p.Bio,
		&p.PhotoURL,
		&p.ConsultationFee,
		&p.AcceptsRemote,
		&p.ValidationStatus,
		&p.ValidatedAt,
		&p.ValidatedBy,
		&p.RegisteredAt,
		&p.SpecialtyName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
