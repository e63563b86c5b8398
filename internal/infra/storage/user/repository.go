package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/pgerr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
)

const table = "users"

var columns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"role",
	"date_naissance",
	"sexe",
	"telephone",
	"telephone_urgence",
	"adresse_complete",
	"ville",
	"code_postal",
	"pays",
	"numero_securite_sociale",
	"preference_notification",
	"statut",
	"date_inscription",
	"derniere_connexion",
}

// Repository репозиторий учётных записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if u.Country == "" {
		u.Country = domain.DefaultCountry
	}
	if u.NotificationPreference == "" {
		u.NotificationPreference = "email"
	}
	if u.Status == "" {
		u.Status = domain.AccountActive
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"username", "email", "password_hash", "first_name", "last_name", "role",
			"date_naissance", "sexe", "telephone", "telephone_urgence", "adresse_complete",
			"ville", "code_postal", "pays", "numero_securite_sociale", "preference_notification", "statut",
		).
		Values(
			u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role,
			u.BirthDate, u.Sex, u.Phone, u.EmergencyPhone, u.Address,
			u.City, u.PostalCode, u.Country, u.SocialSecurityNumber, u.NotificationPreference, u.Status,
		).
		Suffix("RETURNING id, date_inscription").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.RegisteredAt); err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByLogin ищет пользователя по email или имени пользователя
func (r *Repository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return r.getOne(ctx, squirrel.Expr("LOWER(email) = LOWER(?)", login), "GetByLogin")
	}
	return r.getOne(ctx, squirrel.Eq{"username": login}, "GetByLogin")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Sqlizer, op string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}
	return u, nil
}

// List все пользователи, новые сначала
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date_inscription DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan user: %w", ErrScanRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}
	return users, nil
}

// UpdateProfile сохраняет изменяемые поля профиля (роль и пароль здесь не меняются)
func (r *Repository) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("email", u.Email).
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("date_naissance", u.BirthDate).
		Set("sexe", u.Sex).
		Set("telephone", u.Phone).
		Set("telephone_urgence", u.EmergencyPhone).
		Set("adresse_complete", u.Address).
		Set("ville", u.City).
		Set("code_postal", u.PostalCode).
		Set("pays", u.Country).
		Set("numero_securite_sociale", u.SocialSecurityNumber).
		Set("preference_notification", u.NotificationPreference).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("%w: UpdateProfile - execute update: %w", ErrExecQuery, err)
	}
	if err := checkAffected(result, "UpdateProfile"); err != nil {
		return nil, err
	}
	return u, nil
}

// TouchLastLogin отмечает время последнего входа
func (r *Repository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("derniere_connexion", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: TouchLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TouchLastLogin - execute update: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "TouchLastLogin")
}

// Delete удаляет пользователя (его бронирования и закладки удаляются каскадом)
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

// duplicateError переводит нарушение уникальности в ошибку конкретного поля
func duplicateError(err error) error {
	if !pgerr.IsUniqueViolation(err) {
		return nil
	}
	constraint := pgerr.Constraint(err)
	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameTaken
	case strings.Contains(constraint, "securite_sociale"):
		return ErrSocialSecurityTaken
	default:
		return ErrEmailTaken
	}
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.BirthDate,
		&u.Sex,
		&u.Phone,
		&u.EmergencyPhone,
		&u.Address,
		&u.City,
		&u.PostalCode,
		&u.Country,
		&u.SocialSecurityNumber,
		&u.NotificationPreference,
		&u.Status,
		&u.RegisteredAt,
		&u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
