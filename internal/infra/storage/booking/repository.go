package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

const table = "rendez_vous"

var columns = []string{
	"id",
	"patient_id",
	"professionnel_id",
	"cabinet_id",
	"motif_id",
	"date",
	"heure_debut",
	"heure_fin",
	"statut",
	"mode",
	"notes_patient",
	"notes_professionnel",
	"rappel_envoye",
	"date_creation",
	"date_modification",
	"date_annulation",
}

// Repository репозиторий для работы с бронированиями (rendez_vous)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDay берёт транзакционную advisory-блокировку на пару (специалист, дата)
// Все проверки и вставки бронирований на этот день сериализуются этой блокировкой.
// Ключ - 64-битный хэш строки "специалист:день", id специалиста не усекается
func (r *Repository) LockDay(ctx context.Context, professionalID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	_, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))",
		dayLockKey(professionalID, date))
	if err != nil {
		return fmt.Errorf("%w: LockDay - execute: %w", ErrExecQuery, err)
	}
	return nil
}

func dayLockKey(professionalID int64, date time.Time) string {
	return fmt.Sprintf("%d:%d", professionalID, domain.DateKey(date))
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"patient_id",
			"professionnel_id",
			"cabinet_id",
			"motif_id",
			"date",
			"heure_debut",
			"heure_fin",
			"statut",
			"mode",
			"notes_patient",
		).
		Values(
			booking.PatientID,
			booking.ProfessionalID,
			booking.CabinetID,
			booking.ReasonID,
			domain.DateOnly(booking.Date),
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Mode,
			booking.PatientNotes,
		).
		Suffix("RETURNING id, date_creation, date_modification").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return booking, nil
}

// GetByID получает бронирование по ID; внутри транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}
	return booking, nil
}

// ListActiveForDay бронирования специалиста на дату без отменённых, по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveForDay(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error) {
	filter := domain.BookingFilter{
		ProfessionalID: &professionalID,
		Date:           &date,
	}
	return r.List(ctx, filter)
}

// CountOverlapping считает живые бронирования специалиста на дату,
// пересекающиеся с [start, end). excludeID исключает само изменяемое бронирование
func (r *Repository) CountOverlapping(
	ctx context.Context,
	professionalID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"professionnel_id": professionalID, "date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"statut": domain.StatusCancelled}).
		Where(squirrel.Lt{"heure_debut": end}).
		Where(squirrel.Gt{"heure_fin": start})
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan: %w", ErrScanRow, err)
	}
	return count, nil
}

// HasUpcomingWithProfessional true, если у пациента есть неотменённое бронирование
// у специалиста с датой не раньше fromDate
func (r *Repository) HasUpcomingWithProfessional(
	ctx context.Context,
	patientID, professionalID int64,
	fromDate time.Time,
	excludeID *int64,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inner := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"patient_id": patientID, "professionnel_id": professionalID}).
		Where(squirrel.NotEq{"statut": domain.StatusCancelled}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(fromDate)})
	if excludeID != nil {
		inner = inner.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasUpcomingWithProfessional - build query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasUpcomingWithProfessional - scan: %w", ErrScanRow, err)
	}
	return exists, nil
}

// List бронирования по фильтру
// Для одной даты сортировка по времени начала, иначе по дате и времени по возрастанию
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.PatientID != nil {
		builder = builder.Where(squirrel.Eq{"patient_id": *filter.PatientID})
	}
	if filter.ProfessionalID != nil {
		builder = builder.Where(squirrel.Eq{"professionnel_id": *filter.ProfessionalID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": domain.DateOnly(*filter.Date)})
	}
	if !filter.IncludeCancelled {
		builder = builder.Where(squirrel.NotEq{"statut": domain.StatusCancelled})
	}

	if filter.Date != nil {
		builder = builder.OrderBy("heure_debut ASC")
	} else {
		builder = builder.OrderBy("date ASC", "heure_debut ASC")
	}

	// Блокируем строки дня только для проверок внутри транзакции бронирования
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil && filter.ProfessionalID != nil {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListAll все бронирования (для администратора), новые сначала
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date DESC", "heure_debut DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus меняет статус и заметки специалиста
// Для annule проставляется date_annulation, для остальных статусов она очищается
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
	professionalNotes *string,
	at time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("statut", status).
		Set("date_modification", at).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		builder = builder.Set("date_annulation", at)
	} else {
		builder = builder.Set("date_annulation", nil)
	}
	if professionalNotes != nil {
		builder = builder.Set("notes_professionnel", *professionalNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}
	return checkAffected(result, "UpdateStatus")
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
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

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.PatientID,
		&b.ProfessionalID,
		&b.CabinetID,
		&b.ReasonID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Mode,
		&b.PatientNotes,
		&b.ProfessionalNotes,
		&b.ReminderSent,
		&createdAt,
		&updatedAt,
		&b.CancelledAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %w", ErrScanRow, err)
	}
	return bookings, nil
}
