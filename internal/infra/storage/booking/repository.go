package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Колонки bookings, заполняемые при создании заказа
var bookingInsertColumns = []string{
	"cleaner_id",
	"booking_date",
	"start_time",
	"end_time",
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заказ и возвращает его с присвоенным ID
// Если в контексте есть активная транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingInsertColumns...).
		Values(
			booking.CleanerID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// LockForUpdate получает заказ по ID с блокировкой FOR UPDATE
// Блокировка держится до конца объемлющей транзакции.
func (r *Repository) LockForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LockForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "LockForUpdate")
}

// GetByCleanerAndDate получает заказы клинера на конкретную дату
// Используется генерацией слотов доступности.
func (r *Repository) GetByCleanerAndDate(ctx context.Context, cleanerID int64, date time.Time) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"cleaner_id": cleanerID}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCleanerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCleanerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// HasOverlap проверяет, есть ли у клинера заказы, пересекающиеся с окном
// [startTime, endTime) на указанную дату
// Вызывается с расширенным на перерыв окном при повторной проверке под
// блокировкой: так закрывается гонка между открытым чтением и взятием
// блокировки и одновременно проверяется 30-минутный перерыв.
func (r *Repository) HasOverlap(ctx context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"cleaner_id": cleanerID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Lt{"start_time": endTime}).
		Where(squirrel.Gt{"end_time": startTime}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasOverlap - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// Delete удаляет заказ (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"cleaner_id",
		"booking_date",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).From("bookings")
}

func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CleanerID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.CleanerID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
