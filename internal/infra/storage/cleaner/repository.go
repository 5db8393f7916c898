package cleaner

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Repository репозиторий для работы с клинерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клинеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клинера, закреплённого за машиной
func (r *Repository) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cleaners").
		Columns("name", "vehicle_id").
		Values(cleaner.Name, cleaner.VehicleID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cleaner.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return cleaner, nil
}

// ListWithVehicle возвращает весь ростер клинеров с ID их машин
// Порядок стабильный: по возрастанию ID машины, затем ID клинера.
func (r *Repository) ListWithVehicle(ctx context.Context) ([]*domain.Cleaner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "vehicle_id").
		From("cleaners").
		OrderBy("vehicle_id ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithVehicle - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cleaners := make([]*domain.Cleaner, 0)
	for rows.Next() {
		var c domain.Cleaner
		if err := rows.Scan(&c.ID, &c.Name, &c.VehicleID); err != nil {
			return nil, fmt.Errorf("%w: ListWithVehicle - scan row: %v", ErrScanRow, err)
		}
		cleaners = append(cleaners, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithVehicle - rows error: %v", ErrScanRow, err)
	}

	return cleaners, nil
}

// IsAvailable проверяет, что у клинера нет заказов, пересекающихся с окном
// [startTime, endTime) на указанную дату
// Проверка по простому пересечению интервалов, без учёта перерыва:
// перерыв дополнительно проверяется под блокировкой при создании заказа.
func (r *Repository) IsAvailable(ctx context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"cleaner_id": cleanerID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Lt{"start_time": endTime}).
		Where(squirrel.Gt{"end_time": startTime}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsAvailable - scan count: %v", ErrScanRow, err)
	}

	return count == 0, nil
}

// LockForUpdate берёт блокировку FOR UPDATE на перечисленных клинеров
// Вызывающая сторона обязана передавать IDs отсортированными по возрастанию,
// чтобы конкурирующие попытки с пересекающимися наборами не взаимоблокировались.
// Блокировка держится до конца объемлющей транзакции.
func (r *Repository) LockForUpdate(ctx context.Context, ids []int64) ([]*domain.Cleaner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "vehicle_id").
		From("cleaners").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LockForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LockForUpdate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cleaners := make([]*domain.Cleaner, 0, len(ids))
	for rows.Next() {
		var c domain.Cleaner
		if err := rows.Scan(&c.ID, &c.Name, &c.VehicleID); err != nil {
			return nil, fmt.Errorf("%w: LockForUpdate - scan row: %v", ErrScanRow, err)
		}
		cleaners = append(cleaners, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LockForUpdate - rows error: %v", ErrScanRow, err)
	}

	if len(cleaners) != len(ids) {
		return nil, fmt.Errorf("%w: LockForUpdate - locked %d of %d cleaners", ErrCleanerNotFound, len(cleaners), len(ids))
	}

	return cleaners, nil
}
