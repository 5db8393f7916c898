package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
)

// Repository репозиторий для работы с машинами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория машин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую машину
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("name").
		Values(vehicle.Name).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return vehicle, nil
}

// GetByIDWithCleaners получает машину вместе с её клинерами
func (r *Repository) GetByIDWithCleaners(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicles, err := r.queryWithCleaners(ctx, squirrel.Eq{"v.id": id})
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, ErrVehicleNotFound
	}
	return vehicles[0], nil
}

// ListWithCleaners возвращает все машины с их клинерами
// Порядок стабильный: по возрастанию ID машины.
func (r *Repository) ListWithCleaners(ctx context.Context) ([]*domain.Vehicle, error) {
	return r.queryWithCleaners(ctx, nil)
}

func (r *Repository) queryWithCleaners(ctx context.Context, where interface{}) ([]*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"v.id",
		"v.name",
		"c.id",
		"c.name",
	).
		From("vehicles v").
		LeftJoin("cleaners c ON c.vehicle_id = v.id").
		OrderBy("v.id ASC, c.id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: queryWithCleaners - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryWithCleaners - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	byID := make(map[int64]*domain.Vehicle)

	for rows.Next() {
		var (
			vehicleID   int64
			vehicleName string
			cleanerID   sql.NullInt64
			cleanerName sql.NullString
		)

		if err := rows.Scan(&vehicleID, &vehicleName, &cleanerID, &cleanerName); err != nil {
			return nil, fmt.Errorf("%w: queryWithCleaners - scan row: %v", ErrScanRow, err)
		}

		v, ok := byID[vehicleID]
		if !ok {
			v = &domain.Vehicle{
				ID:       vehicleID,
				Name:     vehicleName,
				Cleaners: make([]domain.Cleaner, 0, domain.MaxCleanersPerVehicle),
			}
			byID[vehicleID] = v
			vehicles = append(vehicles, v)
		}

		// LEFT JOIN: у машины без клинеров колонки клинера NULL
		if cleanerID.Valid {
			v.Cleaners = append(v.Cleaners, domain.Cleaner{
				ID:        cleanerID.Int64,
				Name:      cleanerName.String,
				VehicleID: vehicleID,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryWithCleaners - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}
