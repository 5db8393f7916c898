package vehicles

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByIDWithCleaners(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListWithCleaners(ctx context.Context) ([]*domain.Vehicle, error)
}

// CleanerRepository интерфейс репозитория клинеров
type CleanerRepository interface {
	Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
