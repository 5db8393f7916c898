package allocation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// CleanerRepository интерфейс репозитория клинеров
type CleanerRepository interface {
	ListWithVehicle(ctx context.Context) ([]*domain.Cleaner, error)
	IsAvailable(ctx context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error)
	LockForUpdate(ctx context.Context, ids []int64) ([]*domain.Cleaner, error)
}

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasOverlap(ctx context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
