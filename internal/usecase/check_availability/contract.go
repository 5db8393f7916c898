package check_availability

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
}

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	GetByCleanerAndDate(ctx context.Context, cleanerID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
