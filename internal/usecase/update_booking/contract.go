package update_booking

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	LockForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Allocator интерфейс сервиса размещения заказов
type Allocator interface {
	Allocate(ctx context.Context, req *allocation.Request) (*allocation.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
