package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// Allocator интерфейс сервиса размещения заказов
type Allocator interface {
	Allocate(ctx context.Context, req *allocation.Request) (*allocation.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс счетчиков заказов (может быть nil, если метрики выключены)
type MetricsRecorder interface {
	IncBookingCreated()
	IncBookingConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
