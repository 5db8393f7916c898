package bookings

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
