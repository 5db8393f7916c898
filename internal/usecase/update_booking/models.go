package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса на обновление заказа
type Request struct {
	BookingID       int64            // ID обновляемого заказа
	Date            time.Time        // Новая дата
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Новая длительность: 120 или 240
	CleanerCount    int              // Новое количество клинеров
}

// Response модель ответа с пересозданным заказом
type Response struct {
	BookingID  int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	CleanerIDs []int64
}
