package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса на создание заказа
type Request struct {
	Date            time.Time        // Дата заказа (без времени)
	StartTime       types.TimeString // Время начала ("10:00")
	DurationMinutes int              // Длительность: 120 или 240
	CleanerCount    int              // Количество клинеров
}

// Response модель ответа с созданным заказом
type Response struct {
	BookingID  int64            // ID первой созданной строки заказа
	Date       time.Time        // Дата заказа
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время окончания
	CleanerIDs []int64          // Назначенные клинеры (одна машина)
}
