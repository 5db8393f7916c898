package allocation

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request параметры размещения заказа
type Request struct {
	Date            time.Time        // Дата заказа (без времени)
	StartTime       types.TimeString // Время начала ("10:00")
	DurationMinutes int              // Длительность: 120 или 240
	CleanerCount    int              // Сколько клинеров нужно на заказ
}

// Result результат успешного размещения
// Заказ на несколько клинеров хранится отдельной строкой на каждого;
// наружу отдаётся ID первой созданной строки и полный список клинеров.
type Result struct {
	BookingID  int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	CleanerIDs []int64
}
