package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Booking заказ на уборку для одного клинера
// Заказ с несколькими клинерами хранится как несколько строк Booking
// с одинаковыми датой и временным окном (по одной строке на клинера).
type Booking struct {
	ID        int64
	CleanerID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window возвращает временное окно заказа
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}
