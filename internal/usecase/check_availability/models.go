package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса доступности
// Режим выбирается по наличию StartTime и DurationMinutes:
// оба nil - дневной режим (список свободных слотов),
// оба заданы - режим слота (список свободных клинеров).
type Request struct {
	Date            time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
}

// Response модель ответа
// В дневном режиме заполнены TimeSlots (личные свободные окна всех
// клинеров, объединённые в один набор без привязки к клинеру),
// в режиме слота - CleanerIDs. Второй список всегда пуст.
type Response struct {
	CleanerIDs []int64
	TimeSlots  []string
}
