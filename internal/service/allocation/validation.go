package allocation

import (
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// validateRequest валидирует рабочие часы, выходной день и бизнес-правила заказа
func validateRequest(req *Request) error {
	if !domain.IsWorkingDay(req.Date) {
		return ErrNonWorkingDay
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time format: %v", ErrInvalidRequest, err)
	}

	if !domain.IsValidStartTime(req.StartTime) {
		return fmt.Errorf("%w: start time must be >= %s", ErrInvalidRequest, domain.WorkDayStart)
	}

	end, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil || !domain.IsValidEndTime(end) {
		return fmt.Errorf("%w: booking must end no later than %s", ErrInvalidRequest, domain.WorkDayEnd)
	}

	if !domain.IsValidDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be %d or %d minutes", ErrInvalidRequest, domain.ShortJobMinutes, domain.LongJobMinutes)
	}

	if req.CleanerCount < 1 {
		return fmt.Errorf("%w: cleaner count must be positive", ErrInvalidRequest)
	}

	return nil
}

// requestWindow возвращает окно заказа [start, start+duration)
// Вызывается после validateRequest, поэтому границы всегда корректны.
func requestWindow(req *Request) domain.TimeWindow {
	end, _ := req.StartTime.AddMinutes(req.DurationMinutes)
	return domain.TimeWindow{Start: req.StartTime, End: end}
}

// widenedWindow возвращает окно, расширенное на перерыв в обе стороны
// Используется повторной проверкой под блокировкой: перекрытие с расширенным
// окном означает либо пересечение заказов, либо нарушение перерыва.
func widenedWindow(w domain.TimeWindow) (types.TimeString, types.TimeString) {
	start, _ := w.Start.AddMinutes(-domain.RestGapMinutes)
	end, _ := w.End.AddMinutes(domain.RestGapMinutes)
	return start, end
}
