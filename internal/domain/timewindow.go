package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// ErrInvalidWindow возвращается при попытке создать окно, где start >= end
var ErrInvalidWindow = errors.New("domain: time window start must be before end")

// TimeWindow временное окно [Start, End) в пределах одного дня
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeWindow создает временное окно, проверяя, что start < end
func NewTimeWindow(start, end types.TimeString) (TimeWindow, error) {
	if !start.IsBefore(end) {
		return TimeWindow{}, fmt.Errorf("%w: [%s - %s]", ErrInvalidWindow, start, end)
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Overlaps возвращает true, если окна пересекаются
// Полуоткрытые интервалы: граничащие окна (конец одного равен началу
// другого) пересечением не считаются. Предикат симметричен.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.IsBefore(other.End) && w.End.IsAfter(other.Start)
}

// ViolatesRestGapWith проверяет обязательный 30-минутный перерыв между заказами
//
// Предикат несимметричный и срабатывает шире, чем простая проверка зазора:
// нарушение фиксируется, когда конец w с учётом перерыва заходит на начало
// other, ЛИБО когда w начинается раньше, чем other.Start минус перерыв.
// Из-за второго условия любой более ранний заказ блокирует все окна,
// начинающиеся позже его начала более чем на 30 минут. Точная таблица
// истинности закреплена тестами.
func (w TimeWindow) ViolatesRestGapWith(other TimeWindow) bool {
	endWithRest := w.End.Minutes() + RestGapMinutes
	startWithRest := other.Start.Minutes() - RestGapMinutes

	return endWithRest > other.Start.Minutes() ||
		w.Start.Minutes() < startWithRest
}

// String возвращает окно в формате "HH:MM - HH:MM"
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", w.Start, w.End)
}
