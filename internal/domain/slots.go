package domain

import "github.com/m04kA/SMC-CleaningService/pkg/types"

// GenerateAvailableSlots возвращает свободные 2- и 4-часовые окна клинера
// на день с учётом его существующих заказов
//
// Курсор идёт от 08:00 с шагом 30 минут, пока 2-часовое окно помещается
// до 22:00. На каждой позиции проверяются 2-часовой и 4-часовой кандидаты
// (4-часовой - только если он тоже заканчивается не позже 22:00).
// Свободные кандидаты добавляются в порядке обхода: на каждой позиции
// сначала 2-часовой, затем 4-часовой. Дедупликацию и сортировку при
// объединении по нескольким клинерам выполняет вызывающая сторона.
func GenerateAvailableSlots(existing []*Booking) []string {
	cursor := WorkDayStart.Minutes()
	endOfDay := WorkDayEnd.Minutes()

	available := make([]string, 0)

	for cursor+ShortJobMinutes <= endOfDay {
		twoHour := windowFromMinutes(cursor, cursor+ShortJobMinutes)
		if IsWindowFree(existing, twoHour) {
			available = append(available, twoHour.String())
		}

		if cursor+LongJobMinutes <= endOfDay {
			fourHour := windowFromMinutes(cursor, cursor+LongJobMinutes)
			if IsWindowFree(existing, fourHour) {
				available = append(available, fourHour.String())
			}
		}

		cursor += SlotStepMinutes
	}

	return available
}

// IsWindowFree возвращает true, если окно не пересекается ни с одним из
// заказов и не нарушает правило перерыва ни с одним из них
func IsWindowFree(bookings []*Booking, requested TimeWindow) bool {
	for _, b := range bookings {
		existing := b.Window()
		if existing.Overlaps(requested) || existing.ViolatesRestGapWith(requested) {
			return false
		}
	}
	return true
}

// windowFromMinutes строит окно по минутам с начала суток
// Границы всегда кратны 30 минутам и лежат внутри суток, ошибок быть не может.
func windowFromMinutes(startMinutes, endMinutes int) TimeWindow {
	start, _ := types.NewTimeStringFromMinutes(startMinutes)
	end, _ := types.NewTimeStringFromMinutes(endMinutes)
	return TimeWindow{Start: start, End: end}
}
