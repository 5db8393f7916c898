package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// IsWorkingDay возвращает false для выходного дня сервиса (пятница)
func IsWorkingDay(date time.Time) bool {
	return date.Weekday() != NonWorkingWeekday
}

// IsValidStartTime проверяет, что заказ начинается не раньше 08:00
func IsValidStartTime(t types.TimeString) bool {
	return !t.IsBefore(WorkDayStart)
}

// IsValidEndTime проверяет, что заказ заканчивается не позже 22:00
func IsValidEndTime(t types.TimeString) bool {
	return !t.IsAfter(WorkDayEnd)
}

// IsValidDuration проверяет, что длительность заказа - ровно 2 или 4 часа
func IsValidDuration(durationMinutes int) bool {
	return durationMinutes == ShortJobMinutes || durationMinutes == LongJobMinutes
}
