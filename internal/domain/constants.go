package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Рабочие часы сервиса
const (
	WorkDayStart types.TimeString = "08:00"
	WorkDayEnd   types.TimeString = "22:00"
)

// Business validation constants
const (
	// RestGapMinutes обязательный перерыв между заказами одного клинера
	RestGapMinutes = 30

	// SlotStepMinutes шаг генерации слотов
	SlotStepMinutes = 30

	// ShortJobMinutes / LongJobMinutes допустимые длительности заказа
	ShortJobMinutes = 120
	LongJobMinutes  = 240

	// MaxCleanersPerVehicle максимальное количество клинеров в одной машине
	MaxCleanersPerVehicle = 5
)

// NonWorkingWeekday выходной день сервиса
const NonWorkingWeekday = time.Friday

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
