package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// ErrBookingNotFound возвращается, когда обновляемый заказ не найден
var ErrBookingNotFound = errors.New("update_booking: booking not found")

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("update_booking: internal error")

// Ошибки протокола размещения пробрасываются без обёртки,
// чтобы handlers могли сопоставлять их через errors.Is.
var (
	ErrInvalidRequest     = allocation.ErrInvalidRequest
	ErrNonWorkingDay      = allocation.ErrNonWorkingDay
	ErrNotEnoughCleaners  = allocation.ErrNotEnoughCleaners
	ErrNoVehicleAvailable = allocation.ErrNoVehicleAvailable
	ErrSchedulingConflict = allocation.ErrSchedulingConflict
)
