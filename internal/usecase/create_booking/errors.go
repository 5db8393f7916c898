package create_booking

import "github.com/m04kA/SMC-CleaningService/internal/service/allocation"

// Ошибки протокола размещения пробрасываются без обёртки,
// чтобы handlers могли сопоставлять их через errors.Is.
var (
	ErrInvalidRequest     = allocation.ErrInvalidRequest
	ErrNonWorkingDay      = allocation.ErrNonWorkingDay
	ErrNotEnoughCleaners  = allocation.ErrNotEnoughCleaners
	ErrNoVehicleAvailable = allocation.ErrNoVehicleAvailable
	ErrSchedulingConflict = allocation.ErrSchedulingConflict
	ErrInternal           = allocation.ErrInternal
)
