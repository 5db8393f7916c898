package get_vehicle

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/service/vehicles/models"
)

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
