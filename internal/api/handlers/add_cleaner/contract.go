package add_cleaner

import (
	"context"

	"github.com/m04kA/SMC-CleaningService/internal/service/vehicles/models"
)

type VehicleService interface {
	AddCleaner(ctx context.Context, vehicleID int64, name string) (*models.CleanerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
