package add_cleaner

import "github.com/m04kA/SMC-CleaningService/internal/service/vehicles/models"

// AddCleanerRequest HTTP request model
type AddCleanerRequest struct {
	Name string `json:"name"`
}

// CleanerResponse HTTP response model
type CleanerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	VehicleID int64  `json:"vehicleId"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(c *models.CleanerResponse) *CleanerResponse {
	return &CleanerResponse{
		ID:        c.ID,
		Name:      c.Name,
		VehicleID: c.VehicleID,
	}
}
