package get_vehicle

import "github.com/m04kA/SMC-CleaningService/internal/service/vehicles/models"

// VehicleResponse HTTP response model
type VehicleResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Cleaners []CleanerResponse `json:"cleaners"`
}

// CleanerResponse HTTP response model
type CleanerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	VehicleID int64  `json:"vehicleId"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(v *models.VehicleResponse) *VehicleResponse {
	cleaners := make([]CleanerResponse, 0, len(v.Cleaners))
	for _, c := range v.Cleaners {
		cleaners = append(cleaners, CleanerResponse{
			ID:        c.ID,
			Name:      c.Name,
			VehicleID: c.VehicleID,
		})
	}
	return &VehicleResponse{
		ID:       v.ID,
		Name:     v.Name,
		Cleaners: cleaners,
	}
}
