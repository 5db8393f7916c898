package list_vehicles

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

// VehicleListResponse HTTP response model со списком машин
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromServiceResponse конвертирует список машин в HTTP response
func FromServiceResponse(list []*models.VehicleResponse) *VehicleListResponse {
	vehicles := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		cleaners := make([]CleanerResponse, 0, len(v.Cleaners))
		for _, c := range v.Cleaners {
			cleaners = append(cleaners, CleanerResponse{
				ID:        c.ID,
				Name:      c.Name,
				VehicleID: c.VehicleID,
			})
		}
		vehicles = append(vehicles, VehicleResponse{
			ID:       v.ID,
			Name:     v.Name,
			Cleaners: cleaners,
		})
	}
	return &VehicleListResponse{Vehicles: vehicles}
}
