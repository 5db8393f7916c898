package models

import "github.com/m04kA/SMC-CleaningService/internal/domain"

// VehicleResponse модель машины для внешних слоёв
type VehicleResponse struct {
	ID       int64
	Name     string
	Cleaners []CleanerResponse
}

// CleanerResponse модель клинера для внешних слоёв
type CleanerResponse struct {
	ID        int64
	Name      string
	VehicleID int64
}

// FromDomainVehicle конвертирует domain.Vehicle в response-модель
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	cleaners := make([]CleanerResponse, 0, len(v.Cleaners))
	for _, c := range v.Cleaners {
		cleaners = append(cleaners, FromDomainCleaner(&c))
	}
	return &VehicleResponse{
		ID:       v.ID,
		Name:     v.Name,
		Cleaners: cleaners,
	}
}

// FromDomainCleaner конвертирует domain.Cleaner в response-модель
func FromDomainCleaner(c *domain.Cleaner) CleanerResponse {
	return CleanerResponse{
		ID:        c.ID,
		Name:      c.Name,
		VehicleID: c.VehicleID,
	}
}
