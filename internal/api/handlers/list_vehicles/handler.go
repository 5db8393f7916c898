package list_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListVehicles(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Vehicles retrieved successfully: count=%d", len(vehicles))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(vehicles))
}
