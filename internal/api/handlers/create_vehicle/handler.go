package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя машины обязательно"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%d", vehicle.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(vehicle))
}
