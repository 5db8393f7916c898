package add_cleaner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID   = "некорректный ID машины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя клинера обязательно"
	msgVehicleNotFound    = "машина не найдена"
	msgVehicleFull        = "в машине уже максимальное количество клинеров"
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

// Handle POST /api/v1/vehicles/{vehicleId}/cleaners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/cleaners - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req AddCleanerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/cleaners - Invalid request body: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cleaner, err := h.service.AddCleaner(r.Context(), vehicleID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/{id}/cleaners - Invalid input: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/cleaners - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, vehicles.ErrVehicleFull):
			h.logger.Warn("POST /vehicles/{id}/cleaners - Vehicle is full: vehicle_id=%d", vehicleID)
			handlers.RespondConflict(w, msgVehicleFull)

		default:
			h.logger.Error("POST /vehicles/{id}/cleaners - Failed to add cleaner: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/cleaners - Cleaner added successfully: cleaner_id=%d, vehicle_id=%d",
		cleaner.ID, vehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(cleaner))
}
