package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgNonWorkingDay      = "пятница - нерабочий день"
	msgInvalidRequest     = "некорректные параметры заказа"
	msgNotEnoughCleaners  = "недостаточно свободных клинеров на выбранное время"
	msgNoVehicleAvailable = "нет машины со свободным экипажем нужного размера"
	msgSchedulingConflict = "выбранное время уже занято, попробуйте другой слот"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNonWorkingDay):
			h.logger.Warn("POST /bookings - Non-working day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createBooking.ErrInvalidRequest):
			h.logger.Warn("POST /bookings - Invalid request: date=%s, start=%s, duration=%d, cleaners=%d, error=%v",
				req.Date, req.StartTime, req.DurationMinutes, req.CleanerCount, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrNotEnoughCleaners):
			h.logger.Warn("POST /bookings - Not enough cleaners: date=%s, start=%s, cleaners=%d",
				req.Date, req.StartTime, req.CleanerCount)
			handlers.RespondConflict(w, msgNotEnoughCleaners)

		case errors.Is(err, createBooking.ErrNoVehicleAvailable):
			h.logger.Warn("POST /bookings - No vehicle with free crew: date=%s, start=%s, cleaners=%d",
				req.Date, req.StartTime, req.CleanerCount)
			handlers.RespondConflict(w, msgNoVehicleAvailable)

		case errors.Is(err, createBooking.ErrSchedulingConflict):
			h.logger.Warn("POST /bookings - Scheduling conflict: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSchedulingConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, start=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, cleaners=%v",
		result.BookingID, result.CleanerIDs)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
