package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

const (
	msgInvalidBookingID   = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgBookingNotFound    = "заказ не найден"
	msgNonWorkingDay      = "пятница - нерабочий день"
	msgInvalidRequest     = "некорректные параметры заказа"
	msgNotEnoughCleaners  = "недостаточно свободных клинеров на выбранное время"
	msgNoVehicleAvailable = "нет машины со свободным экипажем нужного размера"
	msgSchedulingConflict = "выбранное время уже занято, попробуйте другой слот"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
// Заказ пересоздается атомарно: старые строки удаляются и новые
// создаются в одной транзакции. При любом отказе старый заказ остается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: booking_id=%d, error=%v", bookingID, err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrNonWorkingDay):
			h.logger.Warn("PUT /bookings/{id} - Non-working day: booking_id=%d, date=%s", bookingID, req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, updateBooking.ErrInvalidRequest):
			h.logger.Warn("PUT /bookings/{id} - Invalid request: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, updateBooking.ErrNotEnoughCleaners):
			h.logger.Warn("PUT /bookings/{id} - Not enough cleaners: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEnoughCleaners)

		case errors.Is(err, updateBooking.ErrNoVehicleAvailable):
			h.logger.Warn("PUT /bookings/{id} - No vehicle with free crew: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNoVehicleAvailable)

		case errors.Is(err, updateBooking.ErrSchedulingConflict):
			h.logger.Warn("PUT /bookings/{id} - Scheduling conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSchedulingConflict)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: old_id=%d, new_id=%d, cleaners=%v",
		bookingID, result.BookingID, result.CleanerIDs)
	handlers.RespondJSON(w, http.StatusOK, response)
}
