package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CleaningService/internal/usecase/check_availability"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и опционально startTime=HH:MM с durationMinutes"
	msgNonWorkingDay = "пятница - нерабочий день"
	msgInvalidPair   = "startTime и durationMinutes задаются только вместе"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD[&startTime=HH:MM&durationMinutes=120]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrNonWorkingDay):
			h.logger.Warn("GET /availability - Non-working day: date=%s", r.URL.Query().Get("date"))
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPair)

		default:
			h.logger.Error("GET /availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, slots=%d, cleaners=%d",
		req.Date.Format(domain.DateFormat), len(result.TimeSlots), len(result.CleanerIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req.Date, result))
}
