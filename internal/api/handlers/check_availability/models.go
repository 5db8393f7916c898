package check_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CleaningService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// AvailabilityResponse HTTP response model
// В дневном режиме заполнен timeSlots, в режиме слота - cleanerIds.
type AvailabilityResponse struct {
	Date       string   `json:"date"`
	TimeSlots  []string `json:"timeSlots,omitempty"`
	CleanerIDs []int64  `json:"cleanerIds,omitempty"`
}

// ParseQuery собирает модель use case из query-параметров
// date обязателен; startTime и durationMinutes задаются только парой.
func ParseQuery(query url.Values) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{Date: date}

	if raw := query.Get("startTime"); raw != "" {
		startTime, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if raw := query.Get("durationMinutes"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = &duration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(date time.Time, resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:       date.Format(domain.DateFormat),
		TimeSlots:  resp.TimeSlots,
		CleanerIDs: resp.CleanerIDs,
	}
}
