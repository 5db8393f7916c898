package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	CleanerCount    int    `json:"cleanerCount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID  int64   `json:"bookingId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	CleanerIDs []int64 `json:"cleanerIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		BookingID:       bookingID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		CleanerCount:    r.CleanerCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:  resp.BookingID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		CleanerIDs: resp.CleanerIDs,
	}
}
