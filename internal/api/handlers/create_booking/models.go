package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string `json:"date"`            // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	DurationMinutes int    `json:"durationMinutes"` // 120 или 240
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		CleanerCount:    r.CleanerCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:  resp.BookingID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		CleanerIDs: resp.CleanerIDs,
	}
}
