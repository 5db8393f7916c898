package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заказ не найден
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
