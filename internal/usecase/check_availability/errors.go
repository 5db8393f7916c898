package check_availability

import "errors"

var (
	// ErrNonWorkingDay возвращается для запроса на выходной день сервиса
	ErrNonWorkingDay = errors.New("check_availability: friday is not a working day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
