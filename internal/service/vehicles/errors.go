package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда машина не найдена
	ErrVehicleNotFound = errors.New("vehicles.service: vehicle not found")

	// ErrVehicleFull возвращается, когда в машине уже максимум клинеров
	ErrVehicleFull = errors.New("vehicles.service: vehicle is full")

	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("vehicles.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles.service: internal error")
)
