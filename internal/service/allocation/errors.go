package allocation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest возвращается, когда параметры заказа нарушают бизнес-правила
	ErrInvalidRequest = errors.New("allocation: invalid booking request")

	// ErrNonWorkingDay возвращается для заказа на выходной день сервиса
	// Подтип ErrInvalidRequest: errors.Is(err, ErrInvalidRequest) тоже истинно.
	ErrNonWorkingDay = fmt.Errorf("%w: friday is not a working day", ErrInvalidRequest)

	// ErrNotEnoughCleaners возвращается, когда свободных клинеров меньше, чем запрошено
	ErrNotEnoughCleaners = errors.New("allocation: not enough cleaners available for this slot")

	// ErrNoVehicleAvailable возвращается, когда ни в одной машине нет нужного
	// количества свободных клинеров, хотя по отдельности их достаточно
	ErrNoVehicleAvailable = errors.New("allocation: no vehicle has enough available cleaners")

	// ErrSchedulingConflict возвращается, когда повторная проверка под блокировкой
	// находит конфликтующий заказ (проигрыш гонки конкурентной попытке)
	ErrSchedulingConflict = errors.New("allocation: scheduling conflict")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("allocation: internal error")
)
