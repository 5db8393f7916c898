package check_availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// UseCase use case проверки доступности клинеров и слотов
type UseCase struct {
	cleanerRepo CleanerRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cleanerRepo CleanerRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		cleanerRepo: cleanerRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s", req.Date.Format(domain.DateFormat))

	if !domain.IsWorkingDay(req.Date) {
		uc.logger.Warn("CheckAvailability: %s is a non-working day", req.Date.Format(domain.DateFormat))
		return nil, ErrNonWorkingDay
	}

	// Режим 1: только дата - возвращаем свободные слоты
	if req.StartTime == nil && req.DurationMinutes == nil {
		return uc.dailyAvailability(ctx, req)
	}

	// Режим 2: конкретный слот - возвращаем свободных клинеров
	return uc.cleanersForSlot(ctx, req)
}

// dailyAvailability собирает свободные слоты всех клинеров на день
// Слоты объединяются в один набор, дедуплицируются и сортируются по
// возрастанию; принадлежность слота клинеру в этом режиме не раскрывается.
func (uc *UseCase) dailyAvailability(ctx context.Context, req *Request) (*Response, error) {
	cleaners, err := uc.cleanerRepo.ListWithVehicle(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	seen := make(map[string]struct{})
	unique := make([]string, 0)

	for _, c := range cleaners {
		bookings, err := uc.bookingRepo.GetByCleanerAndDate(ctx, c.ID, req.Date)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get bookings for cleaner id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, slot := range domain.GenerateAvailableSlots(bookings) {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			unique = append(unique, slot)
		}
	}

	sort.Strings(unique)

	uc.logger.Info("CheckAvailability: %d unique slots for %s", len(unique), req.Date.Format(domain.DateFormat))

	return &Response{
		CleanerIDs: []int64{},
		TimeSlots:  unique,
	}, nil
}

// cleanersForSlot возвращает клинеров, свободных в запрошенном окне
// Проверка по простому пересечению интервалов, без учёта перерыва:
// окончательное решение с перерывом принимает размещение заказа.
func (uc *UseCase) cleanersForSlot(ctx context.Context, req *Request) (*Response, error) {
	if req.StartTime == nil || req.DurationMinutes == nil {
		return nil, fmt.Errorf("%w: startTime and durationMinutes must be supplied together", ErrInvalidInput)
	}

	start := *req.StartTime
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	end, err := start.AddMinutes(*req.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid duration: %v", ErrInvalidInput, err)
	}

	cleaners, err := uc.cleanerRepo.ListWithVehicle(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	available := make([]int64, 0, len(cleaners))
	for _, c := range cleaners {
		free, err := uc.cleanerRepo.IsAvailable(ctx, c.ID, req.Date, start, end)
		if err != nil {
			uc.logger.Error("CheckAvailability: availability check failed for cleaner id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if free {
			available = append(available, c.ID)
		}
	}

	uc.logger.Info("CheckAvailability: %d cleaners free at %s for %d minutes on %s",
		len(available), start, *req.DurationMinutes, req.Date.Format(domain.DateFormat))

	return &Response{
		CleanerIDs: available,
		TimeSlots:  []string{},
	}, nil
}
