package allocation

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// Service протокол размещения заказа: валидация, подбор свободных клинеров,
// выбор бригады из одной машины, блокировка, повторная проверка и запись
type Service struct {
	cleanerRepo CleanerRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса размещения
func NewService(cleanerRepo CleanerRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		cleanerRepo: cleanerRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Allocate выполняет полный протокол размещения заказа
//
// Должен вызываться внутри транзакции (через txmanager.Do): блокировки
// FOR UPDATE и вставки должны завершиться одним коммитом. До успешного
// прохождения всех проверок ни одна строка не записывается; любая ошибка
// откатывает попытку целиком.
func (s *Service) Allocate(ctx context.Context, req *Request) (*Result, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Allocate: validation failed: %v", err)
		return nil, err
	}

	window := requestWindow(req)

	// 2. Ростер всех клинеров с их машинами
	roster, err := s.cleanerRepo.ListWithVehicle(ctx)
	if err != nil {
		s.logger.Error("Allocate: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	// 3. Фильтр по доступности: простое пересечение интервалов, без перерыва.
	// Перерыв проверяется позже, под блокировкой, расширенным окном.
	available := make([]*domain.Cleaner, 0, len(roster))
	for _, c := range roster {
		free, err := s.cleanerRepo.IsAvailable(ctx, c.ID, req.Date, window.Start, window.End)
		if err != nil {
			s.logger.Error("Allocate: availability check failed for cleaner id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if free {
			available = append(available, c)
		}
	}

	// 4. Проверка достаточности свободных клинеров
	if len(available) < req.CleanerCount {
		s.logger.Warn("Allocate: only %d cleaners available, %d requested", len(available), req.CleanerCount)
		return nil, ErrNotEnoughCleaners
	}

	// 5. Бригада из одной машины
	chosen := pickSameVehicleCohort(available, req.CleanerCount)
	if len(chosen) == 0 {
		s.logger.Warn("Allocate: %d cleaners available but no single vehicle holds %d", len(available), req.CleanerCount)
		return nil, ErrNoVehicleAvailable
	}

	// 6. Блокировка выбранных клинеров
	// IDs сортируются по возрастанию: конкурирующие попытки с пересекающимися
	// наборами берут блокировки в одном порядке и не взаимоблокируются.
	ids := make([]int64, 0, len(chosen))
	for _, c := range chosen {
		ids = append(ids, c.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked, err := s.cleanerRepo.LockForUpdate(ctx, ids)
	if err != nil {
		s.logger.Error("Allocate: failed to lock cleaners %v: %v", ids, err)
		return nil, fmt.Errorf("%w: failed to lock cleaners: %v", ErrInternal, err)
	}

	s.logger.Info("Allocate: locked cleaners for update: %v", ids)

	// 7. Повторная проверка под блокировкой расширенным окном
	// Закрывает гонку между шагом 3 и взятием блокировки и дополнительно
	// проверяет 30-минутный перерыв, который шаг 3 не учитывал.
	widenedStart, widenedEnd := widenedWindow(window)
	for _, c := range locked {
		overlap, err := s.bookingRepo.HasOverlap(ctx, c.ID, req.Date, widenedStart, widenedEnd)
		if err != nil {
			s.logger.Error("Allocate: overlap re-check failed for cleaner id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: overlap re-check failed: %v", ErrInternal, err)
		}
		if overlap {
			s.logger.Warn("Allocate: cleaner %d has conflict within window [%s]", c.ID, window)
			return nil, fmt.Errorf("%w: cleaner %d has conflict within window [%s]", ErrSchedulingConflict, c.ID, window)
		}
	}

	// 8. Запись: одна строка заказа на каждого клинера бригады
	createdIDs := make([]int64, 0, len(locked))
	for _, c := range locked {
		booking := &domain.Booking{
			CleanerID: c.ID,
			Date:      req.Date,
			StartTime: window.Start,
			EndTime:   window.End,
		}

		created, err := s.bookingRepo.Create(ctx, booking)
		if err != nil {
			s.logger.Error("Allocate: failed to create booking for cleaner id=%d: %v", c.ID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		createdIDs = append(createdIDs, created.ID)
	}

	s.logger.Info("Allocate: booking created for cleaners %v, booking ids %v", ids, createdIDs)

	return &Result{
		BookingID:  createdIDs[0],
		Date:       req.Date,
		StartTime:  window.Start,
		EndTime:    window.End,
		CleanerIDs: ids,
	}, nil
}

// pickSameVehicleCohort выбирает req.CleanerCount клинеров из одной машины
//
// Свободные клинеры группируются по машине; машины перебираются по
// возрастанию ID, берётся первая группа достаточного размера. Бригады из
// разных машин не собираются: клинеры одной машины ездят на заказ вместе.
// Возвращает пустой срез, если ни одна машина не подходит.
func pickSameVehicleCohort(available []*domain.Cleaner, count int) []*domain.Cleaner {
	byVehicle := make(map[int64][]*domain.Cleaner)
	vehicleIDs := make([]int64, 0)

	for _, c := range available {
		if _, ok := byVehicle[c.VehicleID]; !ok {
			vehicleIDs = append(vehicleIDs, c.VehicleID)
		}
		byVehicle[c.VehicleID] = append(byVehicle[c.VehicleID], c)
	}

	sort.Slice(vehicleIDs, func(i, j int) bool { return vehicleIDs[i] < vehicleIDs[j] })

	for _, vid := range vehicleIDs {
		group := byVehicle[vid]
		if len(group) >= count {
			return group[:count]
		}
	}

	return nil
}
