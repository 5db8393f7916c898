package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// UseCase use case обновления заказа
type UseCase struct {
	bookingRepo BookingRepository
	allocator   Allocator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, allocator Allocator, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		allocator:   allocator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case обновления заказа
//
// Обновление - это удаление старого заказа и полное повторное размещение
// с новыми параметрами. Оба шага идут в одной транзакции: если повторное
// размещение не удалось, удаление откатывается и старый заказ остаётся
// на месте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, date=%s, start=%s, duration=%d, cleaners=%d",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.CleanerCount)

	var result *allocation.Result

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем и читаем существующий заказ
		existing, err := uc.bookingRepo.LockForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to lock booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to lock booking: %v", ErrInternal, err)
		}

		// 2. Удаляем старый заказ
		if err := uc.bookingRepo.Delete(txCtx, existing.ID); err != nil {
			uc.logger.Error("UpdateBooking: failed to delete booking id=%d: %v", existing.ID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		// 3. Повторное размещение с новыми параметрами
		result, err = uc.allocator.Allocate(txCtx, &allocation.Request{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			CleanerCount:    req.CleanerCount,
		})
		return err
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d replaced by id=%d for cleaners %v",
		req.BookingID, result.BookingID, result.CleanerIDs)

	return &Response{
		BookingID:  result.BookingID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		CleanerIDs: result.CleanerIDs,
	}, nil
}
