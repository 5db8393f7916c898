package create_booking

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// UseCase use case создания заказа
type UseCase struct {
	allocator Allocator
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен.
func NewUseCase(allocator Allocator, txManager TransactionManager, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		allocator: allocator,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания заказа
// Весь протокол размещения (включая блокировки и вставки) выполняется
// в одной транзакции: конкурентная попытка на тех же клинеров либо
// дождётся коммита и получит конфликт, либо пройдёт первой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, start=%s, duration=%d, cleaners=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.CleanerCount)

	var result *allocation.Result

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		result, err = uc.allocator.Allocate(txCtx, &allocation.Request{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			CleanerCount:    req.CleanerCount,
		})
		return err
	})

	if err != nil {
		if uc.metrics != nil && errors.Is(err, allocation.ErrSchedulingConflict) {
			uc.metrics.IncBookingConflict()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated()
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for cleaners %v",
		result.BookingID, result.CleanerIDs)

	return &Response{
		BookingID:  result.BookingID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		CleanerIDs: result.CleanerIDs,
	}, nil
}
