package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

type fakeAllocator struct {
	result *allocation.Result
	err    error
	calls  int
	inTx   bool
}

func (f *fakeAllocator) Allocate(ctx context.Context, _ *allocation.Request) (*allocation.Result, error) {
	f.calls++
	f.inTx = ctx.Value(txMarker{}) != nil
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type txMarker struct{}

// fakeTxManager помечает контекст, чтобы проверить, что размещение
// выполняется внутри транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txMarker{}, true))
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (f *fakeMetrics) IncBookingCreated()  { f.created++ }
func (f *fakeMetrics) IncBookingConflict() { f.conflicts++ }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2025-10-14 - вторник
var tuesday = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	alloc := &fakeAllocator{
		result: &allocation.Result{
			BookingID:  1,
			Date:       tuesday,
			StartTime:  "10:00",
			EndTime:    "12:00",
			CleanerIDs: []int64{3, 4},
		},
	}
	m := &fakeMetrics{}
	uc := NewUseCase(alloc, fakeTxManager{}, m, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, []int64{3, 4}, resp.CleanerIDs)
	assert.Equal(t, 1, m.created)
	assert.Equal(t, 0, m.conflicts)
}

func TestExecute_RunsInsideTransaction(t *testing.T) {
	alloc := &fakeAllocator{
		result: &allocation.Result{BookingID: 1, Date: tuesday, StartTime: "10:00", EndTime: "12:00", CleanerIDs: []int64{3}},
	}
	uc := NewUseCase(alloc, fakeTxManager{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, alloc.calls)
	assert.True(t, alloc.inTx)
}

func TestExecute_ConflictCountsMetric(t *testing.T) {
	alloc := &fakeAllocator{err: allocation.ErrSchedulingConflict}
	m := &fakeMetrics{}
	uc := NewUseCase(alloc, fakeTxManager{}, m, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	assert.ErrorIs(t, err, ErrSchedulingConflict)
	assert.Equal(t, 0, m.created)
	assert.Equal(t, 1, m.conflicts)
}

func TestExecute_AllocationErrorPropagates(t *testing.T) {
	alloc := &fakeAllocator{err: allocation.ErrNotEnoughCleaners}
	uc := NewUseCase(alloc, fakeTxManager{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    3,
	})
	assert.ErrorIs(t, err, ErrNotEnoughCleaners)
}
