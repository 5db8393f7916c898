package allocation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// fakeStore in-memory реализация репозиториев клинеров и заказов
// Блокировка эмулируется мьютексом: LockForUpdate захватывает его,
// EndTx (аналог конца транзакции) освобождает. Конкурирующие попытки
// сериализуются на нём так же, как на FOR UPDATE в Postgres.
type fakeStore struct {
	dataMu   sync.Mutex
	lockMu   sync.Mutex
	locked   bool
	cleaners []*domain.Cleaner
	bookings []*domain.Booking
	nextID   int64

	// filterBarrier, если задан, задерживает каждую попытку после открытого
	// фильтра, пока все участники не отфильтруются: так конкурирующие
	// попытки гарантированно сходятся на блокировке, а не друг за другом
	filterBarrier *sync.WaitGroup
}

func newFakeStore(cleaners ...*domain.Cleaner) *fakeStore {
	return &fakeStore{cleaners: cleaners, nextID: 1}
}

func (f *fakeStore) ListWithVehicle(_ context.Context) ([]*domain.Cleaner, error) {
	return f.cleaners, nil
}

func (f *fakeStore) IsAvailable(_ context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error) {
	free := f.windowFree(cleanerID, date, startTime, endTime)

	// Ждать нужно вне dataMu, иначе вторая попытка не дойдёт до барьера
	if f.filterBarrier != nil {
		f.filterBarrier.Done()
		f.filterBarrier.Wait()
	}

	return free, nil
}

func (f *fakeStore) windowFree(cleanerID int64, date time.Time, startTime, endTime types.TimeString) bool {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()

	for _, b := range f.bookings {
		if b.CleanerID != cleanerID || !b.Date.Equal(date) {
			continue
		}
		if b.StartTime.IsBefore(endTime) && b.EndTime.IsAfter(startTime) {
			return false
		}
	}
	return true
}

func (f *fakeStore) LockForUpdate(_ context.Context, ids []int64) ([]*domain.Cleaner, error) {
	f.lockMu.Lock()
	f.locked = true

	locked := make([]*domain.Cleaner, 0, len(ids))
	for _, id := range ids {
		for _, c := range f.cleaners {
			if c.ID == id {
				locked = append(locked, c)
			}
		}
	}
	return locked, nil
}

// EndTx эмулирует конец транзакции: снимает блокировку, если она была взята
func (f *fakeStore) EndTx() {
	if f.locked {
		f.locked = false
		f.lockMu.Unlock()
	}
}

func (f *fakeStore) HasOverlap(_ context.Context, cleanerID int64, date time.Time, startTime, endTime types.TimeString) (bool, error) {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()

	for _, b := range f.bookings {
		if b.CleanerID != cleanerID || !b.Date.Equal(date) {
			continue
		}
		if b.StartTime.IsBefore(endTime) && b.EndTime.IsAfter(startTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()

	booking.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeStore) bookingCount() int {
	f.dataMu.Lock()
	defer f.dataMu.Unlock()
	return len(f.bookings)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2025-10-14 - вторник
var tuesday = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

func newService(store *fakeStore) *Service {
	return NewService(store, store, noopLogger{})
}

func TestAllocate_SingleCleanerSuccess(t *testing.T) {
	store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
	svc := newService(store)

	res, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.BookingID)
	assert.Equal(t, types.TimeString("10:00"), res.StartTime)
	assert.Equal(t, types.TimeString("12:00"), res.EndTime)
	assert.Equal(t, []int64{1}, res.CleanerIDs)
	assert.Equal(t, 1, store.bookingCount())
}

func TestAllocate_Validation(t *testing.T) {
	friday := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "friday is rejected",
			req:     &Request{Date: friday, StartTime: "10:00", DurationMinutes: 120, CleanerCount: 1},
			wantErr: ErrNonWorkingDay,
		},
		{
			name:    "start before working hours",
			req:     &Request{Date: tuesday, StartTime: "07:30", DurationMinutes: 120, CleanerCount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "end after 22:00",
			req:     &Request{Date: tuesday, StartTime: "21:00", DurationMinutes: 120, CleanerCount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "duration not in {120, 240}",
			req:     &Request{Date: tuesday, StartTime: "10:00", DurationMinutes: 90, CleanerCount: 1},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "zero cleaner count",
			req:     &Request{Date: tuesday, StartTime: "10:00", DurationMinutes: 120, CleanerCount: 0},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
			svc := newService(store)

			_, err := svc.Allocate(context.Background(), tt.req)
			store.EndTx()

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.bookingCount(), "no booking may be created on validation failure")
		})
	}
}

func TestAllocate_NonWorkingDayIsInvalidRequest(t *testing.T) {
	// ErrNonWorkingDay - подтип ErrInvalidRequest
	assert.ErrorIs(t, ErrNonWorkingDay, ErrInvalidRequest)
}

func TestAllocate_NotEnoughCleaners(t *testing.T) {
	store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
	svc := newService(store)

	_, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    2,
	})
	store.EndTx()

	assert.ErrorIs(t, err, ErrNotEnoughCleaners)
	assert.Zero(t, store.bookingCount())
}

func TestAllocate_NoSingleVehicleCohort(t *testing.T) {
	// Две машины по одному свободному клинеру: по отдельности клинеров
	// достаточно, но бригада из разных машин не собирается
	store := newFakeStore(
		&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1},
		&domain.Cleaner{ID: 2, Name: "Boris", VehicleID: 2},
	)
	svc := newService(store)

	_, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    2,
	})
	store.EndTx()

	assert.ErrorIs(t, err, ErrNoVehicleAvailable)
	assert.Zero(t, store.bookingCount())
}

func TestAllocate_CohortFromSameVehicle(t *testing.T) {
	store := newFakeStore(
		&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 2},
		&domain.Cleaner{ID: 2, Name: "Boris", VehicleID: 1},
		&domain.Cleaner{ID: 3, Name: "Vera", VehicleID: 2},
		&domain.Cleaner{ID: 4, Name: "Grisha", VehicleID: 2},
	)
	svc := newService(store)

	res, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "08:00",
		DurationMinutes: 240,
		CleanerCount:    2,
	})
	store.EndTx()

	require.NoError(t, err)
	require.Len(t, res.CleanerIDs, 2)

	// Все выбранные клинеры из одной машины
	vehicleByCleaner := map[int64]int64{1: 2, 2: 1, 3: 2, 4: 2}
	first := vehicleByCleaner[res.CleanerIDs[0]]
	for _, id := range res.CleanerIDs {
		assert.Equal(t, first, vehicleByCleaner[id])
	}

	// По одной строке заказа на каждого клинера бригады
	assert.Equal(t, 2, store.bookingCount())
}

func TestAllocate_VehicleTieBreakByLowestID(t *testing.T) {
	// Обе машины подходят: берётся машина с меньшим ID
	store := newFakeStore(
		&domain.Cleaner{ID: 10, Name: "Vera", VehicleID: 7},
		&domain.Cleaner{ID: 11, Name: "Anna", VehicleID: 3},
	)
	svc := newService(store)

	res, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()

	require.NoError(t, err)
	assert.Equal(t, []int64{11}, res.CleanerIDs)
}

func TestAllocate_RestGapConflictAfterCommit(t *testing.T) {
	store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
	svc := newService(store)

	_, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()
	require.NoError(t, err)

	// 12:15 начинается раньше, чем через 30 минут после конца первого
	// заказа (12:00): простое пересечение проходит, расширенное окно - нет
	_, err = svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "12:15",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()

	assert.ErrorIs(t, err, ErrSchedulingConflict)
	assert.Equal(t, 1, store.bookingCount())
}

func TestAllocate_GapRespectedOutsideRestWindow(t *testing.T) {
	store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
	svc := newService(store)

	_, err := svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()
	require.NoError(t, err)

	// 12:30 ровно в 30 минутах от конца первого заказа: расширенное окно
	// [12:00, 15:00) граничит с заказом [10:00, 12:00), конфликта нет
	_, err = svc.Allocate(context.Background(), &Request{
		Date:            tuesday,
		StartTime:       "12:30",
		DurationMinutes: 120,
		CleanerCount:    1,
	})
	store.EndTx()

	require.NoError(t, err)
	assert.Equal(t, 2, store.bookingCount())
}

func TestAllocate_ConcurrentRequestsForSameCleaner(t *testing.T) {
	// Две конкурентные попытки на единственного клинера: барьер удерживает
	// обе после открытого фильтра, так что они сериализуются именно на
	// блокировке; проигравшая видит заказ победившей при повторной проверке
	store := newFakeStore(&domain.Cleaner{ID: 1, Name: "Anna", VehicleID: 1})
	store.filterBarrier = &sync.WaitGroup{}
	store.filterBarrier.Add(2)
	svc := newService(store)

	req := &Request{
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 120,
		CleanerCount:    1,
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Allocate(context.Background(), req)
			store.EndTx()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, ErrSchedulingConflict)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Equal(t, 1, store.bookingCount())
}
