package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_GetByID(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[42] = &domain.Booking{
		ID:        42,
		CleanerID: 7,
		Date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.CleanerID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[5] = &domain.Booking{ID: 5, CleanerID: 1}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 5))
	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	err := svc.Delete(context.Background(), 123)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
