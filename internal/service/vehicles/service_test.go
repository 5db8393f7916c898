package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/vehicle"
)

type fakeVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
	nextID   int64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int64]*domain.Vehicle), nextID: 1}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	v.ID = f.nextID
	f.nextID++
	f.vehicles[v.ID] = v
	return v, nil
}

func (f *fakeVehicleRepo) GetByIDWithCleaners(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func (f *fakeVehicleRepo) ListWithCleaners(_ context.Context) ([]*domain.Vehicle, error) {
	result := make([]*domain.Vehicle, 0, len(f.vehicles))
	for id := int64(1); id < f.nextID; id++ {
		if v, ok := f.vehicles[id]; ok {
			result = append(result, v)
		}
	}
	return result, nil
}

type fakeCleanerRepo struct {
	vehicles *fakeVehicleRepo
	nextID   int64
}

func (f *fakeCleanerRepo) Create(_ context.Context, c *domain.Cleaner) (*domain.Cleaner, error) {
	c.ID = f.nextID
	f.nextID++
	if v, ok := f.vehicles.vehicles[c.VehicleID]; ok {
		v.Cleaners = append(v.Cleaners, *c)
	}
	return c, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeVehicleRepo) {
	vehicles := newFakeVehicleRepo()
	cleaners := &fakeCleanerRepo{vehicles: vehicles, nextID: 1}
	return NewService(vehicles, cleaners, noopLogger{}), vehicles
}

func TestService_CreateVehicle(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.CreateVehicle(context.Background(), "Газель 1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Газель 1", resp.Name)
	assert.Empty(t, resp.Cleaners)
}

func TestService_CreateVehicle_EmptyName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateVehicle(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AddCleaner(t *testing.T) {
	svc, _ := newTestService()

	vehicle, err := svc.CreateVehicle(context.Background(), "Газель 1")
	require.NoError(t, err)

	cleaner, err := svc.AddCleaner(context.Background(), vehicle.ID, "Иванов")
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, cleaner.VehicleID)
	assert.Equal(t, "Иванов", cleaner.Name)

	got, err := svc.GetVehicle(context.Background(), vehicle.ID)
	require.NoError(t, err)
	require.Len(t, got.Cleaners, 1)
	assert.Equal(t, cleaner.ID, got.Cleaners[0].ID)
}

func TestService_AddCleaner_VehicleNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddCleaner(context.Background(), 99, "Иванов")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_AddCleaner_VehicleFull(t *testing.T) {
	svc, _ := newTestService()

	vehicle, err := svc.CreateVehicle(context.Background(), "Газель 1")
	require.NoError(t, err)

	for i := 0; i < domain.MaxCleanersPerVehicle; i++ {
		_, err := svc.AddCleaner(context.Background(), vehicle.ID, "Клинер")
		require.NoError(t, err)
	}

	_, err = svc.AddCleaner(context.Background(), vehicle.ID, "Лишний")
	assert.ErrorIs(t, err, ErrVehicleFull)
}

func TestService_AddCleaner_EmptyName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddCleaner(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetVehicle_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetVehicle(context.Background(), 5)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_ListVehicles(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateVehicle(context.Background(), "Газель 1")
	require.NoError(t, err)
	_, err = svc.CreateVehicle(context.Background(), "Газель 2")
	require.NoError(t, err)

	list, err := svc.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}
