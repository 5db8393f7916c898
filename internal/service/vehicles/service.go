package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-CleaningService/internal/service/vehicles/models"
)

// Service сервис для управления машинами и их экипажами
type Service struct {
	vehicleRepo VehicleRepository
	cleanerRepo CleanerRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса машин
func NewService(vehicleRepo VehicleRepository, cleanerRepo CleanerRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		cleanerRepo: cleanerRepo,
		logger:      logger,
	}
}

// CreateVehicle создает новую машину
func (s *Service) CreateVehicle(ctx context.Context, name string) (*models.VehicleResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: vehicle name is required", ErrInvalidInput)
	}

	s.logger.Info("CreateVehicle: creating vehicle name=%s", name)

	vehicle, err := s.vehicleRepo.Create(ctx, &domain.Vehicle{Name: name})
	if err != nil {
		s.logger.Error("CreateVehicle: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateVehicle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVehicle: vehicle id=%d created", vehicle.ID)
	return models.FromDomainVehicle(vehicle), nil
}

// AddCleaner добавляет клинера в экипаж машины
// В машине может быть не больше domain.MaxCleanersPerVehicle клинеров.
func (s *Service) AddCleaner(ctx context.Context, vehicleID int64, name string) (*models.CleanerResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: cleaner name is required", ErrInvalidInput)
	}

	s.logger.Info("AddCleaner: adding cleaner name=%s to vehicle id=%d", name, vehicleID)

	// 1. Проверяем, что машина существует и в ней есть место
	vehicle, err := s.vehicleRepo.GetByIDWithCleaners(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("AddCleaner: vehicle id=%d not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("AddCleaner: repository error for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: AddCleaner - repository error: %v", ErrInternal, err)
	}

	if !vehicle.HasCapacity() {
		s.logger.Warn("AddCleaner: vehicle id=%d already has %d cleaners", vehicleID, len(vehicle.Cleaners))
		return nil, fmt.Errorf("%w: vehicle %d already has %d cleaners", ErrVehicleFull, vehicleID, domain.MaxCleanersPerVehicle)
	}

	// 2. Создаем клинера
	cleaner, err := s.cleanerRepo.Create(ctx, &domain.Cleaner{
		Name:      name,
		VehicleID: vehicleID,
	})
	if err != nil {
		s.logger.Error("AddCleaner: failed to create cleaner for vehicle id=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: AddCleaner - create cleaner: %v", ErrInternal, err)
	}

	s.logger.Info("AddCleaner: cleaner id=%d added to vehicle id=%d", cleaner.ID, vehicleID)
	resp := models.FromDomainCleaner(cleaner)
	return &resp, nil
}

// GetVehicle получает машину с её экипажем
func (s *Service) GetVehicle(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByIDWithCleaners(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetVehicle: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetVehicle - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// ListVehicles возвращает все машины с их экипажами
func (s *Service) ListVehicles(ctx context.Context) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListWithCleaners(ctx)
	if err != nil {
		s.logger.Error("ListVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVehicles - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, models.FromDomainVehicle(v))
	}
	return result, nil
}
