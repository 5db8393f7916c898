package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCleanerHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/add_cleaner"
	checkAvailabilityHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_booking"
	createVehicleHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/create_vehicle"
	deleteBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_booking"
	getVehicleHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/get_vehicle"
	listVehiclesHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/list_vehicles"
	updateBookingHandler "github.com/m04kA/SMC-CleaningService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-CleaningService/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/cleaner"
	vehicleRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/vehicle"
	allocationService "github.com/m04kA/SMC-CleaningService/internal/service/allocation"
	bookingsService "github.com/m04kA/SMC-CleaningService/internal/service/bookings"
	vehiclesService "github.com/m04kA/SMC-CleaningService/internal/service/vehicles"
	checkAvailabilityUC "github.com/m04kA/SMC-CleaningService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/SMC-CleaningService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/logger"
	"github.com/m04kA/SMC-CleaningService/pkg/metrics"
	"github.com/m04kA/SMC-CleaningService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CleaningService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	cleanerRepository := cleanerRepo.NewRepository(db)
	vehicleRepository := vehicleRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	allocator := allocationService.NewService(cleanerRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, cleanerRepository, log)

	// Инициализируем use cases
	// nil-интерфейс вместо typed-nil указателя, когда метрики выключены
	var bookingMetrics createBookingUC.MetricsRecorder
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(allocator, txMgr, bookingMetrics, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, allocator, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(cleanerRepository, bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	addCleaner := addCleanerHandler.NewHandler(vehicleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Заказы ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Машины и экипажи ---
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}/cleaners", addCleaner.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
