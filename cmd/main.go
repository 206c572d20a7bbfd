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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addSlotHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/add_slot"
	attachScheduleHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/attach_schedule"
	cancelBookingHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/check_availability"
	createFacilityHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/create_facility"
	createScheduleHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/create_schedule"
	decideBookingHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/decide_booking"
	getBookingHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/get_booking"
	getFacilityHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/get_facility"
	getFacilityBookingsHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/get_facility_bookings"
	getScheduleHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/list_facilities"
	removeSlotHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/remove_slot"
	requestBookingHandler "github.com/m04kA/FMS-BookingService/internal/api/handlers/request_booking"
	"github.com/m04kA/FMS-BookingService/internal/api/middleware"
	"github.com/m04kA/FMS-BookingService/internal/config"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
	authServiceClient "github.com/m04kA/FMS-BookingService/internal/integrations/authservice"
	bookingsService "github.com/m04kA/FMS-BookingService/internal/service/bookings"
	facilitiesService "github.com/m04kA/FMS-BookingService/internal/service/facilities"
	schedulesService "github.com/m04kA/FMS-BookingService/internal/service/schedules"
	checkAvailabilityUC "github.com/m04kA/FMS-BookingService/internal/usecase/check_availability"
	createScheduleUC "github.com/m04kA/FMS-BookingService/internal/usecase/create_schedule"
	requestBookingUC "github.com/m04kA/FMS-BookingService/internal/usecase/request_booking"
	"github.com/m04kA/FMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FMS-BookingService/pkg/logger"
	"github.com/m04kA/FMS-BookingService/pkg/metrics"
	"github.com/m04kA/FMS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/FMS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем .env (если есть) до чтения конфигурации
	_ = godotenv.Load()

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

	log.Info("Starting FMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s, timeout=%ds)", cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем публикацию событий (если включена)
	var eventPublisher interface {
		PublishBookingEvent(ctx context.Context, key string, event events.BookingEvent) error
	}
	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		eventPublisher = publisher
		log.Info("Event publisher initialized (exchange=%s)", cfg.Events.Exchange)
	} else {
		eventPublisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		facilityRepository *facilityRepo.Repository
	)

	// Интерфейс transaction manager, реализуемый обоими вариантами
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, authClient, eventPublisher, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, bookingRepository, log)
	facilitySvc := facilitiesService.NewService(facilityRepository, scheduleRepository, log)

	// Инициализируем use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(scheduleRepository, txMgr, log)
	requestBookingUseCase := requestBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		scheduleRepository,
		eventPublisher,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	addSlot := addSlotHandler.NewHandler(scheduleSvc, log)
	removeSlot := removeSlotHandler.NewHandler(scheduleSvc, log)
	createFacility := createFacilityHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	attachSchedule := attachScheduleHandler.NewHandler(facilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	requestBooking := requestBookingHandler.NewHandler(requestBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание со слотами
	api.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// Объекты
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// Доступность слотов объекта на дату
	api.HandleFunc("/facilities/{facilityId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписания ---
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}/slots", addSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}/slots/{slotId}", removeSlot.Handle).Methods(http.MethodDelete)

	// --- Объекты ---
	protected.HandleFunc("/facilities", createFacility.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facilityId}/schedule", attachSchedule.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", requestBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/decide", decideBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Календарь бронирований объекта (для модераторов)
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
