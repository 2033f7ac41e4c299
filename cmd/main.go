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

	cancelReservationHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/cancel_reservation"
	createClosureHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/create_closure"
	createReservationHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/create_reservation"
	createSpaceHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/create_space"
	getCalendarHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/get_reservation"
	getSpaceHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/get_space"
	getSpaceReservationsHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/get_space_reservations"
	getUserReservationsHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/get_user_reservations"
	listSpacesHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/list_spaces"
	updateReservationStatusHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/update_reservation_status"
	updateSpaceHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/update_space"
	validateSelectionHandler "github.com/cimillas/CML-SpaceService/internal/api/handlers/validate_selection"
	"github.com/cimillas/CML-SpaceService/internal/api/middleware"
	"github.com/cimillas/CML-SpaceService/internal/config"
	reservationRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/reservation"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
	reservationsService "github.com/cimillas/CML-SpaceService/internal/service/reservations"
	spacesService "github.com/cimillas/CML-SpaceService/internal/service/spaces"
	createReservationUC "github.com/cimillas/CML-SpaceService/internal/usecase/create_reservation"
	getCalendarUC "github.com/cimillas/CML-SpaceService/internal/usecase/get_calendar"
	validateSelectionUC "github.com/cimillas/CML-SpaceService/internal/usecase/validate_selection"
	"github.com/cimillas/CML-SpaceService/pkg/dbmetrics"
	"github.com/cimillas/CML-SpaceService/pkg/logger"
	"github.com/cimillas/CML-SpaceService/pkg/metrics"
	"github.com/cimillas/CML-SpaceService/pkg/simpletxmanager"
	"github.com/cimillas/CML-SpaceService/pkg/txmanager"
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

	log.Info("Starting CML-SpaceService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		spaceRepository       *spaceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	spacesSvc := spacesService.NewService(spaceRepository, reservationRepository, log)

	// Инициализируем use cases
	validateSelectionUseCase := validateSelectionUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		txMgr,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	validateSelection := validateSelectionHandler.NewHandler(validateSelectionUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getSpaceReservations := getSpaceReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spacesSvc, log)
	getSpace := getSpaceHandler.NewHandler(spacesSvc, log)
	createSpace := createSpaceHandler.NewHandler(spacesSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spacesSvc, log)
	createClosure := createClosureHandler.NewHandler(spacesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог пространств
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)

	// Календарь доступности пространства
	api.HandleFunc("/spaces/{spaceId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Проверка выбора брони (используется фронтом на каждом шаге выбора)
	api.HandleFunc("/bookings/validate", validateSelection.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)

	// История броней пользователя
	protected.HandleFunc("/bookings", getUserReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	protected.HandleFunc("/bookings/{id}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/bookings/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly(log))

	// Управление каталогом пространств
	admin.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)

	// Административные закрытия пространства
	admin.HandleFunc("/spaces/{spaceId}/closures", createClosure.Handle).Methods(http.MethodPost)

	// Брони пространства
	admin.HandleFunc("/spaces/{spaceId}/bookings", getSpaceReservations.Handle).Methods(http.MethodGet)

	// Модерация статуса брони
	admin.HandleFunc("/bookings/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

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
