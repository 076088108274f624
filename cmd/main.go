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
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/get_day_bookings"
	getMonthAvailabilityHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/get_month_availability"
	getMyBookingsHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/get_my_bookings"
	listBookingsHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/list_bookings"
	updateStatusHandler "github.com/serenity-danang/Serenity-BookingService/internal/api/handlers/update_status"
	"github.com/serenity-danang/Serenity-BookingService/internal/api/middleware"
	"github.com/serenity-danang/Serenity-BookingService/internal/config"
	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	countsCache "github.com/serenity-danang/Serenity-BookingService/internal/infra/cache/counts"
	bookingRepo "github.com/serenity-danang/Serenity-BookingService/internal/infra/storage/booking"
	identityServiceClient "github.com/serenity-danang/Serenity-BookingService/internal/integrations/identityservice"
	mailServiceClient "github.com/serenity-danang/Serenity-BookingService/internal/integrations/mailservice"
	bookingsService "github.com/serenity-danang/Serenity-BookingService/internal/service/bookings"
	createBookingUC "github.com/serenity-danang/Serenity-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/serenity-danang/Serenity-BookingService/internal/usecase/get_available_slots"
	monthAvailabilityUC "github.com/serenity-danang/Serenity-BookingService/internal/usecase/month_availability"
	"github.com/serenity-danang/Serenity-BookingService/pkg/dbmetrics"
	"github.com/serenity-danang/Serenity-BookingService/pkg/logger"
	"github.com/serenity-danang/Serenity-BookingService/pkg/metrics"
	"github.com/serenity-danang/Serenity-BookingService/pkg/simpletxmanager"
	"github.com/serenity-danang/Serenity-BookingService/pkg/txmanager"
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

	log.Info("Starting Serenity-BookingService...")
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

	// Кеш счётчиков занятости календаря (Redis или заглушка)
	type calendarCache interface {
		Get(ctx context.Context, year int, month time.Month) (map[string]int, bool)
		Set(ctx context.Context, year int, month time.Month, counts map[string]int) error
		Invalidate(ctx context.Context, year int, month time.Month) error
	}
	var cache calendarCache

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		cache = countsCache.New(redisClient, time.Duration(cfg.Redis.CountsTTLSeconds)*time.Second)
		log.Info("Redis counts cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CountsTTLSeconds)
	} else {
		cache = countsCache.NewNoop()
		log.Info("Redis disabled, counts cache is a no-op")
	}

	// Инициализируем интеграционных клиентов
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, MailService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.MailService.URL, cfg.MailService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cache, log)

	// Счетчики доменных событий доступны только при включенных метриках
	var bookingMetrics createBookingUC.BookingMetrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		mailClient,
		cache,
		txMgr,
		bookingMetrics,
		domain.BookingStatus(cfg.Bookings.InitialStatus),
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)
	monthAvailabilityUseCase := monthAvailabilityUC.NewUseCase(bookingRepository, cache, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(monthAvailabilityUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание и занятость слотов на дату
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Счётчики занятости по датам месяца (индикаторы календаря)
	api.HandleFunc("/bookings/availability", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Бронирования на дату (без персональных данных)
	api.HandleFunc("/bookings/day", getDayBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// AUTHENTICATED ROUTES (Bearer токен)
	// ============================================================

	authAPI := api.PathPrefix("/my").Subrouter()
	authAPI.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// История бронирований текущего пользователя
	authAPI.HandleFunc("/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer токен + роль admin)
	// ============================================================

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(middleware.Auth(cfg.Auth.JWTSecret, log))
	adminAPI.Use(middleware.RequireAdmin(identityClient, log))

	// Список бронирований с фильтрацией
	adminAPI.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	adminAPI.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение или отмена бронирования
	adminAPI.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Настраиваем HTTP сервер
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	// Ждём сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
