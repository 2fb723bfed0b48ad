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

	addCartRowHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/add_cart_row"
	cancelAppointmentHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/cancel_appointment"
	cancelNoveltyHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/cancel_novelty"
	createCartHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/create_cart"
	createNoveltyHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/create_novelty"
	discardCartHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/discard_cart"
	getAvailableStartsHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/get_available_starts"
	getCartHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/get_cart"
	getDayScheduleHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/get_day_schedule"
	getTransitionsHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/get_transitions"
	refreshFlagsHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/refresh_flags"
	removeCartRowHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/remove_cart_row"
	staffActiveAppointmentsHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/staff_active_appointments"
	submitCartHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/submit_cart"
	updateCartRowHandler "github.com/m04kA/NLS-ScheduleService/internal/api/handlers/update_cart_row"
	"github.com/m04kA/NLS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/config"
	"github.com/m04kA/NLS-ScheduleService/internal/infra/refreshflags"
	journalRepo "github.com/m04kA/NLS-ScheduleService/internal/infra/storage/journal"
	salonAPIClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
	"github.com/m04kA/NLS-ScheduleService/internal/scheduler"
	appointmentsService "github.com/m04kA/NLS-ScheduleService/internal/service/appointments"
	cartsService "github.com/m04kA/NLS-ScheduleService/internal/service/carts"
	noveltiesService "github.com/m04kA/NLS-ScheduleService/internal/service/novelties"
	getAvailableStartsUC "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_available_starts"
	getDayScheduleUC "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_day_schedule"
	submitCartUC "github.com/m04kA/NLS-ScheduleService/internal/usecase/submit_cart"
	"github.com/m04kA/NLS-ScheduleService/pkg/logger"
	"github.com/m04kA/NLS-ScheduleService/pkg/metrics"
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

	log.Info("Starting NLS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе журнала переходов
	db, err := sql.Open("postgres", cfg.JournalDB.DSN())
	if err != nil {
		log.Fatal("Failed to connect to journal database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.JournalDB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.JournalDB.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.JournalDB.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping journal database: %v", err)
	}
	log.Info("Successfully connected to journal database (host=%s, port=%d, db=%s)",
		cfg.JournalDB.Host, cfg.JournalDB.Port, cfg.JournalDB.DBName)

	// Подключаемся к Redis для маркеров обновления.
	// Недоступный Redis не мешает старту: маркеры деградируют до no-op.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	flags := refreshflags.NewStore(rdb, time.Duration(cfg.Redis.FlagTTL)*time.Second, log)

	// Инициализируем клиент бэкенда салона
	salonClient := salonAPIClient.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds)", cfg.SalonAPI.URL, cfg.SalonAPI.Timeout)

	// Инициализируем репозитории и хранилища
	journalRepository := journalRepo.NewRepository(db)
	cartStore := cart.NewStore(0)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(salonClient, journalRepository, flags, metricsCollector, log)
	noveltiesSvc := noveltiesService.NewService(salonClient, flags, log)
	cartsSvc := cartsService.NewService(cartStore, salonClient, log)

	// Инициализируем use cases
	getAvailableStartsUseCase := getAvailableStartsUC.NewUseCase(salonClient, metricsCollector, log)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(salonClient, metricsCollector, log)
	submitCartUseCase := submitCartUC.NewUseCase(cartStore, salonClient, flags, log)

	// Инициализируем планировщик переходов статусов
	var stateScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		stateScheduler = scheduler.New(
			salonClient,
			appointmentsSvc,
			metricsCollector,
			time.Duration(cfg.Scheduler.TickTimeout)*time.Second,
			log,
		)
		if err := stateScheduler.Start(); err != nil {
			log.Fatal("Failed to start scheduler: %v", err)
		}
	} else {
		log.Warn("State scheduler is disabled; appointment statuses will not advance automatically")
	}

	// Инициализируем handlers
	getAvailableStarts := getAvailableStartsHandler.NewHandler(getAvailableStartsUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createCart := createCartHandler.NewHandler(cartsSvc, log)
	getCart := getCartHandler.NewHandler(cartsSvc, log)
	addCartRow := addCartRowHandler.NewHandler(cartsSvc, log)
	updateCartRow := updateCartRowHandler.NewHandler(cartsSvc, log)
	removeCartRow := removeCartRowHandler.NewHandler(cartsSvc, log)
	discardCart := discardCartHandler.NewHandler(cartsSvc, log)
	submitCart := submitCartHandler.NewHandler(submitCartUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getTransitions := getTransitionsHandler.NewHandler(appointmentsSvc, log)
	createNovelty := createNoveltyHandler.NewHandler(noveltiesSvc, log)
	cancelNovelty := cancelNoveltyHandler.NewHandler(noveltiesSvc, log)
	staffActiveAppointments := staffActiveAppointmentsHandler.NewHandler(noveltiesSvc, log)
	refreshFlags := refreshFlagsHandler.NewHandler(flags, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Доступные времена начала записи у мастера
	api.HandleFunc("/staff/{staffId}/available-starts", getAvailableStarts.Handle).Methods(http.MethodGet)

	// Расписание дня по всем активным мастерам
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Корзина мультисервисной записи ---
	protected.HandleFunc("/carts", createCart.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/carts/{cartId}", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/carts/{cartId}", discardCart.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/carts/{cartId}/rows", addCartRow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/carts/{cartId}/rows/{rowId}", updateCartRow.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/carts/{cartId}/rows/{rowId}", removeCartRow.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/carts/{cartId}/submit", submitCart.Handle).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/transitions", getTransitions.Handle).Methods(http.MethodGet)

	// --- Новедады и мастера ---
	protected.HandleFunc("/novelties", createNovelty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/novelties/{noveltyId}/cancel", cancelNovelty.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/staff/{staffId}/has-active-appointments", staffActiveAppointments.Handle).Methods(http.MethodGet)

	// --- Маркеры обновления интерфейса ---
	protected.HandleFunc("/refresh/{topic}", refreshFlags.HandleCheck).Methods(http.MethodGet)
	protected.HandleFunc("/refresh/{topic}", refreshFlags.HandleClear).Methods(http.MethodDelete)

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

	// Останавливаем планировщик, дожидаясь текущего тика
	if stateScheduler != nil {
		stateScheduler.Stop()
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
