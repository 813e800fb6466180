package main

import (
	"context"
	"database/sql"
	"errors"
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
	"github.com/spf13/cobra"

	bookAppointmentHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/book_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_available_slots"
	getBookingAttemptsHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_booking_attempts"
	getDoctorScheduleHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_doctor_schedule"
	getNavigationHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/get_navigation"
	requestOTPHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/request_otp"
	updateDoctorScheduleHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/update_doctor_schedule"
	verifyOTPHandler "github.com/m04kA/SMC-DoctorBooking/internal/api/handlers/verify_otp"
	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorBooking/internal/config"
	"github.com/m04kA/SMC-DoctorBooking/internal/infra/cache"
	attemptsRepo "github.com/m04kA/SMC-DoctorBooking/internal/infra/storage/attempts"
	scheduleRepo "github.com/m04kA/SMC-DoctorBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
	attemptsService "github.com/m04kA/SMC-DoctorBooking/internal/service/attempts"
	navigationService "github.com/m04kA/SMC-DoctorBooking/internal/service/navigation"
	scheduleService "github.com/m04kA/SMC-DoctorBooking/internal/service/schedule"
	bookAppointmentUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	requestOTPUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/request_otp"
	verifyOTPUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/verify_otp"
	"github.com/m04kA/SMC-DoctorBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
	"github.com/m04kA/SMC-DoctorBooking/pkg/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-DoctorBooking...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Slots.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	// Инициализируем метрики (если включены)
	// Nil-коллектор безопасен: методы ничего не делают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Redis: кеш врачей и паузы OTP
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(cmd.Context()).Err(); err != nil {
		log.Warn("Redis is unavailable at %s, doctors cache will fall back to clinic API: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	}

	// Интеграция с API клиники
	clinicClient := clinicapi.NewClient(
		cfg.ClinicAPI.URL,
		time.Duration(cfg.ClinicAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Clinic API client initialized (url=%s timeout=%ds)", cfg.ClinicAPI.URL, cfg.ClinicAPI.Timeout)

	doctorCache := cache.NewDoctorCache(
		rdb,
		clinicClient,
		time.Duration(cfg.Redis.DoctorsCacheTTL)*time.Second,
		metricsCollector,
		log,
	)
	cooldownStore := cache.NewCooldownStore(rdb)

	// Репозитории и сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepo.NewRepository(executor), log)
	attemptsSvc := attemptsService.NewService(attemptsRepo.NewRepository(executor), log)
	navigationSvc := navigationService.NewService()

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		doctorCache,
		scheduleSvc,
		metricsCollector,
		cfg.Slots.LabelLayout,
		loc,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		clinicClient,
		attemptsSvc,
		doctorCache,
		cfg.Slots.LabelLayout,
		loc,
		log,
	)
	requestOTPUseCase := requestOTPUC.NewUseCase(
		clinicClient,
		cooldownStore,
		time.Duration(cfg.OTP.ResendCooldown)*time.Second,
		log,
	)
	verifyOTPUseCase := verifyOTPUC.NewUseCase(clinicClient, cooldownStore, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	requestOTP := requestOTPHandler.NewHandler(requestOTPUseCase, log)
	verifyOTP := verifyOTPHandler.NewHandler(verifyOTPUseCase, log)
	getNavigation := getNavigationHandler.NewHandler(navigationSvc)
	getDoctorSchedule := getDoctorScheduleHandler.NewHandler(scheduleSvc, log)
	updateDoctorSchedule := updateDoctorScheduleHandler.NewHandler(scheduleSvc, log)
	getBookingAttempts := getBookingAttemptsHandler.NewHandler(attemptsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SessionToken)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/doctors/{docId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/navigation", getNavigation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/otp/request", requestOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// Требует заголовок token, проверку делает API клиники
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (заголовок atoken)
	// ============================================================

	adminOnly := middleware.AdminAuth(cfg.Admin.Token, log)

	api.Handle("/doctors/{docId}/schedule", adminOnly(http.HandlerFunc(getDoctorSchedule.Handle))).Methods(http.MethodGet)
	api.Handle("/doctors/{docId}/schedule", adminOnly(http.HandlerFunc(updateDoctorSchedule.Handle))).Methods(http.MethodPut)
	api.Handle("/doctors/{docId}/booking-attempts", adminOnly(http.HandlerFunc(getBookingAttempts.Handle))).Methods(http.MethodGet)

	if cfg.Admin.Token == "" {
		log.Warn("Admin token is not configured, admin routes are disabled")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
