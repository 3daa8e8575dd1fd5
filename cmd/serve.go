package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	cancelAppointmentHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_appointment"
	getAvailabilitySettingsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_availability_settings"
	getAvailableSlotsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_available_slots"
	getDoctorAppointmentsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_doctor_appointments"
	getNotificationsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_notifications"
	getPatientAppointmentsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_patient_appointments"
	getUnreadCountHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/get_unread_count"
	healthHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/health"
	markAllNotificationsReadHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/mark_notification_read"
	respondAppointmentHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/respond_appointment"
	updateAvailabilitySettingsHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/update_availability_settings"
	updateDayScheduleHandler "github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers/update_day_schedule"
	"github.com/m04kA/MedConnect-AppointmentService/internal/api/middleware"
	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/config"
	"github.com/m04kA/MedConnect-AppointmentService/internal/infra/lock"
	appointmentRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/availability"
	connectionRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/connection"
	notificationRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/notification"
	userServiceClient "github.com/m04kA/MedConnect-AppointmentService/internal/integrations/userservice"
	appointmentsService "github.com/m04kA/MedConnect-AppointmentService/internal/service/appointments"
	availabilityService "github.com/m04kA/MedConnect-AppointmentService/internal/service/availability"
	notificationsService "github.com/m04kA/MedConnect-AppointmentService/internal/service/notifications"
	cancelAppointmentUC "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/get_available_slots"
	respondAppointmentUC "github.com/m04kA/MedConnect-AppointmentService/internal/usecase/respond_appointment"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/metrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
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

	log.Info("Starting MedConnect-AppointmentService %s...", version)
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех потребителей
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	ctx := context.Background()
	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировка слотов: Redis, если включен; иначе полагаемся на уникальный индекс
	var slotLocker createAppointmentUC.SlotLocker = lock.NopLocker{}
	dependencies := []healthHandler.Dependency{
		{Name: "postgres", Critical: true, Ping: wrappedDB.PingContext},
	}
	if cfg.Redis.Enabled {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			return err
		}
		defer rdb.Close()

		slotLocker = lock.NewRedisLocker(rdb, time.Duration(cfg.Redis.LockTTL)*time.Millisecond)
		dependencies = append(dependencies, healthHandler.Dependency{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		log.Info("Redis slot locks enabled (addr=%s, ttl=%dms)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	connectionRepository := connectionRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		userClient,
		metricsCollector,
		cfg.Booking.NotificationsLimit,
		log,
	)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		connectionRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		connectionRepository,
		slotLocker,
		txMgr,
		notificationSvc,
		metricsCollector,
		log,
	)
	respondAppointmentUseCase := respondAppointmentUC.NewUseCase(appointmentRepository, notificationSvc, metricsCollector, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentRepository, notificationSvc, metricsCollector, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(version, log, dependencies...)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	respondAppointment := respondAppointmentHandler.NewHandler(respondAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAvailabilitySettings := getAvailabilitySettingsHandler.NewHandler(availabilitySvc, log)
	updateAvailabilitySettings := updateAvailabilitySettingsHandler.NewHandler(availabilitySvc, log)
	updateDaySchedule := updateDayScheduleHandler.NewHandler(availabilitySvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	getUnreadCount := getUnreadCountHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health/live", health.Liveness).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", health.Readiness).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(auth.NewTokenManager(cfg.Auth.JWTSecret), log))

	// --- Слоты ---
	api.HandleFunc("/doctors/{doctorId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Статичные пути регистрируем раньше /appointments/{appointmentId}
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/patient", getPatientAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/doctor", getDoctorAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/respond", respondAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Шаблон расписания врача ---
	api.HandleFunc("/availability/settings", getAvailabilitySettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/settings", updateAvailabilitySettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/availability/settings/day", updateDaySchedule.Handle).Methods(http.MethodPatch)

	// --- Уведомления ---
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/unread-count", getUnreadCount.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

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
	case sig := <-quit:
		log.Info("Received %s, shutting down server...", sig)
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		close(stopMetricsCh)
		return err
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
