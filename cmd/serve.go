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

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	checkAvailabilityHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/check_availability"
	confirmPaymentHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/confirm_payment"
	discardPendingHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/discard_pending_booking"
	getCapacityHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/get_capacity"
	getPendingHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/get_pending_booking"
	getReceiptHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/get_receipt"
	getServicesHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/get_services"
	"github.com/m04kA/SMC-DayCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DayCareBooking/internal/config"
	sessionStorage "github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-DayCareBooking/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-DayCareBooking/internal/jobs"
	bookingsService "github.com/m04kA/SMC-DayCareBooking/internal/service/bookings"
	attemptBookingUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
	checkAvailabilityUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/check_availability"
	confirmPaymentUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/confirm_payment"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP booking API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting daycare booking service %s...", version)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал вместимости
	ctx := context.Background()
	capacity, closeLedger, err := openLedger(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLedger()

	// Платежный шлюз
	gateway := newPaymentGateway(cfg, log)

	// Сессии и их очистка
	sessions := sessionStorage.NewStore(cfg.Session.IdleTTLDuration())
	sweeper, err := jobs.NewSessionSweeper(sessions, cfg.Session.SweepSchedule, log)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	hashKey, blockKey := sessionKeys(cfg, log)
	sessionManager := middleware.NewSessionManager(sessions, cfg.Session.CookieName, hashKey, blockKey, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(capacity, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(capacity, metricsCollector, log)
	attemptBookingUseCase := attemptBookingUC.NewUseCase(checkAvailabilityUseCase, metricsCollector, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(gateway, capacity, cfg.Payment.Currency, metricsCollector, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(attemptBookingUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getPending := getPendingHandler.NewHandler(bookingSvc, log)
	discardPending := discardPendingHandler.NewHandler(bookingSvc, log)
	getReceipt := getReceiptHandler.NewHandler(bookingSvc, log)
	getCapacity := getCapacityHandler.NewHandler(bookingSvc, log)
	getServices := getServicesHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Справочные данные, сессия не нужна
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capacity", getCapacity.Handle).Methods(http.MethodGet)

	// Бронирование в рамках сессии
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(sessionManager.Middleware)

	bookings.HandleFunc("/check", checkAvailability.Handle).Methods(http.MethodPost)
	bookings.HandleFunc("/pending", getPending.Handle).Methods(http.MethodGet)
	bookings.HandleFunc("/pending", discardPending.Handle).Methods(http.MethodDelete)
	bookings.HandleFunc("/confirm", confirmPayment.Handle).Methods(http.MethodPost)
	bookings.HandleFunc("/receipt", getReceipt.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{log}))(r),
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// recoveryLogger пишет паники обработчиков в основной логгер
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}

// newPaymentGateway выбирает заглушку или HTTP клиент по payment.provider
func newPaymentGateway(cfg *config.Config, log *logger.Logger) confirmPaymentUC.PaymentGateway {
	if cfg.Payment.Provider == config.PaymentProviderHTTP {
		log.Info("Payment gateway client initialized (url=%s, timeout=%ds)", cfg.Payment.URL, cfg.Payment.Timeout)
		return paymentgateway.NewClient(cfg.Payment.URL, time.Duration(cfg.Payment.Timeout)*time.Second, log)
	}

	log.Info("Using stub payment gateway, every charge succeeds")
	return paymentgateway.NewStub(log)
}

// sessionKeys без настроенного hash_key генерирует ключ на время жизни процесса
func sessionKeys(cfg *config.Config, log *logger.Logger) ([]byte, []byte) {
	hashKey := []byte(cfg.Session.HashKey)
	if len(hashKey) == 0 {
		log.Warn("session.hash_key is not set, sessions will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(64)
	}
	return hashKey, []byte(cfg.Session.BlockKey)
}
