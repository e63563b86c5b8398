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

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-MedicalBooking/internal/auth/session"
	"github.com/m04kA/SMC-MedicalBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/booking"
	cabinetRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/cabinet"
	favoriteRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/migrations"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	reasonRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/reason"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
	specialtyRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/specialty"
	userRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/user"
	accountsService "github.com/m04kA/SMC-MedicalBooking/internal/service/accounts"
	availabilityService "github.com/m04kA/SMC-MedicalBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-MedicalBooking/internal/service/bookings"
	cabinetsService "github.com/m04kA/SMC-MedicalBooking/internal/service/cabinets"
	catalogService "github.com/m04kA/SMC-MedicalBooking/internal/service/catalog"
	favoritesService "github.com/m04kA/SMC-MedicalBooking/internal/service/favorites"
	professionalsService "github.com/m04kA/SMC-MedicalBooking/internal/service/professionals"
	createBookingUC "github.com/m04kA/SMC-MedicalBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-MedicalBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MedicalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/logger"
	"github.com/m04kA/SMC-MedicalBooking/pkg/metrics"
	"github.com/m04kA/SMC-MedicalBooking/pkg/txmanager"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "medbook",
		Short:         "Medical appointment booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "путь к файлу конфигурации")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), configPath)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap общая инициализация: конфигурация, логгер, подключение к БД
func bootstrap(configPath string) (*config.Config, *logger.Logger, *sql.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		log.Close()
		return nil, nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	return cfg, log, db, nil
}

func runMigrate(ctx context.Context, configPath string) error {
	_, log, db, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()
	defer db.Close()

	applied, err := migrations.NewMigrator(dbmetrics.Wrap(db, nil), log).Up(ctx)
	if err != nil {
		return err
	}

	log.Info("Migrations applied: %d", applied)
	return nil
}

func runServer(configPath string) error {
	cfg, log, db, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()
	defer db.Close()

	log.Info("Starting SMC-MedicalBooking...")

	// Метрики: при выключенных метриках интерфейсы остаются nil
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
		bookingMetrics   createBookingUC.BookingMetrics
	)
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithMaxRetries(cfg.Booking.MaxSerializationRetries))

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	cabinetRepository := cabinetRepo.NewRepository(wrappedDB)
	favoriteRepository := favoriteRepo.NewRepository(wrappedDB)
	professionalRepository := professionalRepo.NewRepository(wrappedDB)
	reasonRepository := reasonRepo.NewRepository(wrappedDB)
	ruleRepository := ruleRepo.NewRepository(wrappedDB)
	specialtyRepository := specialtyRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	sessions := session.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Сервисы
	services := &serviceSet{
		accounts: accountsService.NewService(
			userRepository,
			professionalRepository,
			specialtyRepository,
			sessions,
			txMgr,
			cfg.Auth.BcryptCost,
			log,
		),
		availability:  availabilityService.NewService(ruleRepository, cabinetRepository, log),
		bookings:      bookingsService.NewService(bookingRepository, txMgr, log),
		cabinets:      cabinetsService.NewService(cabinetRepository, ruleRepository, txMgr, log),
		catalog:       catalogService.NewService(specialtyRepository, professionalRepository, cabinetRepository, reasonRepository, log),
		favorites:     favoritesService.NewService(favoriteRepository, professionalRepository, log),
		professionals: professionalsService.NewService(professionalRepository, log),
	}

	// Use cases
	services.createBooking = createBookingUC.NewUseCase(
		bookingRepository,
		professionalRepository,
		cabinetRepository,
		reasonRepository,
		txMgr,
		bookingMetrics,
		cfg.Booking.DefaultDurationMinutes,
		log,
	)
	services.getAvailableSlots = getAvailableSlotsUC.NewUseCase(
		professionalRepository,
		ruleRepository,
		bookingRepository,
		log,
	)

	router := newRouter(cfg, services, sessions, metricsCollector, log)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown по сигналу или падению сервера
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
