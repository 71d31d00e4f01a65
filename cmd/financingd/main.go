package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgkafka "github.com/dealdesk/financing-service/pkg/kafka"
	"github.com/dealdesk/financing-service/pkg/observability"
	pkgpostgres "github.com/dealdesk/financing-service/pkg/postgres"

	"github.com/dealdesk/financing-service/internal/application/usecase"
	"github.com/dealdesk/financing-service/internal/domain/service"
	"github.com/dealdesk/financing-service/internal/infrastructure/config"
	"github.com/dealdesk/financing-service/internal/infrastructure/kafka"
	pgRepo "github.com/dealdesk/financing-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/dealdesk/financing-service/internal/presentation/grpc"
	"github.com/dealdesk/financing-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting financing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter; served on the HTTP port next to the health probes.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	profileRepo := pgRepo.NewLenderRateProfileRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.EventTopic, logger)

	// Wire domain services.
	rateEngine := service.NewRateEngine()
	scorer := service.NewMatchScorer()
	synthesizer := service.NewStructureSynthesizer(rateEngine, scorer)

	// Wire use cases.
	computeQuoteUC := usecase.NewComputeQuoteUseCase(publisher)
	compareLendersUC := usecase.NewCompareLendersUseCase(profileRepo, publisher, rateEngine)
	synthesizeUC := usecase.NewSynthesizeStructuresUseCase(profileRepo, publisher, synthesizer)
	upsertProfileUC := usecase.NewUpsertRateProfileUseCase(profileRepo, publisher)
	getProfileUC := usecase.NewGetRateProfileUseCase(profileRepo)
	listProfilesUC := usecase.NewListRateProfilesUseCase(profileRepo)

	// gRPC server.
	handler := grpcPresentation.NewFinancingHandler(
		computeQuoteUC, compareLendersUC, synthesizeUC,
		upsertProfileUC, getProfileUC, listProfilesUC,
		logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("financing-service stopped")
}
