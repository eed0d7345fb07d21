package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/bibbank/signalgraph/internal/application/usecase"
	"github.com/bibbank/signalgraph/internal/domain/port"
	"github.com/bibbank/signalgraph/internal/infrastructure/config"
	kafkapub "github.com/bibbank/signalgraph/internal/infrastructure/kafka"
	"github.com/bibbank/signalgraph/internal/infrastructure/memory"
	"github.com/bibbank/signalgraph/internal/infrastructure/messaging"
	"github.com/bibbank/signalgraph/internal/infrastructure/telemetry"
	grpcpresentation "github.com/bibbank/signalgraph/internal/presentation/grpc"
	"github.com/bibbank/signalgraph/internal/presentation/rest"
	pkgkafka "github.com/bibbank/signalgraph/pkg/kafka"
	"github.com/bibbank/signalgraph/pkg/observability"
)

const serviceName = "signalgraph"

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting signalgraph",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }()
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()
	otel.SetMeterProvider(meterProvider)

	recorder, err := telemetry.NewEvaluationRecorder(meterProvider.Meter(serviceName))
	if err != nil {
		return fmt.Errorf("failed to create evaluation recorder: %w", err)
	}

	// Event publishing.
	var publisher port.EventPublisher
	eventsCheck := "log"
	if cfg.EventsEnabled() {
		producer, err := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			TLS:           cfg.Kafka.TLS,
			SASLEnabled:   cfg.Kafka.SASLEnabled,
			SASLMechanism: cfg.Kafka.SASLMechanism,
			SASLUsername:  cfg.Kafka.SASLUsername,
			SASLPassword:  cfg.Kafka.SASLPassword,
		})
		if err != nil {
			return fmt.Errorf("failed to create kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("kafka producer close error", "error", err)
			}
		}()
		publisher = kafkapub.NewPublisher(producer, cfg.Kafka.Topic, logger)
		eventsCheck = "kafka"
	} else {
		logger.Info("no kafka brokers configured, logging domain events")
		publisher = messaging.NewLogPublisher(logger)
	}

	// Use cases.
	useCases := usecase.NewSet(usecase.Dependencies{
		Sessions:  memory.NewSessionRepository(),
		Publisher: publisher,
		Recorder:  recorder,
	})

	// gRPC server.
	grpcServer := grpcpresentation.NewServer(
		grpcpresentation.NewSignalGraphHandler(useCases, logger),
		grpcpresentation.ServerConfig{
			Address:     cfg.GRPCAddress(),
			TLSCertFile: cfg.GRPC.TLSCertFile,
			TLSKeyFile:  cfg.GRPC.TLSKeyFile,
			Reflection:  cfg.GRPC.Reflection,
		},
		logger,
	)

	// HTTP server.
	router := rest.NewRouter(rest.RouterConfig{
		API:     rest.NewSignalGraphHandler(useCases, logger),
		Health:  rest.NewHealthHandler(logger, map[string]string{"sessions": "memory", "events": eventsCheck}),
		Metrics: metricsHandler,
		Logger:  logger,
	})
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("signalgraph started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("server error", "error", runErr)
	}

	logger.Info("shutting down signalgraph")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("signalgraph stopped")
	return runErr
}
