package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/usecase"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/port"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/service"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/infrastructure/config"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/infrastructure/inference"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/infrastructure/messaging"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/observability"
	grpcpresentation "github.com/Abayommy/genai-payment-intent-clarifier/internal/presentation/grpc"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: "intent-clarifier",
	})

	logger.Info("starting intent-clarifier",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}
	var pipelineMetrics *observability.PipelineMetrics
	if meterProvider != nil {
		pipelineMetrics, err = observability.NewPipelineMetrics(meterProvider.Meter("intent-clarifier"))
		if err != nil {
			logger.Warn("failed to register pipeline metrics", "error", err)
		}
	}

	// Inference gateway client.
	var gateway port.InferenceClient
	if cfg.InferenceAPIKey == "" {
		logger.Warn("no inference API key configured, using stub inference client")
		gateway = inference.NewStubClient(logger)
	} else {
		gateway = inference.NewOpenAIClient(inference.Config{
			BaseURL: cfg.InferenceBaseURL,
			APIKey:  cfg.InferenceAPIKey,
			Model:   cfg.InferenceModel,
			Timeout: cfg.InferenceTimeout,
		})
	}

	// Event publisher.
	eventPublisher := messaging.NewKafkaPublisher(
		[]string{cfg.KafkaBroker},
		cfg.EventTopic,
		logger,
	)
	defer eventPublisher.Close()

	// Wire domain services.
	extractor := service.NewIntentExtractor(gateway, logger)
	analyzer := service.NewRiskAnalyzer(gateway, logger)
	formatter := service.NewSchemeFormatter()

	// Wire use cases.
	processUC := usecase.NewProcessInstruction(
		extractor, analyzer, formatter, eventPublisher, pipelineMetrics, logger,
	)

	// gRPC server.
	grpcHandler := grpcpresentation.NewIntentServiceHandler(processUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server.
	httpMux := http.NewServeMux()
	rest.NewHealthHandler(logger).RegisterRoutes(httpMux)
	rest.NewInstructionHandler(processUC, logger).RegisterRoutes(httpMux)
	if metricsHandler != nil {
		httpMux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
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

	logger.Info("intent-clarifier started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down intent-clarifier")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("intent-clarifier stopped")
}
