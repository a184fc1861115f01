package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finmail-classifier/config"
	_ "finmail-classifier/docs" // Swagger docs
	classificationHTTP "finmail-classifier/internal/classification/delivery/http"
	classificationUC "finmail-classifier/internal/classification/usecase"
	"finmail-classifier/internal/httpserver"
	"finmail-classifier/pkg/groq"
	"finmail-classifier/pkg/llmprovider"
	"finmail-classifier/pkg/log"
)

// @title       FinMail AI Classifier API
// @description Classifies corporate emails as Produtivo/Improdutivo and suggests a reply, with model fallback over Groq.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FinMail AI Classifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Completion provider and fallback chain
	groqClient, err := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Timeout: cfg.Groq.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Groq client: ", err)
		os.Exit(1)
	}

	llmManager := llmprovider.NewManager(groqClient, &llmprovider.Config{
		Models:          cfg.LLM.Models,
		MaxAttempts:     cfg.LLM.RetryAttempts,
		BaseDelay:       cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "Model fallback chain: %v (attempts=%d, base_delay=%s)",
		llmManager.Models(), cfg.LLM.RetryAttempts, cfg.LLM.RetryDelay)

	// 4. Classification domain
	classificationUseCase := classificationUC.New(logger, llmManager, classificationUC.Config{
		Temperature: cfg.LLM.Temperature,
		Provider:    groqClient.Name(),
	})
	classificationHandler := classificationHTTP.New(logger, classificationUseCase)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		ShutdownTimeout:       cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:        cfg.CORS.AllowedOrigins,
		RequestsPerMin:        cfg.RateLimit.RequestsPerMin,
		DistDir:               cfg.Frontend.DistDir,
		ClassificationHandler: classificationHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
