package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"trendScout/config"
	"trendScout/internal/adapters/binanceclient"
	"trendScout/internal/adapters/logger"
	"trendScout/internal/adapters/sqlite"
	"trendScout/internal/app"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Market Data Client (Binance Adapter)
	marketClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	// 4. Initialize Candle Repository (SQLite Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize SQLite repository")
		log.Fatalf("FATAL: Failed to initialize SQLite repository: %v", err)
	}
	defer repo.Close()

	// 5. Assemble and run the analysis service
	service, err := app.New(cfg, appLogger, marketClient, repo)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize analysis service")
		log.Fatalf("FATAL: Failed to initialize analysis service: %v", err)
	}

	result, err := service.RunAnalysis(ctx)
	if err != nil {
		appLogger.Error(ctx, err, "Analysis run failed")
		log.Fatalf("Analysis run failed: %v", err)
	}

	fmt.Printf("Trend line analysis for %s %s:\n%s", cfg.Symbol, cfg.Interval, app.FormatSummary(result))
}
