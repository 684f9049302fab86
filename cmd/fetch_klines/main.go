package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"trendScout/config"
	"trendScout/internal/adapters/binanceclient"
	"trendScout/internal/adapters/logger"
	"trendScout/internal/adapters/sqlite"
	"trendScout/internal/utils"
)

func main() {
	days := flag.Int("days", 90, "how many days of history to fetch")
	csvOut := flag.String("csv", "", "optional CSV file to export the fetched candles to")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	// 3. Initialize Market Data Client (Binance Adapter)
	marketClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -*days)

	fmt.Printf("Fetching klines for %s %s from %s to %s...\n", cfg.Symbol, cfg.Interval, start, end)
	candles, err := marketClient.GetKlinesRange(ctx, cfg.Symbol, cfg.Interval, start, end)
	if err != nil {
		appLogger.Error(ctx, err, "Error fetching klines")
		log.Fatalf("Error fetching klines: %v", err)
	}
	fmt.Printf("Fetched %d candles.\n", len(candles))

	// 4. Persist to SQLite
	repo, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize SQLite repository: %v", err)
	}
	defer repo.Close()

	if err := repo.SaveCandles(ctx, candles); err != nil {
		appLogger.Error(ctx, err, "Error saving candles")
		log.Fatalf("Error saving candles: %v", err)
	}

	total, err := repo.CountCandles(ctx, cfg.Symbol, cfg.Interval)
	if err != nil {
		log.Fatalf("Error counting stored candles: %v", err)
	}
	fmt.Printf("Stored %d candles (%d total for %s %s).\n", len(candles), total, cfg.Symbol, cfg.Interval)

	// 5. Optional CSV export
	if *csvOut != "" {
		if err := utils.WriteCandlesToCSV(candles, *csvOut); err != nil {
			log.Fatalf("Error writing CSV: %v", err)
		}
		fmt.Printf("Exported candles to %s.\n", *csvOut)
	}
}
