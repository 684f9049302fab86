package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"trendScout/config"
	"trendScout/internal/adapters/logger"
	"trendScout/internal/adapters/sqlite"
	"trendScout/internal/analysis"
	"trendScout/internal/app"
	"trendScout/internal/domain"
	"trendScout/internal/utils"
)

// Offline analysis over previously stored candles, either from the SQLite
// database populated by cmd/fetch_klines or from a CSV export.
func main() {
	csvIn := flag.String("csv", "", "analyze candles from this CSV file instead of the database")
	days := flag.Int("days", 90, "how many days of stored history to analyze (database mode)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	var candles []*domain.Candlestick
	if *csvIn != "" {
		candles, err = utils.ReadCandlesFromCSV(*csvIn)
		if err != nil {
			log.Fatalf("Error reading CSV: %v", err)
		}
	} else {
		repo, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize SQLite repository: %v", err)
		}
		defer repo.Close()

		end := time.Now()
		start := end.AddDate(0, 0, -*days)
		candles, err = repo.FindCandles(ctx, cfg.Symbol, cfg.Interval, start, end)
		if err != nil {
			log.Fatalf("Error loading candles: %v", err)
		}
	}

	if len(candles) == 0 {
		log.Fatalf("No candles to analyze; run cmd/fetch_klines first or pass -csv")
	}

	ema, err := analysis.EMASeries(candles, cfg.EMAPeriod)
	if err != nil {
		log.Fatalf("Error computing EMA series: %v", err)
	}

	detector := analysis.NewDetector(cfg.TrendLineConfig(), appLogger)
	result := detector.Detect(ctx, candles, ema)

	fmt.Printf("Trend line analysis over %d candles (%s %s):\n%s",
		len(candles), cfg.Symbol, cfg.Interval, app.FormatSummary(result))
}
