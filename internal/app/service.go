package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trendScout/config"
	"trendScout/internal/analysis"
	"trendScout/internal/domain"
	"trendScout/internal/ports"
)

// ErrNoCandles is returned when an analysis run has no candle data to work on.
var ErrNoCandles = errors.New("no candle data available for analysis")

// Service wires market data, storage, and the analysis engine together.
type Service struct {
	cfg      *config.Config
	logger   ports.Logger
	market   ports.MarketDataClient
	repo     ports.CandleRepository
	detector *analysis.Detector
}

// New creates the application service. All dependencies are required.
func New(cfg *config.Config, logger ports.Logger, market ports.MarketDataClient, repo ports.CandleRepository) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if market == nil {
		return nil, errors.New("market data client is required")
	}
	if repo == nil {
		return nil, errors.New("candle repository is required")
	}

	return &Service{
		cfg:      cfg,
		logger:   logger,
		market:   market,
		repo:     repo,
		detector: analysis.NewDetector(cfg.TrendLineConfig(), logger),
	}, nil
}

// RunAnalysis fetches the most recent candles from the exchange, persists
// them, and runs trend line detection over the series.
func (s *Service) RunAnalysis(ctx context.Context) (*domain.AnalysisResult, error) {
	candles, err := s.market.GetKlines(ctx, s.cfg.Symbol, s.cfg.Interval, s.cfg.HistoryBars)
	if err != nil {
		return nil, fmt.Errorf("fetching klines for %s %s: %w", s.cfg.Symbol, s.cfg.Interval, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: exchange returned no bars for %s %s", ErrNoCandles, s.cfg.Symbol, s.cfg.Interval)
	}

	// Analysis does not depend on storage; a failed save is logged, not fatal.
	if err := s.repo.SaveCandles(ctx, candles); err != nil {
		s.logger.Warn(ctx, "Failed to persist fetched candles", map[string]interface{}{
			"symbol": s.cfg.Symbol, "interval": s.cfg.Interval, "error": err.Error(),
		})
	}

	return s.analyze(ctx, candles)
}

// AnalyzeStored runs trend line detection over candles previously saved to
// the repository, without touching the exchange.
func (s *Service) AnalyzeStored(ctx context.Context, start, end time.Time) (*domain.AnalysisResult, error) {
	candles, err := s.repo.FindCandles(ctx, s.cfg.Symbol, s.cfg.Interval, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading stored candles for %s %s: %w", s.cfg.Symbol, s.cfg.Interval, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: no stored bars for %s %s in range", ErrNoCandles, s.cfg.Symbol, s.cfg.Interval)
	}

	return s.analyze(ctx, candles)
}

func (s *Service) analyze(ctx context.Context, candles []*domain.Candlestick) (*domain.AnalysisResult, error) {
	ema, err := analysis.EMASeries(candles, s.cfg.EMAPeriod)
	if err != nil {
		return nil, fmt.Errorf("computing EMA series: %w", err)
	}

	result := s.detector.Detect(ctx, candles, ema)

	s.logger.Info(ctx, "Analysis run complete", map[string]interface{}{
		"symbol":          s.cfg.Symbol,
		"interval":        s.cfg.Interval,
		"candles":         len(candles),
		"swingPoints":     len(result.SwingPoints),
		"supportLines":    len(result.SupportLines),
		"resistanceLines": len(result.ResistanceLines),
	})

	return result, nil
}
