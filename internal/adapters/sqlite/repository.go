package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"trendScout/internal/domain"
	"trendScout/internal/ports"
)

// Repository implements the ports.CandleRepository interface using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/trendscout.db" // Default path
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w: %w", dbPath, ports.ErrDBConnection, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w: %w", dbPath, ports.ErrDBConnection, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite serializes writers; the Go driver behaves best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cfg.Logger.Info(context.Background(), "SQLite database connection established", map[string]interface{}{"path": dbPath})

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	return repo, nil
}

// initializeSchema creates tables if they don't exist.
func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS candles (
		symbol     TEXT    NOT NULL,
		interval   TEXT    NOT NULL,
		open_time  INTEGER NOT NULL,
		close_time INTEGER NOT NULL,
		open       REAL    NOT NULL,
		high       REAL    NOT NULL,
		low        REAL    NOT NULL,
		close      REAL    NOT NULL,
		volume     REAL    NOT NULL,
		PRIMARY KEY (symbol, interval, open_time)
	);
	CREATE INDEX IF NOT EXISTS idx_candles_open_time ON candles (symbol, interval, open_time);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrQueryFailed, err)
	}
	return nil
}

// SaveCandles upserts a batch of candlesticks inside a single transaction.
func (r *Repository) SaveCandles(ctx context.Context, candles []*domain.Candlestick) error {
	if len(candles) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w: %w", ports.ErrUpdateFailed, err)
	}
	defer tx.Rollback() // No-op if committed

	const query = `
	INSERT OR REPLACE INTO candles (symbol, interval, open_time, close_time, open, high, low, close, volume)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w: %w", ports.ErrUpdateFailed, err)
	}
	defer stmt.Close()

	for _, c := range candles {
		_, err := stmt.ExecContext(ctx,
			c.Symbol, c.Interval, c.OpenTime.UnixMilli(), c.CloseTime.UnixMilli(),
			c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			return fmt.Errorf("failed to insert candle at %s: %w: %w", c.OpenTime, ports.ErrUpdateFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit candles: %w: %w", ports.ErrUpdateFailed, err)
	}

	r.logger.Debug(ctx, "Candles saved", map[string]interface{}{"count": len(candles)})
	return nil
}

// FindCandles retrieves candlesticks whose open time falls within
// [start, end], ordered ascending by open time.
func (r *Repository) FindCandles(ctx context.Context, symbol, interval string, start, end time.Time) ([]*domain.Candlestick, error) {
	const query = `
	SELECT symbol, interval, open_time, close_time, open, high, low, close, volume
	FROM candles
	WHERE symbol = ? AND interval = ? AND open_time BETWEEN ? AND ?
	ORDER BY open_time ASC`

	rows, err := r.db.QueryContext(ctx, query, symbol, interval, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to query candles: %w: %w", ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	var candles []*domain.Candlestick
	for rows.Next() {
		var c domain.Candlestick
		var openTime, closeTime int64
		if err := rows.Scan(&c.Symbol, &c.Interval, &openTime, &closeTime,
			&c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan candle row: %w: %w", ports.ErrQueryFailed, err)
		}
		c.OpenTime = time.UnixMilli(openTime)
		c.CloseTime = time.UnixMilli(closeTime)
		candles = append(candles, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("candle row iteration failed: %w: %w", ports.ErrQueryFailed, err)
	}

	return candles, nil
}

// CountCandles returns the number of stored bars for a symbol/interval.
func (r *Repository) CountCandles(ctx context.Context, symbol, interval string) (int, error) {
	const query = `SELECT COUNT(*) FROM candles WHERE symbol = ? AND interval = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, symbol, interval).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candles: %w: %w", ports.ErrQueryFailed, err)
	}
	return count, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	r.logger.Info(context.Background(), "Closing SQLite database connection")
	return r.db.Close()
}
