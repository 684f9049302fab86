package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"trendScout/internal/domain"
)

var csvHeader = []string{"open_time", "close_time", "symbol", "interval", "open", "high", "low", "close", "volume"}

// WriteCandlesToCSV exports candlesticks to a CSV file.
func WriteCandlesToCSV(candles []*domain.Candlestick, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(csvHeader)

	for _, c := range candles {
		writer.Write([]string{
			c.OpenTime.Format(time.RFC3339),
			c.CloseTime.Format(time.RFC3339),
			c.Symbol,
			c.Interval,
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
			strconv.FormatFloat(c.Volume, 'f', -1, 64),
		})
	}
	return writer.Error()
}

// ReadCandlesFromCSV loads candlesticks from a CSV file written by
// WriteCandlesToCSV. Rows keep file order, which is ascending by open time
// for exported data.
func ReadCandlesFromCSV(filename string) ([]*domain.Candlestick, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip the header row
	candles := make([]*domain.Candlestick, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(rec))
		}
		candle, err := parseCandleRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func parseCandleRecord(rec []string) (*domain.Candlestick, error) {
	openTime, err := time.Parse(time.RFC3339, rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing open_time '%s': %w", rec[0], err)
	}
	closeTime, err := time.Parse(time.RFC3339, rec[1])
	if err != nil {
		return nil, fmt.Errorf("parsing close_time '%s': %w", rec[1], err)
	}

	prices := make([]float64, 5)
	for i, field := range []string{"open", "high", "low", "close", "volume"} {
		v, err := strconv.ParseFloat(rec[4+i], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s '%s': %w", field, rec[4+i], err)
		}
		prices[i] = v
	}

	return &domain.Candlestick{
		OpenTime:  openTime,
		CloseTime: closeTime,
		Symbol:    rec[2],
		Interval:  rec[3],
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    prices[4],
	}, nil
}
