package collector

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"StockViewer/internal/model"
	"StockViewer/internal/pipeline"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 30 * time.Second

// Collector fetches provider data for a look-back range and normalizes it.
type Collector struct {
	Fetcher Fetcher
	Timeout time.Duration
	Now     func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Collector{Fetcher: fetcher, Timeout: timeout, Now: time.Now}
}

// Window returns the [today-rangeDays, today] date pair for a fetch.
func (c *Collector) Window(rangeDays int) (start, end time.Time) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	y, m, d := now().UTC().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -rangeDays), end
}

// FetchRange fetches and normalizes the last rangeDays of data for symbol.
// Provider failures come back as *pipeline.FetchError, empty or malformed
// responses as *pipeline.NoDataError.
func (c *Collector) FetchRange(ctx context.Context, symbol string, rangeDays int, withVolume bool) (model.Series, error) {
	empty := model.Series{Symbol: symbol}
	if rangeDays <= 0 {
		return empty, &pipeline.NoDataError{Symbol: symbol, Reason: "empty date range"}
	}
	start, end := c.Window(rangeDays)

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.WithFields(log.Fields{
		"symbol":   symbol,
		"provider": c.Fetcher.Name(),
		"start":    start.Format("2006-01-02"),
		"end":      end.Format("2006-01-02"),
	}).Debug("fetching range")

	table, err := c.Fetcher.FetchRange(fetchCtx, symbol, start, end)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return empty, &pipeline.NoDataError{Symbol: symbol, Reason: err.Error()}
		}
		return empty, &pipeline.FetchError{Symbol: symbol, Provider: c.Fetcher.Name(), Err: err}
	}
	if table.Len() == 0 {
		return empty, &pipeline.NoDataError{Symbol: symbol, Reason: "provider returned no rows"}
	}

	required := []string{model.ColumnClose}
	if withVolume {
		required = append(required, model.ColumnVolume)
	}
	series, err := pipeline.Normalize(table, symbol, required...)
	if err != nil {
		var pe *pipeline.ParseError
		if errors.As(err, &pe) {
			// A bad cell from a provider is a malformed response.
			return empty, &pipeline.NoDataError{Symbol: symbol, Reason: err.Error()}
		}
		return empty, err
	}
	return series, nil
}
