package collector

import (
	"context"
	"errors"
	"time"

	"StockViewer/internal/model"
)

// ErrNoData is returned by a Fetcher when the provider answered with no usable bars
// or with a body it could not decode.
var ErrNoData = errors.New("provider returned no data")

// Fetcher defines the interface for fetching daily price history.
// The returned table carries at least Date and Close columns, and Volume when
// the provider reports it.
type Fetcher interface {
	FetchRange(ctx context.Context, symbol string, start, end time.Time) (*model.Table, error)
	Name() string
}
