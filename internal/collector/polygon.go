package collector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"StockViewer/internal/model"
)

// PolygonFetcher implements Fetcher using Polygon.io daily aggregates.
type PolygonFetcher struct {
	Client *polygon.Client
}

// NewPolygonFetcher creates a fetcher authenticated with apiKey.
func NewPolygonFetcher(apiKey string) *PolygonFetcher {
	return &PolygonFetcher{Client: polygon.New(apiKey)}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

func (f *PolygonFetcher) FetchRange(ctx context.Context, symbol string, start, end time.Time) (*model.Table, error) {
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithOrder(models.Asc).WithAdjusted(true)

	iter := f.Client.ListAggs(ctx, params)

	var aggs []models.Agg
	for iter.Next() {
		aggs = append(aggs, iter.Item())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("polygon list aggs: %w", err)
	}
	return aggsToTable(aggs)
}

func aggsToTable(aggs []models.Agg) (*model.Table, error) {
	if len(aggs) == 0 {
		return nil, ErrNoData
	}
	table := &model.Table{
		Columns: []string{model.ColumnDate, model.ColumnClose, model.ColumnVolume},
		Rows:    make([]model.Row, 0, len(aggs)),
	}
	for _, a := range aggs {
		table.Rows = append(table.Rows, model.Row{
			model.ColumnDate:   time.Time(a.Timestamp).UTC().Format("2006-01-02"),
			model.ColumnClose:  strconv.FormatFloat(a.Close, 'f', -1, 64),
			model.ColumnVolume: strconv.FormatFloat(a.Volume, 'f', -1, 64),
		})
	}
	return table, nil
}
