package collector

import (
	"context"
	"strconv"
	"time"

	"StockViewer/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price  float64
	Tables map[string]*model.Table // per-symbol fixture overriding generated data
	Errors map[string]error        // per-symbol failure
	Delay  time.Duration           // simulated latency, honours ctx
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchRange(ctx context.Context, symbol string, start, end time.Time) (*model.Table, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if err, ok := m.Errors[symbol]; ok {
		return nil, err
	}
	if t, ok := m.Tables[symbol]; ok {
		if t.Len() == 0 {
			return nil, ErrNoData
		}
		return t, nil
	}
	return generateMockTable(m.Price, start, end), nil
}

// generateMockTable emits one weekday row per day in [start, end] with a gentle uptrend.
func generateMockTable(basePrice float64, start, end time.Time) *model.Table {
	if basePrice == 0 {
		basePrice = 100
	}
	table := &model.Table{Columns: []string{model.ColumnDate, model.ColumnClose, model.ColumnVolume}}
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(i)*0.001)
		table.Rows = append(table.Rows, model.Row{
			model.ColumnDate:   d.Format("2006-01-02"),
			model.ColumnClose:  strconv.FormatFloat(p, 'f', 4, 64),
			model.ColumnVolume: "1000000",
		})
		i++
	}
	return table
}
