package pipeline

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockViewer/internal/model"
)

// DefaultRequired are the columns an upload must carry.
var DefaultRequired = []string{model.ColumnDate, model.ColumnClose}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
}

// Normalize converts raw rows into a Series sorted ascending by date.
// Rows sharing a date resolve to the one appearing last in the input.
// required lists columns that must be present; DefaultRequired is used when empty.
// The Date column is always required.
func Normalize(table *model.Table, symbol string, required ...string) (model.Series, error) {
	if len(required) == 0 {
		required = DefaultRequired
	}
	series := model.Series{Symbol: symbol}

	if table.Len() == 0 {
		return series, &NoDataError{Symbol: symbol, Reason: "input has no rows"}
	}
	for _, col := range append([]string{model.ColumnDate}, required...) {
		if !table.HasColumn(col) {
			return series, &MissingColumnError{Symbol: symbol, Column: col}
		}
	}
	trackVolume := table.HasColumn(model.ColumnVolume)

	obs := make([]model.Observation, 0, len(table.Rows))
	for i, row := range table.Rows {
		raw := row[model.ColumnDate]
		t, err := ParseDate(raw)
		if err != nil {
			return series, &ParseError{Symbol: symbol, Row: i, Column: model.ColumnDate, Value: raw, Err: err}
		}
		raw = row[model.ColumnClose]
		closePrice, err := parseNumber(raw)
		if err != nil {
			return series, &ParseError{Symbol: symbol, Row: i, Column: model.ColumnClose, Value: raw, Err: err}
		}
		o := model.Observation{Time: t, Close: closePrice}
		if trackVolume {
			raw = strings.TrimSpace(row[model.ColumnVolume])
			if raw != "" {
				v, err := parseNumber(raw)
				if err == nil && v < 0 {
					err = errors.New("volume must be non-negative")
				}
				if err != nil {
					return series, &ParseError{Symbol: symbol, Row: i, Column: model.ColumnVolume, Value: raw, Err: err}
				}
				o.Volume = v
				o.HasVolume = true
			}
		}
		obs = append(obs, o)
	}

	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Time.Before(obs[j].Time) })

	// Stable sort keeps input order among equal dates, so the last one wins.
	out := obs[:0]
	for _, o := range obs {
		if n := len(out); n > 0 && out[n-1].Time.Equal(o.Time) {
			out[n-1] = o
			continue
		}
		out = append(out, o)
	}
	series.Observations = out
	return series, nil
}

// ParseDate parses a calendar date in one of the accepted layouts.
// Any time-of-day is discarded; the result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}
