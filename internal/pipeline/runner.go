package pipeline

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"StockViewer/internal/model"
)

// RangeFetcher loads the last rangeDays of observations for a symbol.
// Implementations classify failures with the error types of this package.
type RangeFetcher interface {
	FetchRange(ctx context.Context, symbol string, rangeDays int, withVolume bool) (model.Series, error)
}

// Request carries every parameter of one pipeline pass.
type Request struct {
	Symbols    []string
	Frequency  model.Frequency
	RangeDays  int
	Windows    []int
	WithVolume bool
}

// Label is the display metadata handed to the presentation layer.
type Label struct {
	Symbol    string
	Frequency string
	DateRange string
}

// Result is the outcome for a single symbol. Exactly one of Series or Err is set.
type Result struct {
	Symbol   string
	Series   *model.Resampled
	Overlays []model.Overlay
	Label    Label
	Err      error
}

// OK reports whether the symbol produced a series.
func (r Result) OK() bool { return r.Err == nil && r.Series != nil }

// Kind classifies the failure, or KindNone on success.
func (r Result) Kind() Kind { return KindOf(r.Err) }

// Report collects per-symbol results in request order.
type Report struct {
	Request Request
	Results []Result
}

// Succeeded returns the successful results in request order.
func (r Report) Succeeded() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the failed results in request order.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Runner drives normalize, resample and overlay derivation for a batch of symbols.
type Runner struct {
	Fetcher RangeFetcher
}

// NewRunner creates a Runner backed by the given fetcher.
func NewRunner(f RangeFetcher) *Runner {
	return &Runner{Fetcher: f}
}

// Run processes each symbol in turn. A failing symbol is recorded and skipped.
func (r *Runner) Run(ctx context.Context, req Request) Report {
	report := Report{Request: req}
	for _, symbol := range CleanSymbols(req.Symbols) {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Symbol: symbol, Err: &FetchError{Symbol: symbol, Provider: "pipeline", Err: err}})
			continue
		}
		series, err := r.Fetcher.FetchRange(ctx, symbol, req.RangeDays, req.WithVolume)
		if err != nil {
			log.WithField("symbol", symbol).WithField("kind", KindOf(err)).Warnf("skipping symbol: %v", err)
			report.Results = append(report.Results, Result{Symbol: symbol, Err: err})
			continue
		}
		report.Results = append(report.Results, Derive(series, req))
	}
	return report
}

// RunTable runs an uploaded table through the pipeline as a single symbol.
func (r *Runner) RunTable(table *model.Table, symbol string, req Request) Result {
	required := DefaultRequired
	if req.WithVolume {
		required = append(append([]string{}, DefaultRequired...), model.ColumnVolume)
	}
	series, err := Normalize(table, symbol, required...)
	if err != nil {
		return Result{Symbol: symbol, Err: err}
	}
	return Derive(series, req)
}

// Derive resamples a normalized series and computes the requested overlays.
func Derive(series model.Series, req Request) Result {
	res := Result{Symbol: series.Symbol}
	if series.Len() == 0 {
		res.Err = &NoDataError{Symbol: series.Symbol, Reason: "series is empty"}
		return res
	}
	resampled := Resample(series, req.Frequency)
	overlays, err := MovingAverages(resampled, req.Windows)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", series.Symbol, err)
		return res
	}
	res.Series = &resampled
	res.Overlays = overlays
	res.Label = NewLabel(resampled)
	return res
}

// NewLabel builds display metadata from a resampled series.
func NewLabel(r model.Resampled) Label {
	l := Label{Symbol: r.Symbol, Frequency: r.Frequency.String()}
	if first, last, ok := r.Span(); ok {
		l.DateRange = first.Format("2006-01-02") + " to " + last.Format("2006-01-02")
	}
	return l
}

// CleanSymbols trims, upper-cases and de-duplicates symbols, dropping blanks.
func CleanSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		for _, s := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
			s = strings.ToUpper(strings.TrimSpace(s))
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
