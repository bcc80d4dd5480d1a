package pipeline

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a per-symbol pipeline failure.
type Kind int

const (
	KindNone Kind = iota
	KindMissingColumn
	KindNoData
	KindFetch
	KindParse
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingColumn:
		return "missing_column"
	case KindNoData:
		return "no_data"
	case KindFetch:
		return "fetch"
	case KindParse:
		return "parse"
	default:
		return "other"
	}
}

// ErrInvalidWindow is returned by MovingAverage for a non-positive window.
var ErrInvalidWindow = errors.New("moving average window must be positive")

// MissingColumnError reports a required column absent from the input.
type MissingColumnError struct {
	Symbol string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", label(e.Symbol), e.Column)
}

// NoDataError reports that a source yielded zero usable rows.
type NoDataError struct {
	Symbol string
	Reason string
}

func (e *NoDataError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: no data", label(e.Symbol))
	}
	return fmt.Sprintf("%s: no data: %s", label(e.Symbol), e.Reason)
}

// FetchError reports a failed or timed-out provider call.
type FetchError struct {
	Symbol   string
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetch from %s failed: %v", label(e.Symbol), e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Timeout reports whether the fetch was cut off by a deadline.
func (e *FetchError) Timeout() bool { return errors.Is(e.Err, context.DeadlineExceeded) }

// ParseError reports a date or numeric cell that could not be parsed.
// Row is zero-based over data rows.
type ParseError struct {
	Symbol string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: cannot parse %s %q: %v", label(e.Symbol), e.Row+1, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		mc *MissingColumnError
		nd *NoDataError
		fe *FetchError
		pe *ParseError
	)
	switch {
	case errors.As(err, &mc):
		return KindMissingColumn
	case errors.As(err, &nd):
		return KindNoData
	case errors.As(err, &fe):
		return KindFetch
	case errors.As(err, &pe):
		return KindParse
	}
	return KindOther
}

func label(symbol string) string {
	if symbol == "" {
		return "input"
	}
	return symbol
}
