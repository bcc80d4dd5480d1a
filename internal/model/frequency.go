package model

import (
	"fmt"
	"strings"
	"time"
)

// Frequency selects the calendar bucket used when resampling.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

// Frequencies lists every supported frequency in display order.
var Frequencies = []Frequency{Daily, Weekly, Monthly, Yearly}

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	case Yearly:
		return "Yearly"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// ParseFrequency accepts a frequency name ("Weekly") or its short code ("W").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "d", "day":
		return Daily, nil
	case "weekly", "w", "week":
		return Weekly, nil
	case "monthly", "m", "month":
		return Monthly, nil
	case "yearly", "y", "year", "annual":
		return Yearly, nil
	}
	return Daily, fmt.Errorf("unknown frequency %q", s)
}

// BucketStart returns the start of the period containing t. Weeks start on Monday.
func (f Frequency) BucketStart(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch f {
	case Weekly:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Yearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}
