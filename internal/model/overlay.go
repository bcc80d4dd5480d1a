package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// StandardWindows are the moving-average windows offered to users.
var StandardWindows = []int{20, 50, 200}

// OverlayValue is one moving-average point. Valid is false until the window is full.
type OverlayValue struct {
	Time  time.Time
	Value float64
	Valid bool
}

// Overlay is a derived series aligned index-for-index with a Resampled series.
type Overlay struct {
	Window int
	Values []OverlayValue
}

// Name returns the display label, e.g. "MA20".
func (o Overlay) Name() string { return fmt.Sprintf("MA%d", o.Window) }

// ValidCount returns how many positions carry a computed value.
func (o Overlay) ValidCount() int {
	n := 0
	for _, v := range o.Values {
		if v.Valid {
			n++
		}
	}
	return n
}

// ParseWindows parses a comma-separated window list such as "20,50,200".
// The result is sorted and de-duplicated.
func ParseWindows(s string) ([]int, error) {
	seen := make(map[int]bool)
	var windows []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(part)), "MA"))
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid moving average window %q", part)
		}
		if !seen[w] {
			seen[w] = true
			windows = append(windows, w)
		}
	}
	sort.Ints(windows)
	return windows, nil
}
