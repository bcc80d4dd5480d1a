package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RangePreset is a named look-back period for provider fetches.
type RangePreset struct {
	Label string
	Days  int
}

// RangePresets lists the look-back periods offered to users.
var RangePresets = []RangePreset{
	{Label: "1M", Days: 30},
	{Label: "3M", Days: 90},
	{Label: "6M", Days: 180},
	{Label: "1Y", Days: 365},
	{Label: "2Y", Days: 730},
	{Label: "5Y", Days: 1825},
}

// ParseRange accepts a preset label ("1Y") or a positive number of days ("120").
func ParseRange(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, p := range RangePresets {
		if p.Label == s {
			return p.Days, nil
		}
	}
	days, err := strconv.Atoi(strings.TrimSuffix(s, "D"))
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid range %q", s)
	}
	return days, nil
}
