package model

import "time"

// Observation is a single close price on a calendar date.
type Observation struct {
	Time      time.Time
	Close     float64
	Volume    float64
	HasVolume bool
}

// Series holds the normalized observations of one symbol, ascending by Time.
type Series struct {
	Symbol       string
	Observations []Observation
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Observations) }

// Bar is one resampled period. Time is the start of the period.
type Bar struct {
	Time   time.Time
	Close  float64
	Volume float64
}

// Resampled is a Series bucketed to a Frequency.
type Resampled struct {
	Symbol    string
	Frequency Frequency
	Bars      []Bar
	HasVolume bool
}

// Closes returns the close prices in bar order.
func (r Resampled) Closes() []float64 {
	closes := make([]float64, len(r.Bars))
	for i, b := range r.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Span returns the first and last bar times. ok is false when there are no bars.
func (r Resampled) Span() (first, last time.Time, ok bool) {
	if len(r.Bars) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return r.Bars[0].Time, r.Bars[len(r.Bars)-1].Time, true
}
