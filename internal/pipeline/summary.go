package pipeline

import (
	"math"

	"StockViewer/internal/model"
)

// Summary describes the close-price range of a resampled series.
type Summary struct {
	First     float64
	Last      float64
	High      float64
	Low       float64
	ChangePct float64
	Position  float64 // where Last sits between Low and High, 0.0 ~ 1.0
}

// Summarize scans the bars of r. ok is false for an empty series.
func Summarize(r model.Resampled) (s Summary, ok bool) {
	if len(r.Bars) == 0 {
		return Summary{}, false
	}
	s.High = math.Inf(-1)
	s.Low = math.Inf(1)
	for _, b := range r.Bars {
		if b.Close > s.High {
			s.High = b.Close
		}
		if b.Close < s.Low {
			s.Low = b.Close
		}
	}
	s.First = r.Bars[0].Close
	s.Last = r.Bars[len(r.Bars)-1].Close
	if s.First != 0 {
		s.ChangePct = (s.Last - s.First) / s.First * 100
	}
	s.Position = 0.5
	if s.High > s.Low {
		s.Position = (s.Last - s.Low) / (s.High - s.Low)
	}
	return s, true
}
