package pipeline

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"StockViewer/internal/model"
)

// MovingAverage computes the simple trailing mean of closes over window bars.
// The first window-1 positions are marked invalid.
func MovingAverage(r model.Resampled, window int) (model.Overlay, error) {
	if window <= 0 {
		return model.Overlay{}, ErrInvalidWindow
	}
	closes := r.Closes()
	overlay := model.Overlay{Window: window, Values: make([]model.OverlayValue, len(closes))}
	for i := range closes {
		overlay.Values[i].Time = r.Bars[i].Time
		if i+1 < window {
			continue
		}
		mean, err := stats.Mean(closes[i+1-window : i+1])
		if err != nil {
			return model.Overlay{}, fmt.Errorf("MA%d at %d: %w", window, i, err)
		}
		overlay.Values[i].Value = mean
		overlay.Values[i].Valid = true
	}
	return overlay, nil
}

// MovingAverages computes one overlay per window, in the given order.
func MovingAverages(r model.Resampled, windows []int) ([]model.Overlay, error) {
	overlays := make([]model.Overlay, 0, len(windows))
	for _, w := range windows {
		o, err := MovingAverage(r, w)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, o)
	}
	return overlays, nil
}
