package pipeline

import "StockViewer/internal/model"

// Resample buckets a normalized series by calendar period. Each bar takes the
// last close in its period and the summed volume. Periods without observations
// produce no bar.
func Resample(series model.Series, freq model.Frequency) model.Resampled {
	out := model.Resampled{Symbol: series.Symbol, Frequency: freq}
	for _, o := range series.Observations {
		if o.HasVolume {
			out.HasVolume = true
		}
		start := freq.BucketStart(o.Time)
		if n := len(out.Bars); n > 0 && out.Bars[n-1].Time.Equal(start) {
			bar := &out.Bars[n-1]
			bar.Close = o.Close
			bar.Volume += o.Volume
			continue
		}
		out.Bars = append(out.Bars, model.Bar{Time: start, Close: o.Close, Volume: o.Volume})
	}
	return out
}

// AsSeries turns resampled bars back into a series, one observation per bar.
func AsSeries(r model.Resampled) model.Series {
	s := model.Series{Symbol: r.Symbol, Observations: make([]model.Observation, len(r.Bars))}
	for i, b := range r.Bars {
		s.Observations[i] = model.Observation{Time: b.Time, Close: b.Close, Volume: b.Volume, HasVolume: r.HasVolume}
	}
	return s
}
