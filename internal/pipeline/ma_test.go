package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockViewer/internal/model"
)

func constant(n int, v float64) model.Resampled {
	r := model.Resampled{Symbol: "X", Frequency: model.Daily}
	start := day("2024-01-01")
	for i := 0; i < n; i++ {
		r.Bars = append(r.Bars, model.Bar{Time: start.AddDate(0, 0, i), Close: v})
	}
	return r
}

func TestMovingAverage_ConstantSeries(t *testing.T) {
	o, err := MovingAverage(constant(25, 50), 20)
	require.NoError(t, err)
	require.Len(t, o.Values, 25)
	for i := 0; i <= 18; i++ {
		assert.False(t, o.Values[i].Valid, "position %d", i)
	}
	for i := 19; i < 25; i++ {
		assert.True(t, o.Values[i].Valid, "position %d", i)
		assert.Equal(t, 50.0, o.Values[i].Value)
	}
	assert.Equal(t, "MA20", o.Name())
}

func TestMovingAverage_ValidCounts(t *testing.T) {
	for _, w := range model.StandardWindows {
		for _, n := range []int{0, 1, w - 1, w, w + 7, 3 * w} {
			o, err := MovingAverage(constant(n, 1), w)
			require.NoError(t, err)
			assert.Len(t, o.Values, n)
			want := 0
			if n >= w {
				want = n - w + 1
			}
			assert.Equal(t, want, o.ValidCount(), "window %d length %d", w, n)
		}
	}
}

func TestMovingAverage_TrailingMean(t *testing.T) {
	r := model.Resampled{Bars: []model.Bar{{Close: 1}, {Close: 2}, {Close: 3}, {Close: 4}}}
	o, err := MovingAverage(r, 2)
	require.NoError(t, err)
	assert.False(t, o.Values[0].Valid)
	assert.InDelta(t, 1.5, o.Values[1].Value, 1e-9)
	assert.InDelta(t, 2.5, o.Values[2].Value, 1e-9)
	assert.InDelta(t, 3.5, o.Values[3].Value, 1e-9)
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	_, err := MovingAverage(constant(5, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = MovingAverages(constant(5, 1), []int{20, -1})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
