package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockViewer/internal/model"
)

func series(symbol string, pairs ...any) model.Series {
	s := model.Series{Symbol: symbol}
	for i := 0; i < len(pairs); i += 2 {
		s.Observations = append(s.Observations, model.Observation{Time: day(pairs[i].(string)), Close: pairs[i+1].(float64)})
	}
	return s
}

func TestResample_WeeklyScenario(t *testing.T) {
	in := table(dateClose,
		[]string{"2024-01-01", "100"},
		[]string{"2024-01-02", "102"},
		[]string{"2024-01-08", "110"},
	)
	s, err := Normalize(in, "AAPL")
	require.NoError(t, err)

	r := Resample(s, model.Weekly)
	require.Len(t, r.Bars, 2)
	assert.Equal(t, day("2024-01-01"), r.Bars[0].Time)
	assert.Equal(t, 102.0, r.Bars[0].Close)
	assert.Equal(t, day("2024-01-08"), r.Bars[1].Time)
	assert.Equal(t, 110.0, r.Bars[1].Close)
	assert.Equal(t, model.Weekly, r.Frequency)
}

func TestResample_SundayBelongsToPreviousWeek(t *testing.T) {
	r := Resample(series("X", "2024-01-03", 1.0, "2024-01-07", 2.0, "2024-01-08", 3.0), model.Weekly)
	require.Len(t, r.Bars, 2)
	assert.Equal(t, 2.0, r.Bars[0].Close)
}

func TestResample_MonthlyAndYearly(t *testing.T) {
	s := series("X",
		"2023-12-29", 1.0,
		"2024-01-02", 2.0,
		"2024-01-31", 3.0,
		"2024-03-15", 4.0, // February has no observations
	)
	m := Resample(s, model.Monthly)
	require.Len(t, m.Bars, 3)
	assert.Equal(t, day("2023-12-01"), m.Bars[0].Time)
	assert.Equal(t, day("2024-01-01"), m.Bars[1].Time)
	assert.Equal(t, 3.0, m.Bars[1].Close)
	assert.Equal(t, day("2024-03-01"), m.Bars[2].Time)

	y := Resample(s, model.Yearly)
	require.Len(t, y.Bars, 2)
	assert.Equal(t, day("2023-01-01"), y.Bars[0].Time)
	assert.Equal(t, 4.0, y.Bars[1].Close)
}

func TestResample_VolumeSummed(t *testing.T) {
	s := model.Series{Symbol: "X", Observations: []model.Observation{
		{Time: day("2024-01-01"), Close: 1, Volume: 100, HasVolume: true},
		{Time: day("2024-01-03"), Close: 2, Volume: 250, HasVolume: true},
		{Time: day("2024-01-09"), Close: 3, Volume: 50, HasVolume: true},
	}}
	r := Resample(s, model.Weekly)
	require.True(t, r.HasVolume)
	require.Len(t, r.Bars, 2)
	assert.Equal(t, 350.0, r.Bars[0].Volume)
	assert.Equal(t, 50.0, r.Bars[1].Volume)
}

func TestResample_Empty(t *testing.T) {
	r := Resample(model.Series{Symbol: "X"}, model.Monthly)
	assert.Empty(t, r.Bars)
	assert.Equal(t, "X", r.Symbol)
}

func TestResample_StrictlyAscending(t *testing.T) {
	s := model.Series{Symbol: "X"}
	start := day("2022-06-01")
	for i := 0; i < 800; i += 3 {
		s.Observations = append(s.Observations, model.Observation{Time: start.AddDate(0, 0, i), Close: float64(i)})
	}
	for _, f := range model.Frequencies {
		r := Resample(s, f)
		for i := 1; i < len(r.Bars); i++ {
			assert.True(t, r.Bars[i-1].Time.Before(r.Bars[i].Time), "%s bar %d", f, i)
		}
	}
}

func TestResample_DailyIdempotent(t *testing.T) {
	s := series("X", "2024-01-01", 1.0, "2024-01-02", 2.0, "2024-01-05", 5.0, "2024-02-01", 7.0)
	once := Resample(s, model.Daily)
	twice := Resample(AsSeries(once), model.Daily)
	assert.Equal(t, once, twice)
}
