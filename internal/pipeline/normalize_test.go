package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockViewer/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func table(cols []string, rows ...[]string) *model.Table {
	t := &model.Table{Columns: cols}
	for _, r := range rows {
		row := model.Row{}
		for i, c := range cols {
			row[c] = r[i]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

var dateClose = []string{"Date", "Close"}

func TestNormalize_SortsAscending(t *testing.T) {
	in := table(dateClose,
		[]string{"2024-01-03", "103"},
		[]string{"2024-01-01", "101"},
		[]string{"2024-01-02", "102"},
	)
	s, err := Normalize(in, "AAPL")
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, day("2024-01-01"), s.Observations[0].Time)
	assert.Equal(t, day("2024-01-03"), s.Observations[2].Time)
	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.Observations[i-1].Time.Before(s.Observations[i].Time))
	}
}

func TestNormalize_LastValueWins(t *testing.T) {
	in := table(dateClose,
		[]string{"2024-01-02", "50"},
		[]string{"2024-01-01", "10"},
		[]string{"2024-01-02", "60"},
	)
	s, err := Normalize(in, "X")
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 60.0, s.Observations[1].Close)
}

func TestNormalize_SameDateDifferentTimeOfDay(t *testing.T) {
	in := table(dateClose,
		[]string{"2024-01-02 09:30:00", "1"},
		[]string{"2024-01-02 16:00:00", "2"},
	)
	s, err := Normalize(in, "X")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2.0, s.Observations[0].Close)
	assert.Equal(t, day("2024-01-02"), s.Observations[0].Time)
}

func TestNormalize_MissingColumn(t *testing.T) {
	tests := []struct {
		name     string
		cols     []string
		required []string
		want     string
	}{
		{"no close", []string{"Date", "Open"}, nil, "Close"},
		{"no date", []string{"Close"}, nil, "Date"},
		{"lowercase close", []string{"Date", "close"}, nil, "Close"},
		{"volume requested", []string{"Date", "Close"}, []string{"Close", "Volume"}, "Volume"},
		{"date always required", []string{"Close", "Volume"}, []string{"Close", "Volume"}, "Date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := make([]string, len(tt.cols))
			for i := range row {
				row[i] = "1"
			}
			_, err := Normalize(table(tt.cols, row), "X", tt.required...)
			var mc *MissingColumnError
			require.ErrorAs(t, err, &mc)
			assert.Equal(t, tt.want, mc.Column)
			assert.Equal(t, KindMissingColumn, KindOf(err))
		})
	}
}

func TestNormalize_NoRows(t *testing.T) {
	_, err := Normalize(&model.Table{Columns: dateClose}, "X")
	assert.Equal(t, KindNoData, KindOf(err))

	_, err = Normalize(nil, "X")
	assert.Equal(t, KindNoData, KindOf(err))
}

func TestNormalize_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		cols   []string
		row    []string
		column string
	}{
		{"bad date", dateClose, []string{"yesterday", "1"}, "Date"},
		{"bad close", dateClose, []string{"2024-01-01", "abc"}, "Close"},
		{"empty close", dateClose, []string{"2024-01-01", ""}, "Close"},
		{"nan close", dateClose, []string{"2024-01-01", "NaN"}, "Close"},
		{"negative volume", []string{"Date", "Close", "Volume"}, []string{"2024-01-01", "1", "-5"}, "Volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(table(tt.cols, []string{"2024-01-01", "1", "1"}[:len(tt.cols)], tt.row), "X")
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.column, pe.Column)
			assert.Equal(t, 1, pe.Row)
			assert.Equal(t, KindParse, KindOf(err))
		})
	}
}

func TestNormalize_Volume(t *testing.T) {
	in := table([]string{"Date", "Close", "Volume"},
		[]string{"2024-01-01", "$1,234.50", "1,000"},
		[]string{"2024-01-02", "10", ""},
	)
	s, err := Normalize(in, "X")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, s.Observations[0].Close)
	assert.True(t, s.Observations[0].HasVolume)
	assert.Equal(t, 1000.0, s.Observations[0].Volume)
	assert.False(t, s.Observations[1].HasVolume)
}

func TestParseDate_Layouts(t *testing.T) {
	for _, in := range []string{"2024-03-05", "2024/03/05", "03/05/2024", "2024-03-05 10:00:00", "2024-03-05T10:00:00Z"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, day("2024-03-05"), got, in)
	}
}
