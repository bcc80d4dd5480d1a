package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	tests := map[string]Frequency{
		"Daily": Daily, "d": Daily, "WEEKLY": Weekly, "W": Weekly,
		"monthly": Monthly, "M": Monthly, "Yearly": Yearly, " y ": Yearly,
	}
	for in, want := range tests {
		got, err := ParseFrequency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFrequency("hourly")
	assert.Error(t, err)
}

func TestFrequency_BucketStart(t *testing.T) {
	sun := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC) // Sunday
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Weekly.BucketStart(sun))
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, Weekly.BucketStart(mon))
	// ISO week spanning a year boundary.
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), Weekly.BucketStart(jan1))

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Monthly.BucketStart(sun))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Yearly.BucketStart(sun))
	assert.Equal(t, sun, Daily.BucketStart(sun.Add(15*time.Hour)))
}

func TestFrequency_String(t *testing.T) {
	names := []string{}
	for _, f := range Frequencies {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{"Daily", "Weekly", "Monthly", "Yearly"}, names)
	assert.Equal(t, "Frequency(9)", Frequency(9).String())
}

func TestParseWindows(t *testing.T) {
	w, err := ParseWindows("200, ma20,50,20")
	require.NoError(t, err)
	assert.Equal(t, []int{20, 50, 200}, w)

	_, err = ParseWindows("20,abc")
	assert.Error(t, err)
	_, err = ParseWindows("0")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	for in, want := range map[string]int{"1M": 30, "1y": 365, "5Y": 1825, "120": 120, "45d": 45} {
		got, err := ParseRange(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRange("-3")
	assert.Error(t, err)
}

func TestTable_HasColumn(t *testing.T) {
	var nilTable *Table
	assert.False(t, nilTable.HasColumn("Date"))
	assert.Equal(t, 0, nilTable.Len())

	tbl := &Table{Columns: []string{"Date", "Close"}}
	assert.True(t, tbl.HasColumn("Close"))
	assert.False(t, tbl.HasColumn("close"))
}
