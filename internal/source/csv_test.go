package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockViewer/internal/model"
	"StockViewer/internal/pipeline"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffDate,Close,Volume\n2024-01-02,102,1000\n2024-01-01,100,900\n"
	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Close", "Date", "Volume"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, model.Row{"Date": "2024-01-02", "Close": "102", "Volume": "1000"}, table.Rows[0])

	s, err := pipeline.Normalize(table, "UPLOAD")
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Observations[0].Close)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Date,Close\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	_, err = pipeline.Normalize(table, "UPLOAD")
	assert.Equal(t, pipeline.KindNoData, pipeline.KindOf(err))
}

func TestReadCSV_Empty(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestReadCSV_MissingClose(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Date,Open\n2024-01-01,5\n"))
	require.NoError(t, err)
	_, err = pipeline.Normalize(table, "UPLOAD")
	var mc *pipeline.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "Close", mc.Column)
}

func TestReadCSV_Ragged(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Date,Close\n2024-01-01\n"))
	assert.Error(t, err)
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Close\n2024-01-01,1\n"), 0644))
	table, err := LoadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
