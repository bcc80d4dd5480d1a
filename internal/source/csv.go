package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"StockViewer/internal/model"
)

// ReadCSV loads a CSV document with a header row into a Table.
// Header names are kept verbatim apart from a leading byte-order mark.
func ReadCSV(r io.Reader) (*model.Table, error) {
	records, err := gocsv.CSVToMaps(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	table := &model.Table{Rows: make([]model.Row, 0, len(records))}
	for _, rec := range records {
		row := make(model.Row, len(rec))
		for k, v := range rec {
			row[strings.TrimPrefix(k, "\ufeff")] = v
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) > 0 {
		for k := range table.Rows[0] {
			table.Columns = append(table.Columns, k)
		}
		sort.Strings(table.Columns)
	}
	return table, nil
}

// LoadCSVFile opens path and reads it with ReadCSV.
func LoadCSVFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}
