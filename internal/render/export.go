package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"StockViewer/internal/pipeline"
)

// ExportCSV writes a successful result as CSV. Missing moving-average values
// are left empty.
func ExportCSV(w io.Writer, res pipeline.Result) error {
	if !res.OK() {
		return fmt.Errorf("export %s: %w", res.Symbol, res.Err)
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	header, rows := records(res, num, num, "")

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSVFile writes the result to dir and returns the file path.
func ExportCSVFile(dir string, res pipeline.Result) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	path := filepath.Join(dir, FileBase(res)+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := ExportCSV(f, res); err != nil {
		return "", err
	}
	return path, nil
}
