package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"StockViewer/internal/pipeline"
)

const noValue = "-"

// TableOptions controls terminal table output.
type TableOptions struct {
	Last int // show only the trailing N rows; 0 shows all
}

// Table writes a successful result as an aligned text table.
func Table(w io.Writer, res pipeline.Result, opts TableOptions) error {
	if !res.OK() {
		return fmt.Errorf("table %s: %w", res.Symbol, res.Err)
	}
	p := message.NewPrinter(language.English)
	price := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	volume := func(v float64) string { return p.Sprintf("%d", int64(v)) }
	header, rows := records(res, price, volume, noValue)
	if opts.Last > 0 && len(rows) > opts.Last {
		rows = rows[len(rows)-opts.Last:]
	}

	fmt.Fprintf(w, "%s\n", Title(res.Label))
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	if sum, ok := pipeline.Summarize(*res.Series); ok {
		table.SetCaption(true, fmt.Sprintf("High %.2f | Low %.2f | Last %.2f (%+.1f%%)", sum.High, sum.Low, sum.Last, sum.ChangePct))
	}
	table.Render()
	return nil
}

// records flattens a result into a header and string rows shared by the table
// and CSV renderers.
func records(res pipeline.Result, price, volume func(float64) string, missing string) ([]string, [][]string) {
	header := []string{"Date", "Close"}
	if res.Series.HasVolume {
		header = append(header, "Volume")
	}
	for _, o := range res.Overlays {
		header = append(header, o.Name())
	}

	rows := make([][]string, len(res.Series.Bars))
	for i, b := range res.Series.Bars {
		row := []string{b.Time.Format("2006-01-02"), price(b.Close)}
		if res.Series.HasVolume {
			row = append(row, volume(b.Volume))
		}
		for _, o := range res.Overlays {
			if v := o.Values[i]; v.Valid {
				row = append(row, price(v.Value))
			} else {
				row = append(row, missing)
			}
		}
		rows[i] = row
	}
	return header, rows
}
