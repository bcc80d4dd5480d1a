package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"StockViewer/internal/model"
	"StockViewer/internal/pipeline"
)

// ChartOptions controls PNG output.
type ChartOptions struct {
	Dir        string
	Width      vg.Length
	Height     vg.Length
	WithVolume bool
}

func (o ChartOptions) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 10 * vg.Inch
	}
	if h <= 0 {
		h = 5 * vg.Inch
	}
	return w, h
}

// Chart writes the price chart of a successful result and, when requested and
// available, a volume bar chart. It returns the written file paths.
func Chart(res pipeline.Result, opts ChartOptions) ([]string, error) {
	if !res.OK() {
		return nil, fmt.Errorf("chart %s: %w", res.Symbol, res.Err)
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	w, h := opts.size()

	p, err := pricePlot(res)
	if err != nil {
		return nil, err
	}
	pricePath := filepath.Join(opts.Dir, FileBase(res)+".png")
	if err := p.Save(w, h, pricePath); err != nil {
		return nil, fmt.Errorf("save chart: %w", err)
	}
	paths := []string{pricePath}

	if opts.WithVolume && res.Series.HasVolume {
		vp, err := volumePlot(res)
		if err != nil {
			return paths, err
		}
		volPath := filepath.Join(opts.Dir, FileBase(res)+"_volume.png")
		if err := vp.Save(w, h/2, volPath); err != nil {
			return paths, fmt.Errorf("save volume chart: %w", err)
		}
		paths = append(paths, volPath)
	}
	return paths, nil
}

// Title returns the chart heading, e.g. "AAPL Stock Price (Weekly)".
func Title(l pipeline.Label) string {
	t := fmt.Sprintf("%s Stock Price (%s)", l.Symbol, l.Frequency)
	if l.DateRange != "" {
		t += "\n" + l.DateRange
	}
	return t
}

// FileBase returns a filesystem-safe name for a result's output files.
func FileBase(res pipeline.Result) string {
	sym := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '_'
	}, res.Symbol)
	if sym == "" {
		sym = "upload"
	}
	freq := "series"
	if res.Series != nil {
		freq = strings.ToLower(res.Series.Frequency.String())
	}
	return sym + "_" + freq
}

func pricePlot(res pipeline.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title(res.Label)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	closes := make(plotter.XYs, len(res.Series.Bars))
	for i, b := range res.Series.Bars {
		closes[i].X = float64(b.Time.Unix())
		closes[i].Y = b.Close
	}
	line, err := plotter.NewLine(closes)
	if err != nil {
		return nil, fmt.Errorf("close line: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("Close Price", line)

	for i, o := range res.Overlays {
		segments := validSegments(o)
		for j, seg := range segments {
			l, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("%s line: %w", o.Name(), err)
			}
			l.Color = plotutil.Color(i + 1)
			l.Dashes = plotutil.Dashes(1)
			p.Add(l)
			if j == 0 {
				p.Legend.Add(o.Name(), l)
			}
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// validSegments splits an overlay into runs of valid points so that missing
// values leave a gap instead of being drawn.
func validSegments(o model.Overlay) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for _, v := range o.Values {
		if !v.Valid {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(v.Time.Unix()), Y: v.Value})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func volumePlot(res pipeline.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Volume (%s)", res.Label.Symbol, res.Label.Frequency)
	p.Y.Label.Text = "Volume"

	bars := res.Series.Bars
	values := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	step := len(bars)/8 + 1
	for i, b := range bars {
		values[i] = b.Volume
		if i%step == 0 {
			labels[i] = b.Time.Format("2006-01-02")
		}
	}
	bc, err := plotter.NewBarChart(values, vg.Points(4))
	if err != nil {
		return nil, fmt.Errorf("volume bars: %w", err)
	}
	bc.LineStyle.Width = 0
	bc.Color = plotutil.Color(2)
	p.Add(bc)
	p.NominalX(labels...)
	return p, nil
}
