package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockViewer/internal/config"
	"StockViewer/internal/model"
	"StockViewer/internal/pipeline"
	"StockViewer/internal/render"
)

type outputOptions struct {
	Dir        string
	WithVolume bool
	Export     bool
	NoChart    bool
	Rows       int
}

func newOutputOptions(cmd *cobra.Command, cfg *config.Config) outputOptions {
	export, _ := cmd.Flags().GetBool("export")
	noChart, _ := cmd.Flags().GetBool("no-chart")
	rows, _ := cmd.Flags().GetInt("rows")
	return outputOptions{
		Dir:        cfg.View.OutputDir,
		WithVolume: cfg.View.WithVolume,
		Export:     export,
		NoChart:    noChart,
		Rows:       rows,
	}
}

// buildRequest turns config and flags into an explicit pipeline request.
func buildRequest(cmd *cobra.Command, cfg *config.Config, symbols []string) (pipeline.Request, error) {
	windows := cfg.View.Windows
	if v, _ := cmd.Flags().GetString("ma"); v != "" {
		w, err := model.ParseWindows(v)
		if err != nil {
			return pipeline.Request{}, err
		}
		windows = w
	}
	return pipeline.Request{
		Symbols:    symbols,
		Frequency:  cfg.Frequency(),
		RangeDays:  cfg.RangeDays(),
		Windows:    windows,
		WithVolume: cfg.View.WithVolume,
	}, nil
}

// renderResult prints and writes one result. Failures are reported as warnings.
func renderResult(res pipeline.Result, opts outputOptions) {
	entry := log.WithField("symbol", res.Symbol)
	if !res.OK() {
		entry.WithField("kind", res.Kind()).Warnf("no chart: %v", res.Err)
		return
	}
	if err := render.Table(os.Stdout, res, render.TableOptions{Last: opts.Rows}); err != nil {
		entry.Errorf("render table: %v", err)
	}
	if !opts.NoChart {
		paths, err := render.Chart(res, render.ChartOptions{Dir: opts.Dir, WithVolume: opts.WithVolume})
		if err != nil {
			entry.Errorf("render chart: %v", err)
		}
		for _, p := range paths {
			entry.Infof("chart written: %s", p)
		}
	}
	if opts.Export {
		path, err := render.ExportCSVFile(opts.Dir, res)
		if err != nil {
			entry.Errorf("export csv: %v", err)
			return
		}
		entry.Infof("csv written: %s", path)
	}
}

func renderReport(report pipeline.Report, opts outputOptions) {
	for _, res := range report.Results {
		renderResult(res, opts)
	}
}
