package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockViewer/internal/collector"
	"StockViewer/internal/model"
	"StockViewer/internal/pipeline"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch SYMBOL [SYMBOL...]",
	Short: "Fetch price history from the market-data provider and chart it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("range"); v != "" {
			cfg.View.Range = v
		}
		if days, _ := cmd.Flags().GetInt("days"); days > 0 {
			cfg.View.Range = fmt.Sprint(days)
		}
		if _, err := model.ParseRange(cfg.View.Range); err != nil {
			return err
		}

		req, err := buildRequest(cmd, cfg, args)
		if err != nil {
			return err
		}

		fetcher := newFetcher(cfg)
		log.Infof("data source: %s", fetcher.Name())
		runner := pipeline.NewRunner(collector.NewCollector(fetcher, cfg.DataSource.Timeout))

		report := runner.Run(cmd.Context(), req)
		renderReport(report, newOutputOptions(cmd, cfg))
		if len(report.Succeeded()) == 0 {
			return fmt.Errorf("no symbol returned data")
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("range", "", "look-back range: 1M, 3M, 6M, 1Y, 2Y, 5Y")
	fetchCmd.Flags().Int("days", 0, "look-back range in days, overrides --range")
}
