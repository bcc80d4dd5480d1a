package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockViewer/internal/collector"
	"StockViewer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "viewer",
	Short:         "View stock closing-price history resampled to a chosen frequency",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to config file (default configs/config.yaml, or $CONFIG_PATH)")
	rootCmd.PersistentFlags().String("freq", "", "frequency: Daily, Weekly, Monthly or Yearly")
	rootCmd.PersistentFlags().String("ma", "", "moving average windows, e.g. 20,50,200")
	rootCmd.PersistentFlags().Bool("volume", false, "include volume bars")
	rootCmd.PersistentFlags().String("out", "", "output directory for charts and exports")
	rootCmd.PersistentFlags().Bool("export", false, "also write a CSV export per symbol")
	rootCmd.PersistentFlags().Bool("no-chart", false, "skip PNG chart output")
	rootCmd.PersistentFlags().Int("rows", 10, "trailing rows to print per symbol, 0 for all")

	rootCmd.AddCommand(uploadCmd, fetchCmd, watchCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			cfgPath = v
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("freq"); v != "" {
		cfg.View.Frequency = v
	}
	if v, _ := cmd.Flags().GetBool("volume"); v {
		cfg.View.WithVolume = true
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.View.OutputDir = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	cfg.SetupLogging()
	return cfg, nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case "polygon":
		return collector.NewPolygonFetcher(cfg.DataSource.APIKey)
	case "mock":
		return &collector.MockFetcher{Price: 100}
	default:
		return collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
