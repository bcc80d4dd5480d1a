package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockViewer/internal/collector"
	"StockViewer/internal/pipeline"
	"StockViewer/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch [SYMBOL...]",
	Short: "Re-render the configured watchlist on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		symbols := cfg.Watch.Symbols
		if len(args) > 0 {
			symbols = args
		}
		req, err := buildRequest(cmd, cfg, symbols)
		if err != nil {
			return err
		}
		opts := newOutputOptions(cmd, cfg)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		runner := pipeline.NewRunner(collector.NewCollector(newFetcher(cfg), cfg.DataSource.Timeout))
		sched := scheduler.NewScheduler(ctx, runner, func(r pipeline.Report) { renderReport(r, opts) })
		if err := sched.Register(cfg.Watch.Cron, req); err != nil {
			return fmt.Errorf("register cron task: %w", err)
		}
		sched.Start()
		defer sched.Stop()

		if runNow, _ := cmd.Flags().GetBool("now"); runNow {
			go sched.RunNow(req)
		}

		log.Infof("watching %v on %q. Press Ctrl+C to stop.", pipeline.CleanSymbols(symbols), cfg.Watch.Cron)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info("shutdown signal received, stopping...")
		cancel()
		return nil
	},
}

func init() {
	watchCmd.Flags().Bool("now", false, "run once immediately on start")
}
