package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockViewer/internal/pipeline"
	"StockViewer/internal/source"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file.csv]",
	Short: "Chart a CSV file with Date and Close columns, or a SQLite table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		symbol, _ := cmd.Flags().GetString("symbol")
		dbPath, _ := cmd.Flags().GetString("sqlite")
		tableName, _ := cmd.Flags().GetString("table")

		req, err := buildRequest(cmd, cfg, nil)
		if err != nil {
			return err
		}
		opts := newOutputOptions(cmd, cfg)
		runner := pipeline.NewRunner(nil)

		switch {
		case dbPath != "":
			return uploadSQLite(cmd.Context(), runner, req, opts, dbPath, tableName, symbol)
		case len(args) == 1:
			table, err := source.LoadCSVFile(args[0])
			if err != nil {
				return err
			}
			if symbol == "" {
				symbol = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			renderResult(runner.RunTable(table, symbol, req), opts)
			return nil
		default:
			log.Info("Upload a CSV file with 'Date' and 'Close' columns to get started.")
			return cmd.Usage()
		}
	},
}

func init() {
	uploadCmd.Flags().String("symbol", "", "symbol label for the chart")
	uploadCmd.Flags().String("sqlite", "", "read from a SQLite database instead of a CSV file")
	uploadCmd.Flags().String("table", "prices", "SQLite table name")
}

func uploadSQLite(ctx context.Context, runner *pipeline.Runner, req pipeline.Request, opts outputOptions, dbPath, tableName, symbol string) error {
	src, err := source.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer src.Close()

	symbols := []string{symbol}
	if symbol == "" {
		if all, err := src.Symbols(ctx, tableName); err == nil && len(all) > 0 {
			symbols = all
		}
	}
	for _, sym := range symbols {
		table, err := src.Load(ctx, tableName, sym)
		if err != nil {
			return fmt.Errorf("load %s: %w", tableName, err)
		}
		label := sym
		if label == "" {
			label = tableName
		}
		renderResult(runner.RunTable(table, label, req), opts)
	}
	return nil
}
