// Command processor runs the analysis pipeline over three exported tables
// and writes the derived views as CSV and JSON reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"twsecli/internal/config"
	"twsecli/internal/dataprocessing"
	"twsecli/internal/exporter"
	"twsecli/internal/infrastructure"
	"twsecli/internal/validation"
)

func main() {
	revPath := flag.String("rev", "", "revenue export (CSV or XLSX)")
	valPath := flag.String("val", "", "trading-value export (CSV or XLSX)")
	indPath := flag.String("ind", "", "industry classification export (CSV or XLSX)")
	outDir := flag.String("out", "reports", "output directory for the report files")
	configPath := flag.String("config", "", "optional config file (defaults to config.yaml when present)")
	flag.Parse()

	if *revPath == "" || *valPath == "" || *indPath == "" {
		fmt.Fprintln(os.Stderr, "usage: processor -rev <file> -val <file> -ind <file> [-out <dir>]")
		os.Exit(2)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()

	validator := validation.NewFileValidator(logger)
	for _, path := range []string{*revPath, *valPath, *indPath} {
		if err := validator.ValidateSourceFile(path); err != nil {
			os.Exit(1)
		}
	}
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		os.Exit(1)
	}

	rev, err := readSource(logger, *revPath, cfg.Pipeline.Encodings)
	if err != nil {
		os.Exit(1)
	}
	val, err := readSource(logger, *valPath, cfg.Pipeline.Encodings)
	if err != nil {
		os.Exit(1)
	}
	ind, err := readSource(logger, *indPath, cfg.Pipeline.Encodings)
	if err != nil {
		os.Exit(1)
	}

	processor := dataprocessing.NewProcessor(logger, cfg.PipelineSettings())
	result, err := processor.Run(ctx, rev, val, ind)
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	for source, msg := range map[string]string{
		dataprocessing.SourceIndustry: result.IndustryErr,
		dataprocessing.SourceRevenue:  result.RevenueErr,
		dataprocessing.SourceValue:    result.ValueErr,
	} {
		if msg != "" {
			logger.Warn("source failed its schema contract, view skipped",
				"source", source, "error", msg)
		}
	}

	writer := exporter.NewCSVWriter(*outDir, logger)
	exitCode := 0

	if result.Value != nil {
		if err := writer.WriteComposite(config.CompositeReportFile, result.Composite); err != nil {
			logger.Error("failed to write composite report", "error", err)
			exitCode = 1
		}
		if err := writer.WriteJSON(jsonName(config.CompositeReportFile), "composite_top", result.Composite); err != nil {
			logger.Error("failed to write composite JSON", "error", err)
			exitCode = 1
		}
		if err := writer.WriteValue(config.ValueReportFile, result.Value); err != nil {
			logger.Error("failed to write value report", "error", err)
			exitCode = 1
		}
		if err := writer.WriteJSON(jsonName(config.ValueReportFile), "value_ranking", result.Value); err != nil {
			logger.Error("failed to write value JSON", "error", err)
			exitCode = 1
		}
	}
	if result.Revenue != nil {
		if err := writer.WriteRevenue(config.RevenueReportFile, result.Revenue); err != nil {
			logger.Error("failed to write revenue report", "error", err)
			exitCode = 1
		}
		if err := writer.WriteJSON(jsonName(config.RevenueReportFile), "revenue_leaderboard", result.Revenue); err != nil {
			logger.Error("failed to write revenue JSON", "error", err)
			exitCode = 1
		}
	}

	logger.Info("processing complete",
		"composite_rows", len(result.Composite),
		"revenue_rows", len(result.Revenue),
		"value_rows", len(result.Value),
		"out_dir", *outDir)
	os.Exit(exitCode)
}

func readSource(logger *slog.Logger, path string, encodings []string) (*dataprocessing.Table, error) {
	table, err := dataprocessing.ReadTableFile(path, encodings...)
	if err != nil {
		logger.Error("failed to read source table", "path", path, "error", err)
		return nil, err
	}
	logger.Info("source table loaded", "path", path, "rows", table.RowCount())
	return table, nil
}

func jsonName(csvName string) string {
	return strings.TrimSuffix(csvName, ".csv") + ".json"
}
