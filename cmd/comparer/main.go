package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"smmerge/internal/config"
	"smmerge/internal/dataprocessing"
	"smmerge/internal/exporter"
	"smmerge/internal/files"
	"smmerge/internal/infrastructure"
)

func main() {
	oldPath := flag.String("old", "", "path to the older snapshot workbook")
	newPath := flag.String("new", "", "path to the newer snapshot workbook")
	outDir := flag.String("out", "", "output directory for the comparison workbook")
	flag.Parse()

	if *oldPath == "" || *newPath == "" {
		slog.Error("both -old and -new snapshot paths are required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("comparing snapshots",
		slog.String("old", *oldPath),
		slog.String("new", *newPath))

	oldTable, err := files.LoadSnapshot(*oldPath)
	if err != nil {
		logger.Error("failed to load old snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
	newTable, err := files.LoadSnapshot(*newPath)
	if err != nil {
		logger.Error("failed to load new snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := dataprocessing.Compare(oldTable, newTable)
	if err != nil {
		logger.Error("comparison failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	outPath := cfg.ComparisonOutputPath(timestamp)
	if err := exporter.NewExcelWriter(logger).WriteComparison(outPath, result); err != nil {
		logger.Error("failed to write comparison workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("comparison complete",
		slog.String("output", outPath),
		slog.Int("matched", result.Matched),
		slog.Int("unmatched", result.Unmatched),
		slog.Int("post_count_change", newTable.Len()-oldTable.Len()))
}
