package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"smmerge/internal/config"
	"smmerge/internal/dataprocessing"
	"smmerge/internal/exporter"
	"smmerge/internal/files"
	"smmerge/internal/infrastructure"
	"smmerge/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "input directory for .xlsx/.csv exports (defaults to files/ next to the executable)")
	outDir := flag.String("out", "", "output directory for the merged file")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	jobs := flag.Int("jobs", 1, "number of files reconciled in parallel")
	keep := flag.Bool("keep", false, "leave ingested inputs in place instead of moving them to the processed directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}
	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("starting export merge",
		slog.String("input_dir", cfg.Paths.InputDir),
		slog.String("output_dir", cfg.Paths.OutputDir),
		slog.String("format", *format),
		slog.Int("jobs", *jobs))

	discovery := files.NewDiscovery(cfg.Paths.BaseDir)
	sources, err := discovery.FindSourceFiles(cfg.Paths.InputDir)
	if err != nil {
		logger.Error("failed to discover source files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(sources) == 0 {
		logger.Info("no source files to process")
		return
	}

	// Files reconcile independently; a failure skips that file only. The
	// results slice keeps the discovery order regardless of completion
	// order, so the merge stays deterministic.
	reconciler := dataprocessing.NewReconciler(logger)
	tables := make([]*domain.PostTable, len(sources))

	var g errgroup.Group
	g.SetLimit(*jobs)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			source, err := files.ReadSource(src.Path)
			if err != nil {
				logger.Error("skipping unreadable file",
					slog.String("file", src.Name),
					slog.String("error", err.Error()))
				return nil
			}
			table, err := reconciler.Reconcile(source)
			if err != nil {
				logger.Error("skipping file",
					slog.String("file", src.Name),
					slog.String("error", err.Error()))
				return nil
			}
			tables[i] = table
			return nil
		})
	}
	_ = g.Wait()

	processed, failed := 0, 0
	for i, t := range tables {
		if t == nil {
			failed++
			continue
		}
		processed++
		if !*keep {
			if err := discovery.MoveToProcessed(sources[i].Path, cfg.Paths.ProcessedDir); err != nil {
				logger.Warn("failed to move processed file",
					slog.String("file", sources[i].Name),
					slog.String("error", err.Error()))
			}
		}
	}
	logger.Info("reconciliation finished",
		slog.Int("processed", processed),
		slog.Int("failed", failed))
	if processed == 0 {
		logger.Error("no file could be processed")
		os.Exit(1)
	}

	merged := dataprocessing.Merge(tables)
	timestamp := time.Now().Format("20060102_150405")

	var outPath string
	switch *format {
	case "csv":
		outPath = cfg.MergedOutputPath(timestamp, "csv")
		err = exporter.NewCSVWriter(logger).WriteTable(outPath, merged)
	default:
		outPath = cfg.MergedOutputPath(timestamp, "xlsx")
		err = exporter.NewExcelWriter(logger).WriteTable(outPath, merged)
	}
	if err != nil {
		logger.Error("failed to write merged output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("merge complete",
		slog.String("output", outPath),
		slog.Int("records", merged.Len()),
		slog.Int("diagnostics", len(merged.Diagnostics)))
}
