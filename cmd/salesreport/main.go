package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/app"
	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/config"
	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/infrastructure"
)

func main() {
	file := flag.String("file", "", "path to the weekly sales file (CSV or XLSX)")
	summary := flag.Bool("summary", false, "per-store sales summary")
	holidayImpact := flag.Bool("holiday-impact", false, "holiday vs non-holiday comparison")
	forecast := flag.Bool("forecast", false, "moving-average forecast (needs -store, -window, -horizon)")
	safetyStock := flag.Bool("safety-stock", false, "safety stock and reorder point (needs -store, -lead, -z)")
	store := flag.Int("store", -1, "store id to analyze")
	window := flag.Int("window", 0, "moving-average window in weeks")
	horizon := flag.Int("horizon", 0, "number of future weeks to forecast")
	lead := flag.Float64("lead", 0, "lead time in weeks")
	serviceZ := flag.Float64("z", 0, "service-level z multiplier")
	outDir := flag.String("out", "", "output directory for reports (defaults to configured reports dir)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(apperrors.ExitUnclassified)
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(apperrors.ExitUnclassified)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(apperrors.ExitUnclassified)
	}

	logger, err := infrastructure.NewLogger(cfg.Logging, paths)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(apperrors.ExitUnclassified)
	}
	slog.SetDefault(logger)

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	cmd := app.Command{
		File:          *file,
		Summary:       *summary,
		HolidayImpact: *holidayImpact,
		Forecast:      *forecast,
		SafetyStock:   *safetyStock,
		Store:         *store,
		Window:        *window,
		Horizon:       *horizon,
		LeadTimeWeeks: *lead,
		ServiceZ:      *serviceZ,
	}

	if err := app.New(logger, paths).Run(ctx, cmd); err != nil {
		logger.ErrorContext(ctx, "Run failed",
			"error", err,
			"kind", string(apperrors.KindOf(err)),
		)
		os.Exit(apperrors.ExitCode(err))
	}

	logger.InfoContext(ctx, "Run completed", "reports_dir", paths.ReportsDir)
}
