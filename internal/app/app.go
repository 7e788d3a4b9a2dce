// Package app dispatches a validated command configuration onto the sales
// engines and routes results to stdout and the CSV exporter. It holds no
// process-wide mutable state; one Command in, one set of reports out.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/config"
	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/exporter"
	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/sales"
)

// Command is the explicit configuration for one invocation. Report
// parameters carry no business-intent defaults: window, horizon, lead time
// and service z must be supplied when their report is selected.
type Command struct {
	File string `validate:"required"`

	Summary       bool
	HolidayImpact bool
	Forecast      bool
	SafetyStock   bool

	// Store uses a negative value for "not supplied" so that store id 0
	// stays analyzable.
	Store         int
	Window        int     `validate:"required_if=Forecast true"`
	Horizon       int     `validate:"required_if=Forecast true"`
	LeadTimeWeeks float64 `validate:"required_if=SafetyStock true"`
	ServiceZ      float64 `validate:"required_if=SafetyStock true"`
}

// selected reports whether any report was requested
func (c Command) selected() bool {
	return c.Summary || c.HolidayImpact || c.Forecast || c.SafetyStock
}

// App wires the analyzer, exporter and logger for one CLI invocation
type App struct {
	logger   *slog.Logger
	paths    *config.Paths
	analyzer *sales.Analyzer
	writer   *exporter.CSVWriter
	validate *validator.Validate
	stdout   io.Writer
}

// New creates an App writing reports under paths and echoing tables to stdout
func New(logger *slog.Logger, paths *config.Paths) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		logger:   logger,
		paths:    paths,
		analyzer: sales.NewAnalyzer(logger),
		writer:   exporter.NewCSVWriter(paths, logger),
		validate: validator.New(),
		stdout:   os.Stdout,
	}
}

// Run validates cmd, loads the sales table once and executes every selected
// report in order. The first failing report aborts the invocation.
func (a *App) Run(ctx context.Context, cmd Command) error {
	if err := a.validateCommand(cmd); err != nil {
		return err
	}

	inputPath := a.resolveInput(cmd.File)
	a.logger.InfoContext(ctx, "loading sales table", "file", inputPath)
	table, err := sales.Load(inputPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", inputPath, err)
	}
	a.logger.InfoContext(ctx, "loaded sales table",
		"records", len(table),
		"stores", len(table.Stores()),
	)

	if cmd.Summary {
		if err := a.runSummary(ctx, table); err != nil {
			return err
		}
	}
	if cmd.HolidayImpact {
		if err := a.runHolidayImpact(ctx, table); err != nil {
			return err
		}
	}
	if cmd.Forecast {
		if err := a.runForecast(ctx, table, cmd); err != nil {
			return err
		}
	}
	if cmd.SafetyStock {
		if err := a.runSafetyStock(ctx, table, cmd); err != nil {
			return err
		}
	}

	return nil
}

// resolveInput falls back to the configured data directory when a relative
// input file does not exist in the working directory.
func (a *App) resolveInput(file string) string {
	if a.paths == nil || file == "" || filepath.IsAbs(file) {
		return file
	}
	if _, err := os.Stat(file); err == nil {
		return file
	}
	if candidate := a.paths.DataPath(file); candidate != file {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return file
}

// validateCommand maps structural problems with the command to
// INVALID_PARAMETER before any file is touched.
func (a *App) validateCommand(cmd Command) error {
	if !cmd.selected() {
		return apperrors.New(apperrors.KindInvalidParameter,
			"no report selected: pass at least one of -summary, -holiday-impact, -forecast, -safety-stock")
	}

	if err := a.validate.Struct(cmd); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperrors.InvalidParameter(fe.Field(), fe.Value())
		}
		return apperrors.New(apperrors.KindInvalidParameter, err.Error())
	}

	if (cmd.Forecast || cmd.SafetyStock) && cmd.Store < 0 {
		return apperrors.InvalidParameter("Store", cmd.Store)
	}

	return nil
}

func (a *App) runSummary(ctx context.Context, table sales.Table) error {
	summaries, err := a.analyzer.SummarizeByStore(ctx, table)
	if err != nil {
		return fmt.Errorf("summarize by store: %w", err)
	}

	fmt.Fprintln(a.stdout, "\n=== STORE SUMMARY ===")
	fmt.Fprintln(a.stdout, "Store | Total Sales      | Avg Weekly    | Std Weekly    | Weeks")
	fmt.Fprintln(a.stdout, "------|------------------|---------------|---------------|------")
	for _, s := range summaries {
		fmt.Fprintf(a.stdout, "%-5d | %16.2f | %13.2f | %13.2f | %5d\n",
			s.Store, s.TotalSales, s.MeanWeekly, s.StdWeekly, s.Weeks)
	}

	if _, err := a.writer.WriteStoreSummaries(summaries); err != nil {
		return fmt.Errorf("write store summary: %w", err)
	}
	if _, err := a.writer.WriteSummaryReport(summaries); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}
	return nil
}

func (a *App) runHolidayImpact(ctx context.Context, table sales.Table) error {
	impact, err := a.analyzer.HolidayImpact(ctx, table)
	if err != nil {
		return fmt.Errorf("holiday impact: %w", err)
	}

	fmt.Fprintln(a.stdout, "\n=== HOLIDAY IMPACT ===")
	fmt.Fprintln(a.stdout, "Holiday | Mean Sales      | Std Sales       | Weeks")
	fmt.Fprintln(a.stdout, "--------|-----------------|-----------------|------")
	fmt.Fprintf(a.stdout, "false   | %15.2f | %15.2f | %5d\n",
		impact.NonHolidayMean, impact.NonHolidayStd, impact.NonHolidayCount)
	fmt.Fprintf(a.stdout, "true    | %15.2f | %15.2f | %5d\n",
		impact.HolidayMean, impact.HolidayStd, impact.HolidayCount)
	fmt.Fprintf(a.stdout, "Lift: %.2f%%\n", impact.Lift*100)

	if _, err := a.writer.WriteHolidayImpact(impact); err != nil {
		return fmt.Errorf("write holiday impact: %w", err)
	}
	return nil
}

func (a *App) runForecast(ctx context.Context, table sales.Table, cmd Command) error {
	result, err := a.analyzer.Forecast(ctx, table, cmd.Store, cmd.Window, cmd.Horizon)
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}

	fmt.Fprintf(a.stdout, "\n=== FORECAST: STORE %d (%d-week moving average) ===\n",
		result.Store, result.Window)
	for i, v := range result.Values {
		fmt.Fprintf(a.stdout, "Week +%d: %.2f\n", i+1, v)
	}

	if _, err := a.writer.WriteForecast(result); err != nil {
		return fmt.Errorf("write forecast: %w", err)
	}
	return nil
}

func (a *App) runSafetyStock(ctx context.Context, table sales.Table, cmd Command) error {
	result, err := a.analyzer.SafetyStock(ctx, table, cmd.Store, cmd.LeadTimeWeeks, cmd.ServiceZ)
	if err != nil {
		return fmt.Errorf("safety stock: %w", err)
	}

	fmt.Fprintf(a.stdout, "\n=== SAFETY STOCK: STORE %d ===\n", result.Store)
	fmt.Fprintf(a.stdout, "Lead time (weeks):  %.2f\n", result.LeadTimeWeeks)
	fmt.Fprintf(a.stdout, "Service z:          %.2f\n", result.ServiceZ)
	fmt.Fprintf(a.stdout, "Mean weekly demand: %.2f\n", result.MeanDemand)
	fmt.Fprintf(a.stdout, "Std weekly demand:  %.2f\n", result.StdDemand)
	fmt.Fprintf(a.stdout, "Safety stock:       %.2f\n", result.SafetyStock)
	fmt.Fprintf(a.stdout, "Reorder point:      %.2f\n", result.ReorderPoint)

	if _, err := a.writer.WriteSafetyStock(result); err != nil {
		return fmt.Errorf("write safety stock: %w", err)
	}
	return nil
}
