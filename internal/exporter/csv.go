package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/config"
	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/sales"
)

// CSVWriter writes report tables into the configured reports directory
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes a table to filename inside the reports directory and
// returns the full path written.
func (w *CSVWriter) WriteCSV(filename string, options WriteOptions) (string, error) {
	fullPath := w.paths.ReportPath(filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}
	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}

	w.logger.Info("wrote report",
		slog.String("path", fullPath),
		slog.Int("records", len(options.Records)))

	return fullPath, nil
}

// WriteStoreSummaries writes the per-store aggregates report
func (w *CSVWriter) WriteStoreSummaries(summaries []sales.StoreSummary) (string, error) {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, []string{
			strconv.Itoa(s.Store),
			formatFloat(s.TotalSales, 2),
			formatFloat(s.MeanWeekly, 2),
			formatFloat(s.StdWeekly, 2),
			strconv.Itoa(s.Weeks),
		})
	}

	return w.WriteCSV("store_summary.csv", WriteOptions{
		Headers: []string{"Store", "Total_Sales", "Avg_Weekly", "Std_Weekly", "Weeks"},
		Records: records,
	})
}

// WriteHolidayImpact writes the holiday-vs-non-holiday comparison. The lift
// appears on the holiday row only.
func (w *CSVWriter) WriteHolidayImpact(impact *sales.HolidayImpact) (string, error) {
	return w.WriteCSV("holiday_impact.csv", WriteOptions{
		Headers: []string{"Holiday", "Mean_Weekly_Sales", "Std_Weekly_Sales", "Weeks", "Lift"},
		Records: [][]string{
			{
				"false",
				formatFloat(impact.NonHolidayMean, 2),
				formatFloat(impact.NonHolidayStd, 2),
				strconv.Itoa(impact.NonHolidayCount),
				"",
			},
			{
				"true",
				formatFloat(impact.HolidayMean, 2),
				formatFloat(impact.HolidayStd, 2),
				strconv.Itoa(impact.HolidayCount),
				formatFloat(impact.Lift, 4),
			},
		},
	})
}

// WriteForecast writes one row per future week of the flat-line forecast
func (w *CSVWriter) WriteForecast(result *sales.ForecastResult) (string, error) {
	records := make([][]string, 0, len(result.Values))
	for i, v := range result.Values {
		records = append(records, []string{
			strconv.Itoa(result.Store),
			strconv.Itoa(result.Window),
			strconv.Itoa(i + 1),
			formatFloat(v, 2),
		})
	}

	filename := fmt.Sprintf("store_%d_forecast.csv", result.Store)
	return w.WriteCSV(filename, WriteOptions{
		Headers: []string{"Store", "Window", "Week_Ahead", "Forecast_Sales"},
		Records: records,
	})
}

// WriteSafetyStock writes the single-row safety-stock report
func (w *CSVWriter) WriteSafetyStock(result *sales.SafetyStockResult) (string, error) {
	filename := fmt.Sprintf("store_%d_safety_stock.csv", result.Store)
	return w.WriteCSV(filename, WriteOptions{
		Headers: []string{
			"Store", "Lead_Time_Weeks", "Service_Z",
			"Mean_Weekly_Demand", "Std_Weekly_Demand",
			"Safety_Stock", "Reorder_Point",
		},
		Records: [][]string{{
			strconv.Itoa(result.Store),
			formatFloat(result.LeadTimeWeeks, 2),
			formatFloat(result.ServiceZ, 2),
			formatFloat(result.MeanDemand, 2),
			formatFloat(result.StdDemand, 2),
			formatFloat(result.SafetyStock, 2),
			formatFloat(result.ReorderPoint, 2),
		}},
	})
}

// formatFloat formats a float64 value for CSV output with the given precision
func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
