package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jkrouse1998/walmart-supply-chain-analysis/internal/sales"
)

// WriteSummaryReport writes a human-readable text summary of the store
// aggregates next to the CSV report and returns the path written. Stores are
// ranked by total sales descending; at most the top ten appear.
func (w *CSVWriter) WriteSummaryReport(summaries []sales.StoreSummary) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("no summaries to report")
	}

	ranked := make([]sales.StoreSummary, len(summaries))
	copy(ranked, summaries)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalSales > ranked[j].TotalSales
	})

	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}

	totalSales := 0.0
	totalWeeks := 0
	for _, s := range summaries {
		totalSales += s.TotalSales
		totalWeeks += s.Weeks
	}

	outputPath := w.paths.ReportPath("store_summary.txt")
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("create summary file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Weekly Sales - Store Summary Report\n")
	fmt.Fprintf(file, "===================================\n\n")
	fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(file, "DATASET OVERVIEW\n")
	fmt.Fprintf(file, "----------------\n")
	fmt.Fprintf(file, "Stores: %d\n", len(summaries))
	fmt.Fprintf(file, "Records: %d\n", totalWeeks)
	fmt.Fprintf(file, "Total Sales: %.2f\n\n", totalSales)

	fmt.Fprintf(file, "TOP %d STORES BY TOTAL SALES\n", len(top))
	fmt.Fprintf(file, "---------------------------\n")
	for i, s := range top {
		fmt.Fprintf(file, "%2d. Store %-4d  total %15.2f  avg %12.2f  weeks %d\n",
			i+1, s.Store, s.TotalSales, s.MeanWeekly, s.Weeks)
	}

	w.logger.Info("wrote summary report", "path", outputPath)

	return outputPath, nil
}
