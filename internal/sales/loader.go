package sales

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

// Date layouts accepted by the loader, tried in order. Retail sales exports
// come in ISO and day-first flavours.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// columnIndex holds the resolved position of each recognized column.
// Optional columns keep -1 when absent.
type columnIndex struct {
	store        int
	date         int
	sales        int
	holiday      int
	temperature  int
	fuelPrice    int
	cpi          int
	unemployment int
}

// Load reads a sales table from path. Files with an .xlsx or .xlsm
// extension are read as Excel workbooks; everything else is read as CSV.
func Load(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadWorkbook(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads a sales table from a CSV file. The first row is the header;
// required columns are Store, Date, Weekly_Sales and a holiday column.
func LoadCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sales file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sales file: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.EmptyInput()
	}

	return parseRows(rows[0], rows[1:])
}

// parseRows converts raw header and data rows into a typed table,
// failing fast on the first malformed value.
func parseRows(header []string, rows [][]string) (Table, error) {
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		rec, err := parseRecord(cols, row, i+2) // +2: 1-based, after header
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
	}

	if len(table) == 0 {
		return nil, apperrors.EmptyInput()
	}
	return table, nil
}

// resolveColumns maps header names to positions. Header names are
// whitespace-trimmed before matching. Holiday column detection prefers
// IsHoliday, then Holiday_Flag, then any name containing "holiday".
func resolveColumns(header []string) (columnIndex, error) {
	cols := columnIndex{
		store: -1, date: -1, sales: -1, holiday: -1,
		temperature: -1, fuelPrice: -1, cpi: -1, unemployment: -1,
	}

	holidayFallback := -1
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		switch name {
		case "Store":
			cols.store = i
		case "Date":
			cols.date = i
		case "Weekly_Sales":
			cols.sales = i
		case "IsHoliday":
			cols.holiday = i
		case "Holiday_Flag":
			if cols.holiday == -1 {
				cols.holiday = i
			}
		case "Temperature":
			cols.temperature = i
		case "Fuel_Price":
			cols.fuelPrice = i
		case "CPI":
			cols.cpi = i
		case "Unemployment":
			cols.unemployment = i
		default:
			if holidayFallback == -1 && strings.Contains(strings.ToLower(name), "holiday") {
				holidayFallback = i
			}
		}
	}
	if cols.holiday == -1 {
		cols.holiday = holidayFallback
	}

	switch {
	case cols.store == -1:
		return cols, apperrors.MissingColumn("Store")
	case cols.date == -1:
		return cols, apperrors.MissingColumn("Date")
	case cols.sales == -1:
		return cols, apperrors.MissingColumn("Weekly_Sales")
	case cols.holiday == -1:
		return cols, apperrors.MissingColumn("Holiday_Flag")
	}
	return cols, nil
}

// parseRecord converts one data row. rowNum is the 1-based position in the
// file, used in error messages.
func parseRecord(cols columnIndex, row []string, rowNum int) (Record, error) {
	store, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.store)))
	if err != nil {
		return Record{}, apperrors.Newf(apperrors.KindInvalidParameter,
			"row %d: unparseable store id %q", rowNum, cell(row, cols.store))
	}

	week, err := parseDate(cell(row, cols.date))
	if err != nil {
		return Record{}, apperrors.Newf(apperrors.KindInvalidParameter,
			"row %d: unparseable date %q", rowNum, cell(row, cols.date))
	}

	salesVal, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols.sales)), 64)
	if err != nil {
		return Record{}, apperrors.Newf(apperrors.KindInvalidParameter,
			"row %d: unparseable weekly sales %q", rowNum, cell(row, cols.sales))
	}

	holiday, err := parseHolidayFlag(cell(row, cols.holiday))
	if err != nil {
		return Record{}, apperrors.Newf(apperrors.KindInvalidParameter,
			"row %d: unparseable holiday flag %q", rowNum, cell(row, cols.holiday))
	}

	rec := Record{
		Store:       store,
		Week:        week,
		WeeklySales: salesVal,
		Holiday:     holiday,
	}

	// Exogenous columns are best-effort: absent or malformed values stay zero.
	rec.Temperature = parseOptionalFloat(row, cols.temperature)
	rec.FuelPrice = parseOptionalFloat(row, cols.fuelPrice)
	rec.CPI = parseOptionalFloat(row, cols.cpi)
	rec.Unemployment = parseOptionalFloat(row, cols.unemployment)

	return rec, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseHolidayFlag applies the documented parse rule: 1/true map to true,
// 0/false map to false, anything else is rejected.
func parseHolidayFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized holiday flag %q", s)
	}
}

func parseOptionalFloat(row []string, idx int) float64 {
	if idx == -1 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, idx)), 64)
	if err != nil {
		return 0
	}
	return v
}

// cell returns the value at idx, tolerating ragged rows from workbooks
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
