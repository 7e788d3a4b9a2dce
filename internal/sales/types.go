package sales

import (
	"sort"
	"time"
)

// Record represents one week of sales for a single store. Exogenous fields
// (temperature, fuel price, CPI, unemployment) are carried through from the
// input file but not used by any calculation.
type Record struct {
	Store       int       `json:"store"`
	Week        time.Time `json:"week"`
	WeeklySales float64   `json:"weekly_sales"`
	Holiday     bool      `json:"holiday"`

	Temperature  float64 `json:"temperature,omitempty"`
	FuelPrice    float64 `json:"fuel_price,omitempty"`
	CPI          float64 `json:"cpi,omitempty"`
	Unemployment float64 `json:"unemployment,omitempty"`
}

// Table is an ordered sequence of sales records. It is read-only once
// loaded; rows are not required to be sorted by week. Each (store, week)
// pair is expected to be unique, though this is not enforced.
type Table []Record

// Stores returns the distinct store identifiers present, ascending.
func (t Table) Stores() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, r := range t {
		if !seen[r.Store] {
			seen[r.Store] = true
			ids = append(ids, r.Store)
		}
	}
	sort.Ints(ids)
	return ids
}

// ForStore returns the records for the given store, ordered by week
// ascending. The returned slice is a copy; the table is never mutated.
func (t Table) ForStore(storeID int) []Record {
	var records []Record
	for _, r := range t {
		if r.Store == storeID {
			records = append(records, r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Week.Before(records[j].Week)
	})
	return records
}

// StoreSummary holds per-store aggregates over the full table
type StoreSummary struct {
	Store      int     `json:"store"`
	TotalSales float64 `json:"total_sales"`
	MeanWeekly float64 `json:"mean_weekly"`
	StdWeekly  float64 `json:"std_weekly"` // sample std dev, 0 when fewer than 2 records
	Weeks      int     `json:"weeks"`
}

// HolidayImpact compares mean weekly sales on holiday weeks against
// non-holiday weeks. Lift is (HolidayMean-NonHolidayMean)/NonHolidayMean,
// or 0 when the non-holiday mean is 0.
type HolidayImpact struct {
	HolidayMean     float64 `json:"holiday_mean"`
	HolidayStd      float64 `json:"holiday_std"`
	HolidayCount    int     `json:"holiday_count"`
	NonHolidayMean  float64 `json:"non_holiday_mean"`
	NonHolidayStd   float64 `json:"non_holiday_std"`
	NonHolidayCount int     `json:"non_holiday_count"`
	Lift            float64 `json:"lift"`
}

// ForecastResult holds a flat-line moving-average forecast for one store.
// Every value equals MovingAverage; later horizon steps never feed synthetic
// values back into the average.
type ForecastResult struct {
	Store         int       `json:"store"`
	Window        int       `json:"window"`
	Horizon       int       `json:"horizon"`
	MovingAverage float64   `json:"moving_average"`
	Values        []float64 `json:"values"`
}

// SafetyStockResult holds the safety-stock and reorder-point figures for
// one store under the supplied lead-time and service-level assumptions.
type SafetyStockResult struct {
	Store         int     `json:"store"`
	LeadTimeWeeks float64 `json:"lead_time_weeks"`
	ServiceZ      float64 `json:"service_z"`
	MeanDemand    float64 `json:"mean_weekly_demand"`
	StdDemand     float64 `json:"std_weekly_demand"` // Bessel-corrected
	SafetyStock   float64 `json:"safety_stock"`
	ReorderPoint  float64 `json:"reorder_point"`
}
