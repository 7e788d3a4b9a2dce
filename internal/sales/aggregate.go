package sales

import (
	"context"
	"sort"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

// SummarizeByStore groups the table by store identifier and computes total,
// mean and sample standard deviation of weekly sales plus the record count
// for each store. Summaries are ordered by store id ascending.
func (a *Analyzer) SummarizeByStore(ctx context.Context, table Table) ([]StoreSummary, error) {
	if len(table) == 0 {
		return nil, apperrors.EmptyInput()
	}

	byStore := make(map[int][]float64)
	for _, r := range table {
		byStore[r.Store] = append(byStore[r.Store], r.WeeklySales)
	}

	summaries := make([]StoreSummary, 0, len(byStore))
	for store, values := range byStore {
		total := 0.0
		for _, v := range values {
			total += v
		}
		mu := total / float64(len(values))
		summaries = append(summaries, StoreSummary{
			Store:      store,
			TotalSales: total,
			MeanWeekly: mu,
			StdWeekly:  sampleStdDev(values, mu),
			Weeks:      len(values),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Store < summaries[j].Store
	})

	a.logger.InfoContext(ctx, "computed store summaries",
		"stores", len(summaries),
		"records", len(table),
	)

	return summaries, nil
}

// HolidayImpact compares mean weekly sales on holiday weeks against
// non-holiday weeks and derives the percentage lift. The lift is 0 when the
// non-holiday mean is 0, which also covers the degenerate case of a table
// with no non-holiday rows.
func (a *Analyzer) HolidayImpact(ctx context.Context, table Table) (*HolidayImpact, error) {
	if len(table) == 0 {
		return nil, apperrors.EmptyInput()
	}

	var holiday, nonHoliday []float64
	for _, r := range table {
		if r.Holiday {
			holiday = append(holiday, r.WeeklySales)
		} else {
			nonHoliday = append(nonHoliday, r.WeeklySales)
		}
	}

	impact := &HolidayImpact{
		HolidayCount:    len(holiday),
		NonHolidayCount: len(nonHoliday),
	}
	if len(holiday) > 0 {
		impact.HolidayMean = mean(holiday)
		impact.HolidayStd = sampleStdDev(holiday, impact.HolidayMean)
	}
	if len(nonHoliday) > 0 {
		impact.NonHolidayMean = mean(nonHoliday)
		impact.NonHolidayStd = sampleStdDev(nonHoliday, impact.NonHolidayMean)
	}
	if impact.NonHolidayMean != 0 {
		impact.Lift = (impact.HolidayMean - impact.NonHolidayMean) / impact.NonHolidayMean
	}

	a.logger.InfoContext(ctx, "computed holiday impact",
		"holiday_weeks", impact.HolidayCount,
		"non_holiday_weeks", impact.NonHolidayCount,
		"lift", impact.Lift,
	)

	return impact, nil
}
