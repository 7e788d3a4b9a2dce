package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

func week(n int) time.Time {
	return time.Date(2010, 2, 5, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*(n-1))
}

func rec(store, weekN int, weeklySales float64, holiday bool) Record {
	return Record{Store: store, Week: week(weekN), WeeklySales: weeklySales, Holiday: holiday}
}

func TestSummarizeByStore(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	ctx := context.Background()

	t.Run("one summary per store, ordered ascending", func(t *testing.T) {
		table := Table{
			rec(3, 1, 300, false),
			rec(1, 1, 100, false),
			rec(2, 1, 200, false),
			rec(1, 2, 150, true),
		}

		summaries, err := analyzer.SummarizeByStore(ctx, table)
		require.NoError(t, err)
		require.Len(t, summaries, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{summaries[0].Store, summaries[1].Store, summaries[2].Store})
	})

	t.Run("per-store totals sum to table total", func(t *testing.T) {
		table := Table{
			rec(1, 1, 123.45, false),
			rec(1, 2, 678.90, true),
			rec(2, 1, 1000.01, false),
			rec(5, 1, 0.99, false),
			rec(5, 2, 42.42, false),
		}

		tableTotal := 0.0
		for _, r := range table {
			tableTotal += r.WeeklySales
		}

		summaries, err := analyzer.SummarizeByStore(ctx, table)
		require.NoError(t, err)

		sumOfTotals := 0.0
		for _, s := range summaries {
			sumOfTotals += s.TotalSales
		}
		assert.InDelta(t, tableTotal, sumOfTotals, 1e-6)
	})

	t.Run("mean, std and count per store", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 20, false),
			rec(1, 3, 30, false),
		}

		summaries, err := analyzer.SummarizeByStore(ctx, table)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.InDelta(t, 60, summaries[0].TotalSales, 1e-9)
		assert.InDelta(t, 20, summaries[0].MeanWeekly, 1e-9)
		assert.InDelta(t, 10, summaries[0].StdWeekly, 1e-9) // sample std of 10,20,30
		assert.Equal(t, 3, summaries[0].Weeks)
	})

	t.Run("single record store has zero std", func(t *testing.T) {
		summaries, err := analyzer.SummarizeByStore(ctx, Table{rec(1, 1, 99, false)})
		require.NoError(t, err)
		assert.Zero(t, summaries[0].StdWeekly)
	})

	t.Run("empty table fails", func(t *testing.T) {
		_, err := analyzer.SummarizeByStore(ctx, Table{})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindEmptyInput, apperrors.KindOf(err))
	})
}

func TestHolidayImpact(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	ctx := context.Background()

	t.Run("lift is zero when means are equal", func(t *testing.T) {
		table := Table{
			rec(1, 1, 100, true),
			rec(1, 2, 100, false),
			rec(2, 1, 100, true),
			rec(2, 2, 100, false),
		}

		impact, err := analyzer.HolidayImpact(ctx, table)
		require.NoError(t, err)
		assert.Zero(t, impact.Lift)
		assert.InDelta(t, impact.HolidayMean, impact.NonHolidayMean, 1e-9)
	})

	t.Run("positive lift", func(t *testing.T) {
		table := Table{
			rec(1, 1, 150, true),
			rec(1, 2, 100, false),
			rec(1, 3, 100, false),
		}

		impact, err := analyzer.HolidayImpact(ctx, table)
		require.NoError(t, err)
		assert.InDelta(t, 150, impact.HolidayMean, 1e-9)
		assert.InDelta(t, 100, impact.NonHolidayMean, 1e-9)
		assert.InDelta(t, 0.5, impact.Lift, 1e-9)
		assert.Equal(t, 1, impact.HolidayCount)
		assert.Equal(t, 2, impact.NonHolidayCount)
	})

	t.Run("all-holiday table has zero lift", func(t *testing.T) {
		table := Table{
			rec(1, 1, 100, true),
			rec(1, 2, 200, true),
		}

		impact, err := analyzer.HolidayImpact(ctx, table)
		require.NoError(t, err)
		assert.Zero(t, impact.NonHolidayCount)
		assert.Zero(t, impact.Lift)
	})

	t.Run("empty table fails", func(t *testing.T) {
		_, err := analyzer.HolidayImpact(ctx, Table{})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindEmptyInput, apperrors.KindOf(err))
	})
}

func TestTable_Stores(t *testing.T) {
	table := Table{
		rec(9, 1, 1, false),
		rec(2, 1, 1, false),
		rec(9, 2, 1, false),
		rec(4, 1, 1, false),
	}
	assert.Equal(t, []int{2, 4, 9}, table.Stores())
}

func TestTable_ForStore(t *testing.T) {
	table := Table{
		rec(1, 3, 30, false),
		rec(2, 1, 99, false),
		rec(1, 1, 10, false),
		rec(1, 2, 20, false),
	}

	records := table.ForStore(1)
	require.Len(t, records, 3)
	assert.InDelta(t, 10, records[0].WeeklySales, 1e-9)
	assert.InDelta(t, 20, records[1].WeeklySales, 1e-9)
	assert.InDelta(t, 30, records[2].WeeklySales, 1e-9)

	assert.Empty(t, table.ForStore(42))
}
