package sales

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

func TestSafetyStock(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	ctx := context.Background()

	t.Run("constant demand yields zero safety stock", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 10, false),
			rec(1, 3, 10, false),
			rec(1, 4, 10, false),
		}

		result, err := analyzer.SafetyStock(ctx, table, 1, 3, 1.65)
		require.NoError(t, err)
		assert.Zero(t, result.StdDemand)
		assert.Zero(t, result.SafetyStock)
		assert.Equal(t, 30.0, result.ReorderPoint) // mu * lead exactly
	})

	t.Run("known variability", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 20, false),
			rec(1, 3, 30, false),
		}

		result, err := analyzer.SafetyStock(ctx, table, 1, 4, 1.65)
		require.NoError(t, err)
		assert.InDelta(t, 20, result.MeanDemand, 1e-9)
		assert.InDelta(t, 10, result.StdDemand, 1e-9) // Bessel-corrected

		wantSS := 1.65 * 10 * math.Sqrt(4)
		assert.InDelta(t, wantSS, result.SafetyStock, 1e-9)
		assert.InDelta(t, 20*4+wantSS, result.ReorderPoint, 1e-9)
	})

	t.Run("fractional lead time", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 20, false),
		}

		result, err := analyzer.SafetyStock(ctx, table, 1, 1.5, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0*result.StdDemand*math.Sqrt(1.5), result.SafetyStock, 1e-9)
		assert.InDelta(t, 15.0*1.5+result.SafetyStock, result.ReorderPoint, 1e-9)
	})

	t.Run("other stores excluded", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 10, false),
			rec(2, 1, 1e9, false),
		}

		result, err := analyzer.SafetyStock(ctx, table, 1, 2, 1.65)
		require.NoError(t, err)
		assert.InDelta(t, 10, result.MeanDemand, 1e-9)
	})

	t.Run("unknown store", func(t *testing.T) {
		table := Table{rec(1, 1, 10, false)}
		_, err := analyzer.SafetyStock(ctx, table, 42, 2, 1.65)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindUnknownStore, apperrors.KindOf(err))
	})

	t.Run("single record is insufficient", func(t *testing.T) {
		table := Table{rec(1, 1, 10, false)}
		_, err := analyzer.SafetyStock(ctx, table, 1, 2, 1.65)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInsufficientHistory, apperrors.KindOf(err))
	})

	t.Run("invalid parameters", func(t *testing.T) {
		table := Table{
			rec(1, 1, 10, false),
			rec(1, 2, 20, false),
		}

		tests := []struct {
			name string
			lead float64
			z    float64
		}{
			{"zero lead time", 0, 1.65},
			{"negative lead time", -2, 1.65},
			{"zero service z", 2, 0},
			{"negative service z", 2, -1.65},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := analyzer.SafetyStock(ctx, table, 1, tt.lead, tt.z)
				require.Error(t, err)
				assert.Equal(t, apperrors.KindInvalidParameter, apperrors.KindOf(err))
			})
		}
	})
}

func TestSampleStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"two values", []float64{10, 20}, math.Sqrt(50)},
		{"three values", []float64{10, 20, 30}, 10},
		{"constant", []float64{7, 7, 7}, 0},
		{"single value", []float64{7}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu := 0.0
			if len(tt.values) > 0 {
				mu = mean(tt.values)
			}
			assert.InDelta(t, tt.want, sampleStdDev(tt.values, mu), 1e-9)
		})
	}
}
