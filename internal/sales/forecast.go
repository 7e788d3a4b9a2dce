package sales

import (
	"context"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

// Forecast computes a trailing simple moving-average forecast for one store.
// The store's records are ordered by week ascending and the average of the
// last window weekly sales becomes the prediction for every one of the
// horizon future weeks. This is a naive flat-line extrapolation: each horizon
// step reuses the same computed average, no synthetic values are fed back in.
func (a *Analyzer) Forecast(ctx context.Context, table Table, storeID, window, horizon int) (*ForecastResult, error) {
	if window <= 0 {
		return nil, apperrors.InvalidParameter("window", window)
	}
	if horizon <= 0 {
		return nil, apperrors.InvalidParameter("horizon", horizon)
	}

	history := table.ForStore(storeID)
	if len(history) == 0 {
		return nil, apperrors.UnknownStore(storeID)
	}
	if len(history) < window {
		return nil, apperrors.InsufficientHistory(len(history), window)
	}

	recent := make([]float64, 0, window)
	for _, r := range history[len(history)-window:] {
		recent = append(recent, r.WeeklySales)
	}
	avg := mean(recent)

	values := make([]float64, horizon)
	for i := range values {
		values[i] = avg
	}

	a.logger.InfoContext(ctx, "computed moving-average forecast",
		"store", storeID,
		"window", window,
		"horizon", horizon,
		"history_weeks", len(history),
		"moving_average", avg,
	)

	return &ForecastResult{
		Store:         storeID,
		Window:        window,
		Horizon:       horizon,
		MovingAverage: avg,
		Values:        values,
	}, nil
}
