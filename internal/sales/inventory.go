package sales

import (
	"context"
	"math"

	apperrors "github.com/jkrouse1998/walmart-supply-chain-analysis/internal/errors"
)

// SafetyStock computes demand variability and the safety-stock / reorder-point
// figures for one store from its full weekly history. serviceZ is the
// caller-supplied service-level multiplier; no z-table lookup is performed.
//
//	safetyStock  = serviceZ * sigma * sqrt(leadTimeWeeks)
//	reorderPoint = mu * leadTimeWeeks + safetyStock
//
// where mu is the mean weekly demand and sigma the Bessel-corrected sample
// standard deviation.
func (a *Analyzer) SafetyStock(ctx context.Context, table Table, storeID int, leadTimeWeeks, serviceZ float64) (*SafetyStockResult, error) {
	if leadTimeWeeks <= 0 {
		return nil, apperrors.InvalidParameter("lead_time_weeks", leadTimeWeeks)
	}
	if serviceZ <= 0 {
		return nil, apperrors.InvalidParameter("service_z", serviceZ)
	}

	history := table.ForStore(storeID)
	if len(history) == 0 {
		return nil, apperrors.UnknownStore(storeID)
	}
	if len(history) < 2 {
		return nil, apperrors.InsufficientHistory(len(history), 2)
	}

	demand := make([]float64, 0, len(history))
	for _, r := range history {
		demand = append(demand, r.WeeklySales)
	}

	mu := mean(demand)
	sigma := sampleStdDev(demand, mu)
	safetyStock := serviceZ * sigma * math.Sqrt(leadTimeWeeks)
	reorderPoint := mu*leadTimeWeeks + safetyStock

	a.logger.InfoContext(ctx, "computed safety stock",
		"store", storeID,
		"lead_time_weeks", leadTimeWeeks,
		"service_z", serviceZ,
		"mean_demand", mu,
		"std_demand", sigma,
		"safety_stock", safetyStock,
		"reorder_point", reorderPoint,
	)

	return &SafetyStockResult{
		Store:         storeID,
		LeadTimeWeeks: leadTimeWeeks,
		ServiceZ:      serviceZ,
		MeanDemand:    mu,
		StdDemand:     sigma,
		SafetyStock:   safetyStock,
		ReorderPoint:  reorderPoint,
	}, nil
}
