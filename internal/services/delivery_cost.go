package services

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/ports"
	"errors"
	"fmt"
	"math"
)

// ErrUnroutable reports that some required center has no path to the hub
// from any candidate start. It is a computed result, not a failure of the
// optimizer, and maps to a client error at the API boundary.
var ErrUnroutable = errors.New("no feasible route to the hub for the required centers")

// CostEstimator computes minimum delivery costs against a fixed topology.
// It holds only immutable configuration, so a single instance serves
// concurrent requests without locking.
type CostEstimator struct {
	Table    ports.DistanceTable
	Catalog  domain.Catalog
	Centers  []domain.Location
	Hub      domain.Location
	UnitCost float64
}

// MinimumDeliveryCost normalizes a raw order, resolves the centers it
// requires, and optimizes the route from every configured center as a
// candidate start, keeping the overall cheapest cost.
//
// Orders with no valid entries, or whose products resolve to no known
// center, cost nothing: there is no route to drive.
func (e *CostEstimator) MinimumDeliveryCost(ctx context.Context, raw map[string]any) (float64, error) {
	order := NormalizeOrder(raw)
	if len(order) == 0 {
		return 0, nil
	}

	needed := e.Catalog.CentersFor(order)
	if len(needed) == 0 {
		return 0, nil
	}

	bestCost := math.Inf(1)

	// The start need not be a required center: any center may serve as the
	// entry point of the route.
	for _, start := range e.Centers {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("minimum delivery cost: %w", err)
		}

		_, cost := BestRoute(e.Table, e.Hub, start, needed, e.UnitCost)
		if cost < bestCost {
			bestCost = cost
		}
	}

	if math.IsInf(bestCost, 1) {
		return 0, ErrUnroutable
	}

	return roundCost(bestCost), nil
}

// roundCost rounds to two decimals for the wire format.
func roundCost(cost float64) float64 {
	return math.Round(cost*100) / 100
}
