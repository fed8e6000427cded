package services

import (
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/metrics"
	"delivery-cost-service/internal/ports"
	"math"
)

// BestRoute finds the cheapest route that starts at start, visits every
// center in needed, and ends at hub. The hub may also be transited between
// center visits when that is cheaper than a direct center-to-center leg.
//
// The search enumerates every permutation of the centers still to visit and,
// for each permutation, every subset of positions at which the hub can be
// inserted as an extra waypoint (a bitmask over the gaps before each stop).
// The enumeration is exhaustive, so the returned cost is the true minimum.
// With the fixed topology the search space is at most 3! * 2^3 = 48
// candidate routes per start, which makes brute force cheaper than any
// shortest-path machinery would be.
//
// When no candidate route is fully reachable (or start is not required and
// nothing is left to visit), the route is nil and the cost is +Inf.
func BestRoute(
	table ports.DistanceTable,
	hub domain.Location,
	start domain.Location,
	needed []domain.Location,
	unitCost float64,
) (domain.Route, float64) {
	// The starting center, if itself required, is satisfied by being the
	// route's first stop.
	startRequired := false
	toVisit := make([]domain.Location, 0, len(needed))
	for _, center := range needed {
		if center == start {
			startRequired = true
			continue
		}
		toVisit = append(toVisit, center)
	}

	if len(toVisit) == 0 {
		if !startRequired {
			// Start was never required; no valid route begins here.
			return nil, math.Inf(1)
		}
		route := domain.Route{start, hub}
		metrics.RouteCandidates.Inc()
		return route, RouteCost(table, route, unitCost)
	}

	var best domain.Route
	bestCost := math.Inf(1)

	for _, perm := range permutations(toVisit) {
		for mask := 0; mask < 1<<len(perm); mask++ {
			route := make(domain.Route, 0, 2*len(perm)+2)
			route = append(route, start)

			for i, stop := range perm {
				// Bit i set: transit the hub before the i-th stop.
				if mask&(1<<i) != 0 {
					route = append(route, hub)
				}
				route = append(route, stop)
			}

			if route[len(route)-1] != hub {
				route = append(route, hub)
			}

			metrics.RouteCandidates.Inc()

			cost := RouteCost(table, route, unitCost)
			if cost < bestCost {
				bestCost = cost
				best = route
			}
		}
	}

	return best, bestCost
}

// RouteCost sums the directed distances of consecutive route legs, weighted
// by the per-unit-distance cost. A leg without a table entry makes the whole
// route unreachable: the result is +Inf and the route loses every comparison.
func RouteCost(table ports.DistanceTable, route domain.Route, unitCost float64) float64 {
	if len(route) < 2 {
		return math.Inf(1)
	}

	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		d, ok := table.Distance(route[i], route[i+1])
		if !ok {
			return math.Inf(1)
		}
		total += d * unitCost
	}

	return total
}

// permutations returns every ordering of items. Order of the generated
// permutations is unspecified; callers take a minimum over all of them.
func permutations(items []domain.Location) []domain.Route {
	if len(items) <= 1 {
		single := make(domain.Route, len(items))
		copy(single, items)
		return []domain.Route{single}
	}

	result := make([]domain.Route, 0, len(items)*2)
	for i := range items {
		rest := make([]domain.Location, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)

		for _, tail := range permutations(rest) {
			perm := make(domain.Route, 0, len(items))
			perm = append(perm, items[i])
			perm = append(perm, tail...)
			result = append(result, perm)
		}
	}

	return result
}
