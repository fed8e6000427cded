package domain

import "slices"

// Catalog maps each product to the single center that stocks it.
// Centers partition the product space: no product is stocked twice.
type Catalog map[string]Location

// CentersFor returns the distinct centers stocking at least one product of
// the order. Products absent from the catalog contribute no requirement.
// The result is sorted so callers iterate deterministically.
func (c Catalog) CentersFor(order Order) []Location {
	seen := make(map[Location]struct{}, 4)
	centers := make([]Location, 0, 4)

	for product := range order {
		center, ok := c[product]
		if !ok {
			continue
		}
		if _, dup := seen[center]; dup {
			continue
		}
		seen[center] = struct{}{}
		centers = append(centers, center)
	}

	slices.Sort(centers)
	return centers
}
