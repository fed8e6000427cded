package ports

import "delivery-cost-service/internal/domain"

// Contract for looking up directed distances between locations.
// Implementations must be safe for concurrent readers.
type DistanceTable interface {
	// Distance returns the distance from one location to another. The second
	// return is false when the pair is unknown (destination unreachable).
	Distance(from, to domain.Location) (float64, bool)
}
