package domain

// Network is the delivery topology: directed distances between locations,
// the configured supply centers, and the common hub every route ends at.
// It is built once at startup and treated as read-only afterwards, so it is
// safe for concurrent request handling without locking.
type Network struct {
	Hub       Location
	Centers   []Location
	UnitCost  float64
	Distances map[Location]map[Location]float64
}

// Distance returns the directed distance between two locations.
// The second return is false when the pair has no entry, meaning to is
// unreachable from from.
func (n *Network) Distance(from, to Location) (float64, bool) {
	row, ok := n.Distances[from]
	if !ok {
		return 0, false
	}
	d, ok := row[to]
	return d, ok
}
