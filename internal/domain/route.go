package domain

// Route is the ordered sequence of locations a single delivery trip visits.
// A valid route starts at a center and ends at the hub; the hub may also
// appear as an intermediate waypoint between center visits.
type Route []Location
