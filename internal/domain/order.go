package domain

// Order maps product identifiers to requested quantities.
// After normalization every entry has a strictly positive quantity.
type Order map[string]float64
