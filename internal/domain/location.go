package domain

// Location identifies a node in the delivery network: a supply center
// (e.g. "C1") or the hub ("L1"). The set of locations is fixed at startup.
type Location string
