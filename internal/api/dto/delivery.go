package dto

// Response body for a successful cost calculation.
type DeliveryCostResponse struct {
	MinimumDeliveryCost float64 `json:"minimum_delivery_cost"`
}
