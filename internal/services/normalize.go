package services

import (
	"delivery-cost-service/internal/domain"
	"encoding/json"
	"strconv"
	"strings"
)

// NormalizeOrder filters a raw JSON object into a clean order. Entries
// survive only when the key is non-empty and the value is numeric (or
// numeric-parsable) and strictly positive; everything else is discarded.
func NormalizeOrder(raw map[string]any) domain.Order {
	order := make(domain.Order, len(raw))

	for product, value := range raw {
		if strings.TrimSpace(product) == "" {
			continue
		}

		// NaN fails every comparison, so require qty > 0 explicitly.
		qty, ok := toQuantity(value)
		if !ok || !(qty > 0) {
			continue
		}

		order[product] = qty
	}

	return order
}

// toQuantity coerces a decoded JSON value into a quantity.
func toQuantity(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	case int:
		// Not produced by encoding/json; kept for direct callers.
		return float64(v), true
	default:
		return 0, false
	}
}
