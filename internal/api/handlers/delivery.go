package handlers

import (
	"delivery-cost-service/internal/api/dto"
	"delivery-cost-service/internal/metrics"
	"delivery-cost-service/internal/platform/obs"
	"delivery-cost-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// DeliveryCostHandler exposes the minimum delivery cost calculation.
type DeliveryCostHandler struct {
	Estimator *services.CostEstimator
}

// Calculate computes the minimum delivery cost for a raw product order.
// The request body is a single JSON object mapping product ids to requested
// quantities; keys the catalog does not know are ignored.
func (h *DeliveryCostHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var raw map[string]any

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&raw); err != nil {
		metrics.CostRequests.WithLabelValues("bad_request").Inc()
		writeError(w, r, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	// A literal null decodes into a nil map without error.
	if raw == nil {
		metrics.CostRequests.WithLabelValues("bad_request").Inc()
		writeError(w, r, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		metrics.CostRequests.WithLabelValues("bad_request").Inc()
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var err error
	done := obs.Time(r.Context(), "calculate_delivery_cost")
	cost, err := h.Estimator.MinimumDeliveryCost(r.Context(), raw)
	done(&err)

	if err != nil {
		if errors.Is(err, services.ErrUnroutable) {
			metrics.CostRequests.WithLabelValues("unroutable").Inc()
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("minimum delivery cost failed: %v", err)
		metrics.CostRequests.WithLabelValues("error").Inc()
		writeError(w, r, http.StatusBadRequest, "could not compute delivery cost")
		return
	}

	metrics.CostRequests.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, dto.DeliveryCostResponse{MinimumDeliveryCost: cost})
}
