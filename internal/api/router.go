package api

import (
	"delivery-cost-service/internal/api/handlers"
	"delivery-cost-service/internal/metrics"
	"delivery-cost-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(estimator *services.CostEstimator) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	costHandler := &handlers.DeliveryCostHandler{Estimator: estimator}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/calculate-delivery-cost", costHandler.Calculate)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
