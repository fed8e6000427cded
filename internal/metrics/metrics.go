package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// CostRequests counts delivery cost computations by outcome.
	CostRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "delivery_cost_requests_total", Help: "Delivery cost computations by outcome."},
		[]string{"outcome"},
	)
	// RouteCandidates counts candidate routes evaluated by the optimizer.
	RouteCandidates = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_candidates_total", Help: "Candidate routes evaluated by the route optimizer."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors to the registry, plus the
// standard Go and process collectors.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(CostRequests)
		Registry.MustRegister(RouteCandidates)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
