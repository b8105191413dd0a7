package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-wide counters, exposed on /metrics.
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deskpilot_http_requests_total",
		Help: "HTTP requests handled, by method, path and status code.",
	}, []string{"method", "path", "status"})

	DispatchActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deskpilot_dispatch_actions_total",
		Help: "Dispatched actions, by action kind.",
	}, []string{"kind"})

	DispatchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deskpilot_dispatch_failures_total",
		Help: "Failed dispatches, by failure class (validation or collaborator).",
	}, []string{"class"})
)
