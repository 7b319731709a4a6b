// Package metrics defines all custom Prometheus metrics for the inventory
// client. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// RequestsTotal counts API requests issued by the client.
// Labels:
//   - resource: endpoint family ("auth", "products", "categories", ...)
//   - operation: "list", "get", "create", "update", "delete", "login", ...
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests issued.",
	},
	[]string{"resource", "operation"},
)

// RequestErrorsTotal counts failed API requests.
// Label:
//   - reason: "transport", "unauthorized", "not_found", "validation", "server"
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of API requests that failed, by reason.",
	},
	[]string{"reason"},
)

// RequestDuration measures wall time per request from send to decode.
// Label:
//   - resource: endpoint family
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests from send to response decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)
