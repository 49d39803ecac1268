// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequests counts handled requests by route, method and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)

	// HTTPLatency observes request latency by route and method.
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)

	// StockAdjustments counts successful one-step stock changes.
	StockAdjustments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "stockee_stock_adjustments_total", Help: "Count of stock increments and decrements"},
		[]string{"direction"},
	)

	// GroupJoins counts users joining groups through invite codes.
	GroupJoins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "stockee_group_joins_total", Help: "Count of successful group joins"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, StockAdjustments, GroupJoins)
}
