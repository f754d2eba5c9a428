// Package metrics holds the Prometheus collectors of the workflow service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors. Create one per registry.
type Metrics struct {
	Transitions       *prometheus.CounterVec
	Rejections        *prometheus.CounterVec
	NotifierTicks     *prometheus.CounterVec
	NotifierArrivals  *prometheus.CounterVec
	PushPublished     *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	ActiveSubscribers prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "transitions_total",
			Help:      "Order status transitions written, by kind and destination.",
		}, []string{"kind", "to"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Name:      "transition_rejections_total",
			Help:      "Transition attempts refused before any write, by reason code.",
		}, []string{"reason"}),
		NotifierTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "notifier",
			Name:      "ticks_total",
			Help:      "Notifier polls by stage and result.",
		}, []string{"stage", "result"}),
		NotifierArrivals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "notifier",
			Name:      "arrivals_total",
			Help:      "Orders newly seen in a stage.",
		}, []string{"stage"}),
		PushPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "push",
			Name:      "published_total",
			Help:      "Notification batches handed to a push channel, by channel and result.",
		}, []string{"channel", "result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "laundry",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ActiveSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "laundry",
			Subsystem: "notifier",
			Name:      "subscribers",
			Help:      "Open notification subscriptions.",
		}),
	}

	reg.MustRegister(
		m.Transitions,
		m.Rejections,
		m.NotifierTicks,
		m.NotifierArrivals,
		m.PushPublished,
		m.HTTPRequests,
		m.HTTPDuration,
		m.ActiveSubscribers,
	)
	return m
}
