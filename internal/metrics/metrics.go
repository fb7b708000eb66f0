package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ota"

// update check outcomes
const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

type Metrics struct {
	updateCheck *prometheus.CounterVec
	delivery    *prometheus.CounterVec
	duration    prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updateCheck: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "update_check_total",
			Help:      "Update checks by outcome.",
		}, []string{"outcome"}),
		delivery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_total",
			Help:      "Offered updates by delivery type.",
		}, []string{"type"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_check_duration_seconds",
			Help:      "Update check latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
	}
	reg.MustRegister(m.updateCheck, m.delivery, m.duration)
	return m
}

func (m *Metrics) ObserveUpdateCheck(outcome string, start time.Time) {
	m.updateCheck.WithLabelValues(outcome).Inc()
	m.duration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveDelivery(deliveryType string) {
	m.delivery.WithLabelValues(deliveryType).Inc()
}
