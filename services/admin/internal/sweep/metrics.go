package sweep

import "github.com/prometheus/client_golang/prometheus"

// Metrics are registered by the caller so tests can use their own registry.
type Metrics struct {
	Expired  prometheus.Counter
	Duration prometheus.Histogram
	Errors   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pilates_members_expired_total",
			Help: "Members moved from active to expired by the sweep",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pilates_sweep_duration_seconds",
			Help:    "Duration of expiration sweeps",
			Buckets: prometheus.DefBuckets,
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pilates_sweep_errors_total",
			Help: "Expiration sweeps that failed",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Expired, m.Duration, m.Errors)
	}
	return m
}
