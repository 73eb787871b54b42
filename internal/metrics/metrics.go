package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeLoaded = "loaded"
	OutcomeEmpty  = "empty"
	OutcomeError  = "error"
	OutcomeStale  = "stale"
)

// Metrics provides observability for profile fetch cycles.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
}

// New creates the fetch collectors and registers them with reg. A nil
// registerer leaves them unregistered, which keeps tests independent.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FetchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notary_profile_fetch_total",
			Help: "Total profile fetch cycles by outcome",
		}, []string{"outcome"}), // outcome: loaded, empty, error, stale

		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "notary_profile_fetch_duration_seconds",
			Help:    "Duration of the directory lookup including decoding",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveFetch records one completed fetch cycle.
func (m *Metrics) ObserveFetch(outcome string, d time.Duration) {
	if m != nil {
		m.FetchTotal.WithLabelValues(outcome).Inc()
		m.FetchDuration.Observe(d.Seconds())
	}
}

// IncrementStale records a result discarded because a newer cycle was applied.
func (m *Metrics) IncrementStale() {
	if m != nil {
		m.FetchTotal.WithLabelValues(OutcomeStale).Inc()
	}
}
