package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mangatrack"

// Probe results.
const (
	ResultFound   = "found"
	ResultMissing = "missing"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Metrics implements services.Observer on top of prometheus collectors.
type Metrics struct {
	probes        *prometheus.CounterVec
	newChapters   prometheus.Counter
	checkDuration prometheus.Histogram
}

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Chapter probes by result.",
		}, []string{"result"}),
		newChapters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_chapters_total",
			Help:      "New chapters detected.",
		}),
		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Duration of a full library update check.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
	}
	reg.MustRegister(m.probes, m.newChapters, m.checkDuration)

	return m
}

func (m *Metrics) ObserveProbe(result string) {
	m.probes.WithLabelValues(result).Inc()
	if result == ResultFound {
		m.newChapters.Inc()
	}
}

func (m *Metrics) ObserveCheck(d time.Duration) {
	m.checkDuration.Observe(d.Seconds())
}
