package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserveProbe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveProbe(ResultFound)
	m.ObserveProbe(ResultFound)
	m.ObserveProbe(ResultMissing)
	m.ObserveProbe(ResultError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.probes.WithLabelValues(ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.probes.WithLabelValues(ResultMissing)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.probes.WithLabelValues(ResultError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.newChapters))
}

func TestMetricsObserveCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCheck(1500 * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.checkDuration))
	count, err := testutil.GatherAndCount(reg, "mangatrack_check_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
