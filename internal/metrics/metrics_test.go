package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromSinkCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewPromSink(reg)
	require.NoError(t, err)

	s.ObserveMemo(true)
	s.ObserveMemo(false)
	s.ObserveMemo(false)
	s.RecordCalculation("Gravel")
	s.RecordRequest("/calculate", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.memo.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.memo.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.calculations.WithLabelValues("Gravel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.requests.WithLabelValues("/calculate", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.latency))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)
	second, err := NewPromSink(reg)
	require.NoError(t, err)

	first.RecordCalculation("Ice")
	assert.Equal(t, 1.0, testutil.ToFloat64(second.calculations.WithLabelValues("Ice")))
}
