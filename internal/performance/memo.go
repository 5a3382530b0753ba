package performance

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/eytandecker/at502-perf/pkg/types"
)

// MemoRecorder observes memo table lookups. Implemented by metrics.PromSink.
type MemoRecorder interface {
	ObserveMemo(hit bool)
}

// Estimator wraps Estimate with a bounded memo table keyed by the input
// tuple. Outputs never change for identical inputs, so entries are never
// invalidated, only evicted.
type Estimator struct {
	cache    *lru.Cache[types.PerformanceInputs, types.PerformanceOutputs]
	recorder MemoRecorder
}

// NewEstimator creates an Estimator holding up to size results.
// A size of zero or less disables memoization.
func NewEstimator(size int, rec MemoRecorder) *Estimator {
	e := &Estimator{recorder: rec}
	if size > 0 {
		// lru.New only fails for a non-positive size.
		e.cache, _ = lru.New[types.PerformanceInputs, types.PerformanceOutputs](size)
	}
	return e
}

// Estimate returns the outputs for in, from the memo table when present.
func (e *Estimator) Estimate(in types.PerformanceInputs) types.PerformanceOutputs {
	if e.cache == nil {
		return Estimate(in)
	}
	if out, ok := e.cache.Get(in); ok {
		e.observe(true)
		return out
	}
	e.observe(false)
	out := Estimate(in)
	e.cache.Add(in, out)
	return out
}

// Len returns the number of memoized results.
func (e *Estimator) Len() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

func (e *Estimator) observe(hit bool) {
	if e.recorder != nil {
		e.recorder.ObserveMemo(hit)
	}
}
