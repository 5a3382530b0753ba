// Package metrics records estimator and HTTP activity in Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink holds the Prometheus collectors for the service.
type PromSink struct {
	calculations *prometheus.CounterVec
	memo         *prometheus.CounterVec
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// NewPromSink registers the collectors on reg. If reg is nil, the default
// registerer is used. Collectors that are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "at502_calculations_total",
			Help: "Performance calculations by surface",
		}, []string{"surface"}),
		memo: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "at502_memo_lookups_total",
			Help: "Estimator memo table lookups",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "at502_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "at502_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	var err error
	if s.calculations, err = register(reg, s.calculations); err != nil {
		return nil, err
	}
	if s.memo, err = register(reg, s.memo); err != nil {
		return nil, err
	}
	if s.requests, err = register(reg, s.requests); err != nil {
		return nil, err
	}
	if s.latency, err = register(reg, s.latency); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveMemo counts a memo table hit or miss.
func (s *PromSink) ObserveMemo(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	s.memo.WithLabelValues(result).Inc()
}

// RecordCalculation counts one performance calculation on surface.
func (s *PromSink) RecordCalculation(surface string) {
	s.calculations.WithLabelValues(surface).Inc()
}

// RecordRequest records the outcome and latency of one HTTP request.
func (s *PromSink) RecordRequest(route string, code int, d time.Duration) {
	s.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	s.latency.WithLabelValues(route).Observe(d.Seconds())
}
