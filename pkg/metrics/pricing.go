package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records price computation timings and quote cache traffic.
type PricingMetrics struct {
	duration *prometheus.HistogramVec
	cacheHit *prometheus.CounterVec
	cacheMis *prometheus.CounterVec
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "price_computation_duration_seconds",
		Help:    "Duration of price computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	cacheHit := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_quote_cache_hits",
		Help: "Price quotes served from the cache.",
	}, []string{"operation"})
	cacheMis := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "price_quote_cache_misses",
		Help: "Price quotes computed after a cache miss.",
	}, []string{"operation"})
	reg.MustRegister(duration, cacheHit, cacheMis)
	return &PricingMetrics{
		duration: duration,
		cacheHit: cacheHit,
		cacheMis: cacheMis,
	}
}

// ObserveComputation records how long the named price operation took.
func (p *PricingMetrics) ObserveComputation(operation string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncCacheHit increments the cache hit counter for the named operation.
func (p *PricingMetrics) IncCacheHit(operation string) {
	if p == nil || p.cacheHit == nil {
		return
	}
	p.cacheHit.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncCacheMiss increments the cache miss counter for the named operation.
func (p *PricingMetrics) IncCacheMiss(operation string) {
	if p == nil || p.cacheMis == nil {
		return
	}
	p.cacheMis.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
