package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeEmpty   = "empty"
	OutcomeSkipped = "skipped"
)

// Metrics holds the Prometheus collectors for extraction, the NLP cache and
// batch processing.
type Metrics struct {
	ExtractionsTotal *prometheus.CounterVec
	RuleDuration     *prometheus.HistogramVec
	RulePanicsTotal  *prometheus.CounterVec

	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	BatchItemsTotal *prometheus.CounterVec
}

// New returns the process-wide Metrics, registering collectors with the
// default registry on first use. Registering twice would panic, so every
// caller shares one instance.
//
// Metrics:
//   - extractor_extractions_total{outcome}
//   - extractor_rule_duration_seconds{rule}
//   - extractor_rule_panics_total{rule}
//   - nlp_cache_hits_total / nlp_cache_misses_total
//   - batch_items_total{outcome}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ExtractionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extractor_extractions_total",
					Help: "Total number of texts run through the extraction pipeline",
				},
				[]string{"outcome"},
			),
			RuleDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "extractor_rule_duration_seconds",
					Help:    "Duration of a single pipeline rule in seconds",
					Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
				},
				[]string{"rule"},
			),
			RulePanicsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extractor_rule_panics_total",
					Help: "Rules that panicked and were degraded to an empty result",
				},
				[]string{"rule"},
			),
			CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "nlp_cache_hits_total",
				Help: "Annotated documents served from the cache",
			}),
			CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "nlp_cache_misses_total",
				Help: "Annotations that had to go to the engine",
			}),
			BatchItemsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "batch_items_total",
					Help: "Batch entries processed, by outcome",
				},
				[]string{"outcome"},
			),
		}
	})
	return globalMetrics
}
