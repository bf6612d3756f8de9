package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "offersearch",
			Name:      "search_duration_seconds",
			Help:      "Full search execution time: snapshot, filter, sort, facets",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	OffersScanned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "offersearch",
			Name:      "search_offers_scanned",
			Help:      "Snapshot size scanned per search",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 7),
		},
	)

	OffersMatched = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "offersearch",
			Name:      "search_offers_matched",
			Help:      "Filtered set size per search",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 7),
		},
	)

	OffersIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "offersearch",
			Name:      "offers_ingested_total",
			Help:      "Total offers durably committed via ingestion",
		},
	)

	WipesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "offersearch",
			Name:      "wipes_total",
			Help:      "Total dataset wipe operations",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(OffersScanned)
	prometheus.MustRegister(OffersMatched)
	prometheus.MustRegister(OffersIngested)
	prometheus.MustRegister(WipesTotal)
	engineMetricsRegistered = true
}
