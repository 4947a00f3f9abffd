// Package metrics provides Prometheus metrics for the card search service.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hemosearch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hemosearch_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Query Parsing Metrics
	ParseErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hemosearch_parse_errors_total",
			Help: "Total number of query strings that failed to parse",
		},
		[]string{"reason"},
	)

	ParsedQueryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hemosearch_parsed_query_cache_hits_total",
			Help: "Parsed-query LRU cache hit count",
		},
	)

	ParsedQueryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hemosearch_parsed_query_cache_misses_total",
			Help: "Parsed-query LRU cache miss count",
		},
	)

	// Search Evaluation Metrics
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hemosearch_search_duration_seconds",
			Help:    "Time taken to evaluate a query against the full catalog",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hemosearch_search_results_returned",
			Help:    "Number of cards a search matched",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Devoured-By Cache Metrics
	DevouredByCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hemosearch_devoured_by_cache_hits_total",
			Help: "Devoured-by subquery cache hits within a single search",
		},
	)

	DevouredByCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hemosearch_devoured_by_cache_misses_total",
			Help: "Devoured-by subquery cache misses within a single search",
		},
	)

	// Rate Limiting Metrics
	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hemosearch_rate_limited_requests_total",
			Help: "Requests rejected by the per-IP search rate limiter",
		},
	)

	// Corpus Metrics
	CorpusCardsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hemosearch_corpus_cards_total",
			Help: "Number of cards currently loaded from the corpus store",
		},
	)
)
