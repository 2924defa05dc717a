package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourism_queries_total",
			Help: "Total number of tourism queries handled, by outcome",
		},
		[]string{"outcome"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tourism_query_duration_seconds",
			Help: "Duration of query handling in seconds",
		},
		[]string{"outcome"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourism_provider_requests_total",
			Help: "Total number of outbound provider calls, by provider and status",
		},
		[]string{"provider", "status"},
	)

	GeocodeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourism_geocode_cache_lookups_total",
			Help: "Geocode cache lookups, by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)
