// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collegecompass_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collegecompass_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CatalogResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "collegecompass_catalog_search_results",
			Help:    "Number of colleges returned by catalog searches",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		},
	)

	UnsupportedFilters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collegecompass_catalog_unsupported_filters_total",
			Help: "Catalog searches that set a filter dimension which is not evaluated yet",
		},
		[]string{"filter"},
	)

	Toggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collegecompass_toggles_total",
			Help: "Favorite, saved resource and UI toggles",
		},
		[]string{"kind"},
	)
)

// ObserveRequest records one served request. route is the registered path, not the raw URL.
func ObserveRequest(method, route string, code int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveSearch(total int, unsupported []string) {
	CatalogResults.Observe(float64(total))
	for _, f := range unsupported {
		UnsupportedFilters.WithLabelValues(f).Inc()
	}
}
