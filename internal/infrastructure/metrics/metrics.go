package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matsols",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "matsols",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Chat replies by selected template
	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matsols",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Chat replies by reply rule",
		},
		[]string{"rule"},
	)

	ChatMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "matsols",
			Subsystem: "chat",
			Name:      "matched_records",
			Help:      "Catalog records referenced per chat reply",
			Buckets:   []float64{0, 1, 2, 3},
		},
	)

	ChatFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matsols",
			Subsystem: "chat",
			Name:      "failures_total",
			Help:      "Chat requests that failed by cause",
		},
		[]string{"cause"},
	)

	ChatTurnsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "matsols",
			Subsystem: "chat",
			Name:      "turns_pruned_total",
			Help:      "Conversation turns removed by retention",
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matsols",
			Subsystem: "catalog",
			Name:      "cache_lookups_total",
			Help:      "Degree catalog cache lookups",
		},
		[]string{"backend", "result"},
	)
)

// RecordRequest records one finished HTTP request.
func RecordRequest(method, endpoint string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// RecordChatReply records the rule and match count of a reply.
func RecordChatReply(rule string, matched int) {
	ChatRepliesTotal.WithLabelValues(rule).Inc()
	ChatMatches.Observe(float64(matched))
}

// RecordChatFailure records a failed chat request.
func RecordChatFailure(cause string) {
	ChatFailuresTotal.WithLabelValues(cause).Inc()
}

// RecordPruned adds removed turns to the retention counter.
func RecordPruned(removed int64) {
	if removed > 0 {
		ChatTurnsPrunedTotal.Add(float64(removed))
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(backend, result).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
