// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "critiq_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedAssemblyLatency records feed assembly latency by scope (feed or posts).
	FeedAssemblyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "critiq_feed_assembly_latency_seconds",
		Help:    "Feed assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"scope"})

	// FeedItemsMerged counts items merged into assembled feeds by content type.
	FeedItemsMerged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "critiq_feed_items_merged_total",
		Help: "Total number of items merged into assembled feeds",
	}, []string{"content_type"})

	// FollowEdgeMutations counts follow graph mutations by kind (follow/unfollow).
	FollowEdgeMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "critiq_follow_edge_mutations_total",
		Help: "Total number of follow edge creations and deletions",
	}, []string{"kind"})
)

// ObserveFeedAssembly records the latency of one feed assembly pass.
// Use with defer: defer observability.ObserveFeedAssembly("feed", time.Now())
func ObserveFeedAssembly(scope string, start time.Time) {
	FeedAssemblyLatency.WithLabelValues(scope).Observe(time.Since(start).Seconds())
}
