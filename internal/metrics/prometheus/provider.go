package prometheus

import (
	"strconv"
	"time"

	"skillshare-backend/internal/metrics"
)

type MetricsProvider struct{}

func NewMetricsProvider() metrics.Provider {
	return &MetricsProvider{}
}

func (p *MetricsProvider) IncrementHTTPRequests(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func (p *MetricsProvider) RecordHTTPRequestDuration(method, route string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementCacheHits() {
	CacheHitsTotal.Inc()
}

func (p *MetricsProvider) IncrementCacheMisses() {
	CacheMissesTotal.Inc()
}

func (p *MetricsProvider) IncrementPostOperations(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementLearningPlanOperations(operation string, success bool) {
	LearningPlanOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
