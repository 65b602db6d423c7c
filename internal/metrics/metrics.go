package metrics

import "time"

type Provider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()

	IncrementPostOperations(operation string, success bool)
	IncrementLearningPlanOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
