package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viewtube_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// MediaStoreOperations counts object store calls by operation and outcome.
	MediaStoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viewtube_media_store_operations_total",
		Help: "Total number of media store operations by type and outcome",
	}, []string{"operation", "outcome"})

	// ToggleOperations counts relationship toggles by relation and resulting state.
	ToggleOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "viewtube_toggle_operations_total",
		Help: "Total number of relationship toggles by relation and resulting state",
	}, []string{"relation", "state"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
