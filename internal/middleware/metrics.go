package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures, labelled by command name.
// The cache package's client hook increments it.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipebox_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// ImageUploads counts recipe image uploads by outcome ("accepted" or "rejected").
var ImageUploads = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipebox_image_uploads_total",
		Help: "Total number of recipe image upload attempts",
	},
	[]string{"outcome"},
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
