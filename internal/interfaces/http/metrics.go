package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "biblioteca_stub"

// requestsTotal cuenta las peticiones HTTP atendidas por el stub.
// Labels: method, path (ruta registrada, no la URL cruda), status.
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP atendidas.",
	},
	[]string{"method", "path", "status"},
)

// requestDuration mide la duración de cada petición.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// MetricsMiddleware instrumenta cada petición.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		requestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone el registro por defecto de Prometheus en Fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
