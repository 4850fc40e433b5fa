// Package metrics exposes Prometheus instrumentation for the API server.
package metrics

import (
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chonost/manuscript-os/pkg/apperror"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_acquired_connections",
		Help: "Connections currently acquired from the pool",
	})

	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_total_connections",
		Help: "Total connections held by the pool",
	})
)

// Middleware records request counts and latency per route.
// The route template (not the raw URI) is used to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := c.Response().Status
			if err != nil {
				switch e := err.(type) {
				case *echo.HTTPError:
					status = e.Code
				case *apperror.Error:
					status = e.HTTPStatus
				}
			}

			HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// ObservePool samples pgx pool statistics into the pool gauges.
func ObservePool(pool *pgxpool.Pool) {
	stat := pool.Stat()
	DBPoolAcquiredConns.Set(float64(stat.AcquiredConns()))
	DBPoolTotalConns.Set(float64(stat.TotalConns()))
}

// Handler returns the Prometheus exposition endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
