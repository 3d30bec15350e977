package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pizzashop/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// NewMetricsMiddleware counts requests and observes their latency by route.
func NewMetricsMiddleware(reg prometheus.Registerer) (echo.MiddlewareFunc, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "path"},
	)

	if err := reg.Register(requests); err != nil {
		return nil, err
	}
	if err := reg.Register(duration); err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			status := c.Response().Status
			requests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			duration.WithLabelValues(c.Request().Method, path).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}, nil
}

// NewRequestLogger logs one structured line per request.
func NewRequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}

			logger.Log(c.Request().Context(), level, "HTTP request", attrs...)
			return nil
		},
	})
}

// NewContextLogger stores a request-scoped logger tagged with the request ID
// in the request context. Use it after middleware.RequestID.
func NewContextLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			scoped := logger.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(req.WithContext(logging.WithCtx(req.Context(), scoped)))
			return next(c)
		}
	}
}
