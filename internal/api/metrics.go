package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// httpMetrics holds the Prometheus collectors for the HTTP layer.
type httpMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	m := &httpMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "playlists_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by endpoint and method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "playlists_requests_in_flight",
				Help: "Number of HTTP requests currently being served.",
			},
		),
	}
	reg.MustRegister(m.requestDuration, m.requestsInFlight)
	return m
}

// middleware records request duration and in-flight count.
func (m *httpMetrics) middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy before c.Next(): fiber returns slices backed by the fasthttp buffer.
		endpoint := sanitizeEndpoint(string([]byte(c.Path())))
		method := string([]byte(c.Method()))

		m.requestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		status := strconv.Itoa(c.Response().StatusCode())
		m.requestDuration.WithLabelValues(endpoint, method, status).Observe(time.Since(start).Seconds())
		m.requestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint folds unknown paths into one label to bound cardinality.
func sanitizeEndpoint(path string) string {
	switch path {
	case "/api/youtube", "/health/live":
		return path
	default:
		return "other"
	}
}

// handler serves the Prometheus exposition for reg via fiber.
func (m *httpMetrics) handler(reg *prometheus.Registry) fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
