package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fortune_club",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fortune_club",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served.",
		},
		[]string{"method", "path", "status"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fortune_club",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "HTTP requests currently being served.",
		},
	)

	messagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fortune_club",
			Subsystem: "chat",
			Name:      "messages_sent_total",
			Help:      "Messages stored in conversations.",
		},
	)

	realtimeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fortune_club",
			Subsystem: "realtime",
			Name:      "connections",
			Help:      "Open websocket connections.",
		},
	)
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			requestDuration,
			requestTotal,
			requestsInFlight,
			messagesSent,
			realtimeConnections,
		)
	})
}

func GinMiddleware() gin.HandlerFunc {
	register()

	return func(c *gin.Context) {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		c.Next()

		// Unmatched routes share one label.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
	}
}

func Handler() gin.HandlerFunc {
	register()
	return gin.WrapH(promhttp.Handler())
}

func MessageSent() {
	messagesSent.Inc()
}

func ConnectionOpened() {
	realtimeConnections.Inc()
}

func ConnectionClosed() {
	realtimeConnections.Dec()
}
