// Package metrics содержит метрики Prometheus сервиса и middleware для gin.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	trackingTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_ticks_total",
			Help: "Tracking loop ticks by outcome.",
		},
		[]string{"result"},
	)
	activeTrackingSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_active_sessions",
			Help: "Number of employees currently tracked.",
		},
	)
	rateLimitEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_entries",
			Help: "Cooldown entries held by the rate limiter.",
		},
	)
	violations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geofence_violations_total",
			Help: "Geofence violations detected by type.",
		},
		[]string{"type"},
	)
	rateLimitRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Clock actions rejected by the cooldown window.",
		},
		[]string{"action"},
	)
	forcedBreakEnds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "break_forced_ends_total",
			Help: "Breaks ended by the duration cap.",
		},
	)
	notifyFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "violation_notify_failures_total",
			Help: "Failed violation deliveries by sink.",
		},
		[]string{"sink"},
	)
)

// Register регистрирует метрики в реестре по умолчанию. Вызывается один раз при старте.
func Register() {
	prometheus.MustRegister(httpRequests, httpLatency, trackingTicks, activeTrackingSessions,
		rateLimitEntries, violations, rateLimitRejections, forcedBreakEnds, notifyFailures)
}

// Handler отдает метрики для /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument считает запросы и их длительность для каждого маршрута gin
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		httpLatency.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// IncTrackingTick учитывает тик отслеживания с его результатом: ok, skipped или location_error
func IncTrackingTick(result string) {
	trackingTicks.WithLabelValues(result).Inc()
}

// SetActiveTrackingSessions выставляет число активных сессий отслеживания
func SetActiveTrackingSessions(n int) {
	activeTrackingSessions.Set(float64(n))
}

// SetRateLimitEntries выставляет число записей в ограничителе частоты
func SetRateLimitEntries(n int) {
	rateLimitEntries.Set(float64(n))
}

// IncViolation учитывает нарушение геозоны по типу
func IncViolation(violationType string) {
	violations.WithLabelValues(violationType).Inc()
}

// IncRateLimitRejection учитывает отметку, отклоненную интервалом ожидания
func IncRateLimitRejection(action string) {
	rateLimitRejections.WithLabelValues(action).Inc()
}

// IncForcedBreakEnd учитывает перерыв, завершенный по лимиту длительности
func IncForcedBreakEnd() {
	forcedBreakEnds.Inc()
}

// IncNotifyFailure учитывает неудачную доставку нарушения в канал sink
func IncNotifyFailure(sink string) {
	notifyFailures.WithLabelValues(sink).Inc()
}
