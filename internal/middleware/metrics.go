package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "settlement_service",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests by caller role.",
	}, []string{"role"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settlement_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route, caller role and status.",
	}, []string{"method", "route", "role", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "settlement_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds by route and status class.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route", "class"})
)

// metricsRole - роль из заголовка шлюза; всё остальное считается анонимным,
// чтобы произвольные значения не раздували кардинальность.
func metricsRole(r *http.Request) string {
	role := entities.Role(r.Header.Get(HeaderUserRole))
	if !role.Valid() {
		return "anonymous"
	}
	return string(role)
}

// Metrics считает запросы по шаблону маршрута chi, а не по пути: id подзаказов и заявок в метки не попадают.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := metricsRole(r)
		httpInFlight.WithLabelValues(role).Inc()
		defer httpInFlight.WithLabelValues(role).Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, role, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rw.status/100)+"xx").
			Observe(time.Since(start).Seconds())
	})
}
