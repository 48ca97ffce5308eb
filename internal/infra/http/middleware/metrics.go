package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	contactsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_imported_total",
			Help: "Total number of contact records imported",
		},
	)

	rendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_renders_total",
			Help: "Total number of per-record template renders",
		},
		[]string{"outcome"},
	)

	emailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_emails_sent_total",
			Help: "Total number of outreach emails delivered over SMTP",
		},
	)

	invitesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calendar_invites_generated_total",
			Help: "Total number of .ics events generated",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordImport(records int) {
	contactsImported.Add(float64(records))
}

func RecordRenders(rendered, failed int) {
	rendersTotal.WithLabelValues("ok").Add(float64(rendered))
	rendersTotal.WithLabelValues("error").Add(float64(failed))
}

func RecordEmailsSent(sent int) {
	emailsSent.Add(float64(sent))
}

func RecordInvites(events int) {
	invitesGenerated.Add(float64(events))
}
