package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup result label values
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Reload status label values
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Lookup metrics
	LookupsTotal *prometheus.CounterVec

	// Dataset metrics
	DatasetRecords      prometheus.Gauge
	DatasetReloadsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aminoapi_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aminoapi_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPResponseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aminoapi_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(32, 4, 6),
			},
			[]string{"method", "route"},
		),

		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aminoapi_lookups_total",
				Help: "Total number of amino acid lookups by result",
			},
			[]string{"result"},
		),

		DatasetRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "aminoapi_dataset_records",
				Help: "Number of records in the active dataset",
			},
		),
		DatasetReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aminoapi_dataset_reloads_total",
				Help: "Total number of dataset reload attempts",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSize,
		m.LookupsTotal,
		m.DatasetRecords,
		m.DatasetReloadsTotal,
	)

	return m
}

// ObserveLookup records a lookup result. Safe to call on a nil receiver.
func (m *Metrics) ObserveLookup(found bool) {
	if m == nil {
		return
	}
	if found {
		m.LookupsTotal.WithLabelValues(LookupHit).Inc()
	} else {
		m.LookupsTotal.WithLabelValues(LookupMiss).Inc()
	}
}

// ObserveDataset records a load attempt and, on success, the record count.
// Safe to call on a nil receiver.
func (m *Metrics) ObserveDataset(records int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.DatasetReloadsTotal.WithLabelValues(ReloadFailure).Inc()
		return
	}
	m.DatasetReloadsTotal.WithLabelValues(ReloadSuccess).Inc()
	m.DatasetRecords.Set(float64(records))
}

// responseWriter wraps http.ResponseWriter to capture status code and size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// routeLabel returns the matched mux route template so that lookup keys do
// not become label values
func routeLabel(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// HTTPMetricsMiddleware instruments HTTP requests with Prometheus metrics.
// Register it with mux.Router.Use so the route template is available.
func HTTPMetricsMiddleware(metrics *Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			route := routeLabel(r)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			metrics.HTTPResponseSize.WithLabelValues(r.Method, route).Observe(float64(rw.bytesWritten))
		})
	}
}

// RegisterMetricsEndpoint registers the /metrics endpoint
func RegisterMetricsEndpoint(serveMux *http.ServeMux, registry *prometheus.Registry) {
	serveMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
