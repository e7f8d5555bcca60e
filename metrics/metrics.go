package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tangle-network/operator-status/version"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of requests by path, method and status_code.",
	}, []string{"path", "method", "status_code"})
	HttpRequestsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current requests being served.",
	}, []string{"path", "method"})
	HttpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_requests_duration",
		Help: "Duration of HTTP requests in seconds by path and method.",
	}, []string{"path", "method"})
	ExporterLogsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exporter_logs_total",
		Help: "Registry logs processed by event name.",
	}, []string{"event"})
	ExporterHeadBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "exporter_head_block",
		Help: "Highest block the status exporter has indexed.",
	})
	ExporterRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "exporter_run_duration",
		Help:    "Time it took to index one block window.",
		Buckets: prometheus.ExponentialBuckets(0.05, 4, 6),
	})
	HeartbeatsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heartbeats_total",
		Help: "Heartbeats submitted by service and result.",
	}, []string{"service", "result"})
	KeeperChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keeper_checks_total",
		Help: "Operators submitted for a status check by service.",
	}, []string{"service"})
	KeeperSlashReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keeper_slash_reports_total",
		Help: "Slashing reports by service and result.",
	}, []string{"service", "result"})
	TxTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tx_total",
		Help: "Transactions sent by method and result.",
	}, []string{"method", "result"})
	TxConfirmationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tx_confirmation_duration",
		Help:    "Seconds from first send attempt to mined receipt.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"method"})
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "errors_total",
		Help: "Errors by module and operation.",
	}, []string{"module", "operation"})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build information of the running binary.",
	}, []string{"version", "commit", "go_version"})
)

func init() {
	BuildInfo.WithLabelValues(version.Version, version.GitCommit, version.GoVersion).Set(1)
}

// HttpMiddleware implements mux.MiddlewareFunc.
// This middleware uses the path template, so the label value will be /obj/{id} rather than /obj/123 which would risk a cardinality explosion.
func HttpMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := "UNDEFINED"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}
		method := strings.ToUpper(r.Method)
		HttpRequestsInFlight.WithLabelValues(path, method).Inc()
		defer HttpRequestsInFlight.WithLabelValues(path, method).Dec()
		d := &responseWriterDelegator{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(d, r)
		status := strconv.Itoa(d.status)
		HttpRequestsTotal.WithLabelValues(path, method, status).Inc()
		HttpRequestsDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
	})
}

type responseWriterDelegator struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (r *responseWriterDelegator) WriteHeader(code int) {
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseWriterDelegator) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.written += int64(n)
	return n, err
}

// Serve serves prometheus metrics on the given address under /metrics
func Serve(addr string) error {
	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>
<head><title>operator-status metrics</title></head>
<body>
<h1>operator-status metrics</h1>
<p><a href='/metrics'>metrics</a></p>
</body>
</html>`))
	}))
	srv := &http.Server{
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		Handler:      router,
		Addr:         addr,
	}

	return srv.ListenAndServe()
}
