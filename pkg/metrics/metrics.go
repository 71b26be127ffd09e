package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry      *prometheus.Registry
	Submissions   *prometheus.CounterVec
	InsertLatency prometheus.Histogram
}

// New creates the metrics on a private registry so several instances can
// coexist (one per router in tests).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "next_form_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"result"}),
		InsertLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "next_form_storage_insert_duration_seconds",
			Help:    "Latency of storage backend inserts",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveSubmission records the outcome of one contact submission.
func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result).Inc()
}

// ObserveInsert records how long a storage insert took.
func (m *Metrics) ObserveInsert(d time.Duration) {
	if m == nil {
		return
	}
	m.InsertLatency.Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
