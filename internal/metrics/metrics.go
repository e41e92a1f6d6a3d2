package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics owns a private registry so that building more than one router
// (tests do) never panics on duplicate registration.
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	comparisons     *prometheus.CounterVec
	catalogGateways prometheus.Gauge
	catalogOptions  prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lf3m_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lf3m_comparisons_total",
				Help: "Fee comparisons served, by payment method and result state.",
			},
			[]string{"payment_method", "state"},
		),
		catalogGateways: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lf3m_catalog_gateways",
			Help: "Gateways in the loaded catalog.",
		}),
		catalogOptions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lf3m_catalog_fee_options",
			Help: "Fee options in the loaded catalog.",
		}),
	}
}

func (m *Metrics) RecordRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func (m *Metrics) IncrComparison(paymentMethod, state string) {
	m.comparisons.WithLabelValues(paymentMethod, state).Inc()
}

func (m *Metrics) SetCatalogSize(gateways, options int) {
	m.catalogGateways.Set(float64(gateways))
	m.catalogOptions.Set(float64(options))
}
