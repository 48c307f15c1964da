package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesRenderedTotal counts rendered quotes by tariff variant.
	QuotesRenderedTotal *prometheus.CounterVec
	// QuoteRenderDuration records the render latency per variant in seconds.
	QuoteRenderDuration *prometheus.HistogramVec
	// DocumentUploadsTotal tracks document archive hand-off outcomes.
	DocumentUploadsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors. Safe to call more than once; collectors already
// registered elsewhere are reused.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesRenderedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_rendered_total",
			Help:      "Count of rendered quotes by tariff variant.",
		}, []string{"variant"})
		QuoteRenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_render_duration_seconds",
			Help:      "Quote render latency per tariff variant.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"variant"})
		DocumentUploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_uploads_total",
			Help:      "Count of document archive hand-offs by outcome.",
		}, []string{"result"})

		QuotesRenderedTotal = registerOrReuse(reg, QuotesRenderedTotal).(*prometheus.CounterVec)
		QuoteRenderDuration = registerOrReuse(reg, QuoteRenderDuration).(*prometheus.HistogramVec)
		DocumentUploadsTotal = registerOrReuse(reg, DocumentUploadsTotal).(*prometheus.CounterVec)
	})
}
