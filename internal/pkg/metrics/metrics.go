package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "payments"

type PaymentMetrics struct {
	processed *prometheus.CounterVec
	duration  prometheus.Histogram
}

func NewPaymentMetrics(registerer prometheus.Registerer) (*PaymentMetrics, error) {
	m := &PaymentMetrics{
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processed_total",
			Help:      "Payments processed, by scheme and outcome.",
		}, []string{"scheme", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Duration of a single payment decision including store calls.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
	}

	for _, c := range []prometheus.Collector{m.processed, m.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register payment metrics")
		}
	}

	return m, nil
}

func (m *PaymentMetrics) ObservePayment(scheme fmt.Stringer, outcome string, elapsed time.Duration) {
	m.processed.WithLabelValues(scheme.String(), outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

type logFunc func(message string, args ...any)

func (l logFunc) Println(v ...any) {
	l("metrics handler error", "details", fmt.Sprint(v...))
}

func NewDebugMux(gatherer prometheus.Gatherer, logger logging.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog:      logFunc(logger.Warn),
		ErrorHandling: promhttp.HTTPErrorOnError,
	}))

	return mux
}
