// Package metrics содержит Prometheus-метрики аналитического движка.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crime_analytics"

// Metrics - метрики запросов к аналитике и оповещений
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	AlertsPublished *prometheus.CounterVec
}

// New создает и регистрирует метрики в reg, по умолчанию - в глобальном реестре
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total analytics operations by outcome",
		}, []string{"operation", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time to compute an analytics operation",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		AlertsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotspot_alerts_total",
			Help:      "Hotspot alerts by publish result (published, suppressed, failed)",
		}, []string{"result"}),
	}
}

// ObserveRequest фиксирует завершение операции
func (m *Metrics) ObserveRequest(operation string, elapsed time.Duration, outcome string) {
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveAlert фиксирует результат публикации оповещения
func (m *Metrics) ObserveAlert(result string) {
	m.AlertsPublished.WithLabelValues(result).Inc()
}
