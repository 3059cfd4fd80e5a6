package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated      *prometheus.CounterVec
	reportDuration        prometheus.Histogram
	transactionsCreated   *prometheus.CounterVec
	transactionsShared    *prometheus.CounterVec
	settlementAmount      prometheus.Histogram
	lastSettlementPerPart prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of settlement reports generated",
			},
			[]string{"report_type", "status"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created",
			},
			[]string{"kind", "shared"},
		),
		transactionsShared: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_shared_total",
				Help: "Total number of share flag updates",
			},
			[]string{"action"},
		),
		settlementAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_amount",
				Help:    "Settlement amount per party in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		lastSettlementPerPart: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "settlement_amount_per_party",
				Help: "Most recently computed amount owed per party",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "reports_generated":
		m.reportsGenerated.WithLabelValues(tags["report_type"], tags["status"]).Inc()
	case "transactions_created":
		m.transactionsCreated.WithLabelValues(tags["kind"], tags["shared"]).Inc()
	case "transactions_shared":
		if action := tags["action"]; action != "" {
			m.transactionsShared.WithLabelValues(action).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "settlement_amount":
		m.settlementAmount.Observe(value)
		m.lastSettlementPerPart.Set(value)
	}
}
