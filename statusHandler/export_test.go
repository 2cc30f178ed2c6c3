package statusHandler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// BatchesCounter -
func (psh *PrometheusStatusHandler) BatchesCounter(m metric.Metric) prometheus.Counter {
	return psh.batches.WithLabelValues(m.String())
}

// WarmupBatchesCounter -
func (psh *PrometheusStatusHandler) WarmupBatchesCounter(m metric.Metric) prometheus.Counter {
	return psh.warmupBatches.WithLabelValues(m.String())
}

// FailedBatchesCounter -
func (psh *PrometheusStatusHandler) FailedBatchesCounter(m metric.Metric) prometheus.Counter {
	return psh.failedBatches.WithLabelValues(m.String())
}

// TransactionsCounter -
func (psh *PrometheusStatusHandler) TransactionsCounter(m metric.Metric) prometheus.Counter {
	return psh.transactions.WithLabelValues(m.String())
}

// LastCostPerTxGauge -
func (psh *PrometheusStatusHandler) LastCostPerTxGauge(m metric.Metric) prometheus.Gauge {
	return psh.lastCostPerTx.WithLabelValues(m.String())
}

// RecordedMetricsGauge -
func (psh *PrometheusStatusHandler) RecordedMetricsGauge() prometheus.Gauge {
	return psh.recordedMetricsNb
}
