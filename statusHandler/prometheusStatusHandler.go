package statusHandler

import (
	"fmt"
	"sync"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

var log = logger.GetOrCreate("statusHandler")

const (
	namespace   = "estimator"
	metricLabel = "metric"
)

// PrometheusStatusHandler keeps the run status in a dedicated prometheus registry
type PrometheusStatusHandler struct {
	registry          *prometheus.Registry
	warmupBatches     *prometheus.CounterVec
	batches           *prometheus.CounterVec
	failedBatches     *prometheus.CounterVec
	transactions      *prometheus.CounterVec
	lastCostPerTx     *prometheus.GaugeVec
	recordedMetricsNb prometheus.Gauge
	mutSeen           sync.Mutex
	seen              map[metric.Metric]struct{}
}

// NewPrometheusStatusHandler creates the run status collectors and registers them
func NewPrometheusStatusHandler() (*PrometheusStatusHandler, error) {
	psh := &PrometheusStatusHandler{
		registry: prometheus.NewRegistry(),
		warmupBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warmup_batches_total",
			Help:      "Number of discarded warmup batches",
		}, []string{metricLabel}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Number of recorded batches",
		}, []string{metricLabel}),
		failedBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_batches_total",
			Help:      "Number of batches the harness could not execute",
		}, []string{metricLabel}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Number of transactions in recorded batches",
		}, []string{metricLabel}),
		lastCostPerTx: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cost_per_transaction",
			Help:      "Per transaction cost of the last recorded batch, in gas metric units",
		}, []string{metricLabel}),
		recordedMetricsNb: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recorded_metrics",
			Help:      "Number of distinct metrics with at least one recorded batch",
		}),
		seen: make(map[metric.Metric]struct{}),
	}

	collectors := []prometheus.Collector{
		psh.warmupBatches,
		psh.batches,
		psh.failedBatches,
		psh.transactions,
		psh.lastCostPerTx,
		psh.recordedMetricsNb,
	}
	for _, c := range collectors {
		err := psh.registry.Register(c)
		if err != nil {
			return nil, fmt.Errorf("%w while registering run status collectors", err)
		}
	}

	return psh, nil
}

// WarmupBatchExecuted counts a discarded warmup batch
func (psh *PrometheusStatusHandler) WarmupBatchExecuted(m metric.Metric) {
	psh.warmupBatches.WithLabelValues(m.String()).Inc()
}

// BatchExecuted counts a recorded batch and updates the last per transaction cost of the metric
func (psh *PrometheusStatusHandler) BatchExecuted(m metric.Metric, sample stats.Sample) {
	label := m.String()
	psh.batches.WithLabelValues(label).Inc()
	psh.transactions.WithLabelValues(label).Add(float64(sample.Count))
	if sample.Count > 0 {
		psh.lastCostPerTx.WithLabelValues(label).Set(float64(sample.TotalCost) / float64(sample.Count))
	}

	psh.mutSeen.Lock()
	_, found := psh.seen[m]
	if !found {
		psh.seen[m] = struct{}{}
		psh.recordedMetricsNb.Set(float64(len(psh.seen)))
	}
	psh.mutSeen.Unlock()
}

// BatchFailed counts a batch the harness could not execute
func (psh *PrometheusStatusHandler) BatchFailed(m metric.Metric) {
	psh.failedBatches.WithLabelValues(m.String()).Inc()
}

// Gatherer returns the registry holding the run status collectors
func (psh *PrometheusStatusHandler) Gatherer() prometheus.Gatherer {
	return psh.registry
}

// WriteToFile dumps the run status in the prometheus text format, ready for a node exporter textfile collector
func (psh *PrometheusStatusHandler) WriteToFile(path string) error {
	if len(path) == 0 {
		return ErrEmptyFilePath
	}

	err := prometheus.WriteToTextfile(path, psh.registry)
	if err != nil {
		return err
	}

	log.Debug("run status written", "path", path)

	return nil
}

// Close does nothing, the registry is garbage collected with the handler
func (psh *PrometheusStatusHandler) Close() {
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
