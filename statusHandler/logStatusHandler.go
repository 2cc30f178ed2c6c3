package statusHandler

import (
	"sync"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// LogStatusHandler logs the run progress and keeps the number of failed batches
type LogStatusHandler struct {
	mut           sync.RWMutex
	failedBatches map[metric.Metric]int
}

// NewLogStatusHandler creates a new instance of type LogStatusHandler
func NewLogStatusHandler() *LogStatusHandler {
	return &LogStatusHandler{
		failedBatches: make(map[metric.Metric]int),
	}
}

// WarmupBatchExecuted logs the discarded batch
func (lsh *LogStatusHandler) WarmupBatchExecuted(m metric.Metric) {
	log.Trace("warmup batch executed", "metric", m.String())
}

// BatchExecuted logs the per transaction cost of the batch
func (lsh *LogStatusHandler) BatchExecuted(m metric.Metric, sample stats.Sample) {
	if sample.Count == 0 {
		return
	}

	log.Debug("batch executed", "metric", m.String(),
		"transactions", sample.Count,
		"cost per transaction", sample.TotalCost/sample.Count)
}

// BatchFailed counts and logs the failed batch
func (lsh *LogStatusHandler) BatchFailed(m metric.Metric) {
	lsh.mut.Lock()
	lsh.failedBatches[m]++
	numFailed := lsh.failedBatches[m]
	lsh.mut.Unlock()

	log.Warn("batch failed", "metric", m.String(), "failed batches", numFailed)
}

// FailedBatches returns the number of failed batches of a metric
func (lsh *LogStatusHandler) FailedBatches(m metric.Metric) int {
	lsh.mut.RLock()
	defer lsh.mut.RUnlock()

	return lsh.failedBatches[m]
}

// Close logs the total number of failed batches, if any
func (lsh *LogStatusHandler) Close() {
	lsh.mut.RLock()
	defer lsh.mut.RUnlock()

	total := 0
	for _, numFailed := range lsh.failedBatches {
		total += numFailed
	}
	if total > 0 {
		log.Warn("run finished with failed batches", "total", total)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (lsh *LogStatusHandler) IsInterfaceNil() bool {
	return lsh == nil
}
