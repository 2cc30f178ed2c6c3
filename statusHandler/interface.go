package statusHandler

import (
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// RunStatusHandler is notified about the progress of a calibration run
type RunStatusHandler interface {
	WarmupBatchExecuted(m metric.Metric)
	BatchExecuted(m metric.Metric, sample stats.Sample)
	BatchFailed(m metric.Metric)
	Close()
	IsInterfaceNil() bool
}
