package disabled

import (
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// runStatusHandler is the disabled implementation of the run status handler
type runStatusHandler struct {
}

// NewRunStatusHandler creates a new instance of type runStatusHandler
func NewRunStatusHandler() *runStatusHandler {
	return &runStatusHandler{}
}

// WarmupBatchExecuted does nothing
func (rsh *runStatusHandler) WarmupBatchExecuted(_ metric.Metric) {}

// BatchExecuted does nothing
func (rsh *runStatusHandler) BatchExecuted(_ metric.Metric, _ stats.Sample) {}

// BatchFailed does nothing
func (rsh *runStatusHandler) BatchFailed(_ metric.Metric) {}

// Close does nothing
func (rsh *runStatusHandler) Close() {}

// IsInterfaceNil returns true if there is no value under the interface
func (rsh *runStatusHandler) IsInterfaceNil() bool {
	return rsh == nil
}
