package statusHandler

import (
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// RunStatusHandlerStub -
type RunStatusHandlerStub struct {
	WarmupBatchExecutedCalled func(m metric.Metric)
	BatchExecutedCalled       func(m metric.Metric, sample stats.Sample)
	BatchFailedCalled         func(m metric.Metric)
	CloseCalled               func()
}

// WarmupBatchExecuted -
func (stub *RunStatusHandlerStub) WarmupBatchExecuted(m metric.Metric) {
	if stub.WarmupBatchExecutedCalled != nil {
		stub.WarmupBatchExecutedCalled(m)
	}
}

// BatchExecuted -
func (stub *RunStatusHandlerStub) BatchExecuted(m metric.Metric, sample stats.Sample) {
	if stub.BatchExecutedCalled != nil {
		stub.BatchExecutedCalled(m, sample)
	}
}

// BatchFailed -
func (stub *RunStatusHandlerStub) BatchFailed(m metric.Metric) {
	if stub.BatchFailedCalled != nil {
		stub.BatchFailedCalled(m)
	}
}

// Close -
func (stub *RunStatusHandlerStub) Close() {
	if stub.CloseCalled != nil {
		stub.CloseCalled()
	}
}

// IsInterfaceNil -
func (stub *RunStatusHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
