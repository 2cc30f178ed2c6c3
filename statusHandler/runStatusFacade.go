package statusHandler

import (
	"github.com/multiversx/mx-chain-core-go/core/check"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// runStatusFacade will be used for handling multiple run status handlers at the same time
type runStatusFacade struct {
	handlers []RunStatusHandler
}

// NewRunStatusFacadeWithHandlers will receive the handlers which should receive data and return a facade
func NewRunStatusFacadeWithHandlers(handlers ...RunStatusHandler) (*runStatusFacade, error) {
	if len(handlers) == 0 {
		return nil, ErrHandlersSliceIsNil
	}
	for _, h := range handlers {
		if check.IfNil(h) {
			return nil, ErrNilHandlerInSlice
		}
	}

	return &runStatusFacade{
		handlers: handlers,
	}, nil
}

// WarmupBatchExecuted will call the same method for every handler
func (rsf *runStatusFacade) WarmupBatchExecuted(m metric.Metric) {
	for _, h := range rsf.handlers {
		h.WarmupBatchExecuted(m)
	}
}

// BatchExecuted will call the same method for every handler
func (rsf *runStatusFacade) BatchExecuted(m metric.Metric, sample stats.Sample) {
	for _, h := range rsf.handlers {
		h.BatchExecuted(m, sample)
	}
}

// BatchFailed will call the same method for every handler
func (rsf *runStatusFacade) BatchFailed(m metric.Metric) {
	for _, h := range rsf.handlers {
		h.BatchFailed(m)
	}
}

// Close will close all the handlers
func (rsf *runStatusFacade) Close() {
	for _, h := range rsf.handlers {
		h.Close()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (rsf *runStatusFacade) IsInterfaceNil() bool {
	return rsf == nil
}
