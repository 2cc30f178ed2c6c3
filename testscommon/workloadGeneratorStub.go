package testscommon

import (
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

// WorkloadGeneratorStub -
type WorkloadGeneratorStub struct {
	GenerateBatchCalled func(m metric.Metric, size int) ([]*workload.Transaction, error)
}

// GenerateBatch -
func (stub *WorkloadGeneratorStub) GenerateBatch(m metric.Metric, size int) ([]*workload.Transaction, error) {
	if stub.GenerateBatchCalled != nil {
		return stub.GenerateBatchCalled(m, size)
	}

	return make([]*workload.Transaction, size), nil
}

// IsInterfaceNil -
func (stub *WorkloadGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
