package estimator

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

// WorkloadGenerator produces batches of signed transactions for a metric
type WorkloadGenerator interface {
	GenerateBatch(m metric.Metric, size int) ([]*workload.Transaction, error)
	IsInterfaceNil() bool
}

// MeasurementsRecorder stores the samples returned by the harness
type MeasurementsRecorder interface {
	Record(m metric.Metric, sample stats.Sample) error
	GasMetric() common.GasMetric
	IsInterfaceNil() bool
}

// CostAssembler derives the fee table and the VM cost table out of the recorded samples
type CostAssembler interface {
	RuntimeFees(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error)
	VMConfig(base params.VMConfig) (params.VMConfig, error)
	IsInterfaceNil() bool
}
