package harness

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

// Harness executes a batch of transactions and reports what it cost under the requested gas metric
type Harness interface {
	Execute(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error)
	IsInterfaceNil() bool
}
