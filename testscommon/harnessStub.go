package testscommon

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

// HarnessStub -
type HarnessStub struct {
	ExecuteCalled func(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error)
}

// Execute -
func (stub *HarnessStub) Execute(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
	if stub.ExecuteCalled != nil {
		return stub.ExecuteCalled(gasMetric, m, batch)
	}

	return stats.Sample{TotalCost: uint64(len(batch)), Count: uint64(len(batch))}, nil
}

// IsInterfaceNil -
func (stub *HarnessStub) IsInterfaceNil() bool {
	return stub == nil
}

// NewFixtureHarness returns a harness stub charging every transaction of a batch its fixture cost
func NewFixtureHarness() *HarnessStub {
	return &HarnessStub{
		ExecuteCalled: func(_ common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
			count := uint64(len(batch))
			return stats.Sample{
				TotalCost: FixtureCost(m) * count,
				Count:     count,
			}, nil
		},
	}
}
