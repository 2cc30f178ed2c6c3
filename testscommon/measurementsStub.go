package testscommon

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// MeasurementsStub -
type MeasurementsStub struct {
	AggregateCalled func(m metric.Metric) (common.Ratio, error)
	GasMetricCalled func() common.GasMetric
}

// Aggregate -
func (stub *MeasurementsStub) Aggregate(m metric.Metric) (common.Ratio, error) {
	if stub.AggregateCalled != nil {
		return stub.AggregateCalled(m)
	}

	return common.Ratio{}, common.ErrMissingMeasurement
}

// GasMetric -
func (stub *MeasurementsStub) GasMetric() common.GasMetric {
	if stub.GasMetricCalled != nil {
		return stub.GasMetricCalled()
	}

	return common.Time
}

// IsInterfaceNil -
func (stub *MeasurementsStub) IsInterfaceNil() bool {
	return stub == nil
}
