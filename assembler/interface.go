package assembler

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// MeasurementsHandler provides the aggregated cost of every measured metric
type MeasurementsHandler interface {
	Aggregate(m metric.Metric) (common.Ratio, error)
	GasMetric() common.GasMetric
	IsInterfaceNil() bool
}
