package testscommon

import (
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// FixtureTransactionsPerSample is the transaction count of every fixture sample
const FixtureTransactionsPerSample = 1000

// Per transaction costs, in gas metric units, used by the measurement fixture
const (
	FixtureReceiptCost     = 100
	FixtureNoopCost        = 400
	FixtureOpCost          = 5
	FixtureNulOpCost       = 6
	FixtureByteCost        = 1
	FixtureEvictedByteCost = 3
	FixtureDeployBase      = 300
	FixtureDeployByteCost  = 2
	FixtureAddKeyBase      = 170
	FixtureAddKeyByteCost  = 1
)

var fixtureActionCosts = map[metric.Metric]uint64{
	metric.Receipt:                FixtureReceiptCost,
	metric.ActionTransfer:         150,
	metric.ActionCreateAccount:    250,
	metric.ActionDeleteAccount:    180,
	metric.ActionAddFullAccessKey: 170,
	metric.ActionDeleteAccessKey:  160,
	metric.ActionStake:            200,
}

// FixtureCost returns the per transaction cost the fixture records for a metric. Function call costs
// grow linearly with the operations per call and the payload, so every derived cost is an exact value.
func FixtureCost(m metric.Metric) uint64 {
	info, err := metric.InfoOf(m)
	if err != nil {
		return 0
	}

	if info.Kind == metric.KindAction {
		switch m {
		case metric.ActionAddFunctionAccessKey1Method, metric.ActionAddFunctionAccessKey1000Methods:
			return FixtureAddKeyBase + info.PayloadBytes*FixtureAddKeyByteCost
		case metric.ActionDeploy10K, metric.ActionDeploy100K, metric.ActionDeploy1M:
			return FixtureDeployBase + info.PayloadBytes*FixtureDeployByteCost
		default:
			return fixtureActionCosts[m]
		}
	}

	switch m {
	case metric.Noop, metric.Warmup, metric.CpuRamSoakTest:
		return FixtureNoopCost
	case metric.Noop1MiB:
		return FixtureNoopCost + info.PayloadBytes*FixtureByteCost
	case metric.StorageWrite10bKey10KiBValue1kEvict:
		return FixtureCost(metric.StorageWrite10bKey10KiBValue1k) + info.OpsPerCall*info.PayloadBytes*FixtureEvictedByteCost
	}

	opCost := uint64(FixtureOpCost)
	switch m {
	case metric.NulUtf8Log10b10k, metric.NulUtf8Log10KiB10k, metric.NulUtf16Log10b10k, metric.NulUtf16Log10KiB10k:
		opCost = FixtureNulOpCost
	}

	return FixtureNoopCost + info.OpsPerCall*(opCost+info.PayloadBytes*FixtureByteCost)
}

// NewCompleteMeasurements returns a store holding one fixture sample for every metric
func NewCompleteMeasurements(gasMetric common.GasMetric) *stats.Measurements {
	m := stats.NewMeasurements(gasMetric)
	for _, mt := range metric.All() {
		_ = m.Record(mt, FixtureSample(mt))
	}

	return m
}

// FixtureSample returns the fixture sample of a metric
func FixtureSample(m metric.Metric) stats.Sample {
	return stats.Sample{
		TotalCost: FixtureCost(m) * FixtureTransactionsPerSample,
		Count:     FixtureTransactionsPerSample,
	}
}
