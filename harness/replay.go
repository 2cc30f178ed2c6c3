package harness

import (
	"fmt"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

// RecordedSamples provides previously measured samples
type RecordedSamples interface {
	Samples(m metric.Metric) []stats.Sample
	GasMetric() common.GasMetric
	IsInterfaceNil() bool
}

type replayHarness struct {
	recorded RecordedSamples
	mut      sync.Mutex
	next     map[metric.Metric]int
}

// NewReplayHarness creates a harness serving recorded samples instead of executing the batches.
// The samples of a metric are served in order, wrapping around.
func NewReplayHarness(recorded RecordedSamples) (*replayHarness, error) {
	if check.IfNil(recorded) {
		return nil, ErrNilMeasurements
	}

	return &replayHarness{
		recorded: recorded,
		next:     make(map[metric.Metric]int),
	}, nil
}

// Execute returns the next recorded sample of the metric
func (rh *replayHarness) Execute(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
	if gasMetric != rh.recorded.GasMetric() {
		return stats.Sample{}, fmt.Errorf("%w: samples recorded under %s, requested %s",
			stats.ErrGasMetricMismatch, rh.recorded.GasMetric(), gasMetric)
	}

	samples := rh.recorded.Samples(m)
	if len(samples) == 0 {
		return stats.Sample{}, fmt.Errorf("%w for %s", ErrNoRecordedSample, m)
	}

	rh.mut.Lock()
	idx := rh.next[m] % len(samples)
	rh.next[m] = idx + 1
	rh.mut.Unlock()

	sample := samples[idx]
	if sample.Count != uint64(len(batch)) {
		log.Trace("replayed sample size differs from the batch", "metric", m.String(),
			"recorded", sample.Count, "batch", len(batch))
	}

	return sample, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (rh *replayHarness) IsInterfaceNil() bool {
	return rh == nil
}
