package stats

import (
	"fmt"
	"math/bits"
	"sort"
	"sync"

	logger "github.com/multiversx/mx-chain-logger-go"
	"gonum.org/v1/gonum/stat"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

var log = logger.GetOrCreate("stats")

// Sample is the cost of executing one batch of Count transactions, in units of the run's gas metric
type Sample struct {
	TotalCost uint64
	Count     uint64
}

// Summary describes the spread of the per-transaction cost of a metric's samples
type Summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Measurements collects harness samples per metric, recorded under a single gas metric
type Measurements struct {
	mut       sync.RWMutex
	gasMetric common.GasMetric
	samples   map[metric.Metric][]Sample
}

// NewMeasurements creates an empty measurements store
func NewMeasurements(gasMetric common.GasMetric) *Measurements {
	return &Measurements{
		gasMetric: gasMetric,
		samples:   make(map[metric.Metric][]Sample),
	}
}

// GasMetric returns the physical metric every sample was recorded under
func (m *Measurements) GasMetric() common.GasMetric {
	return m.gasMetric
}

// Record appends a sample for the provided metric
func (m *Measurements) Record(mt metric.Metric, sample Sample) error {
	if !mt.IsValid() {
		return fmt.Errorf("%w: %d", metric.ErrUnknownMetric, int(mt))
	}
	if sample.Count == 0 {
		return fmt.Errorf("%w for %s", ErrZeroCountSample, mt)
	}

	m.mut.Lock()
	m.samples[mt] = append(m.samples[mt], sample)
	m.mut.Unlock()

	log.Trace("recorded sample", "metric", mt.String(), "total cost", sample.TotalCost, "count", sample.Count)

	return nil
}

// Remove drops every sample of the provided metric
func (m *Measurements) Remove(mt metric.Metric) {
	m.mut.Lock()
	delete(m.samples, mt)
	m.mut.Unlock()
}

// Has returns true if at least one sample has been recorded for the provided metric
func (m *Measurements) Has(mt metric.Metric) bool {
	m.mut.RLock()
	defer m.mut.RUnlock()

	return len(m.samples[mt]) > 0
}

// Metrics returns the measured metrics, sorted
func (m *Measurements) Metrics() []metric.Metric {
	m.mut.RLock()
	defer m.mut.RUnlock()

	metrics := make([]metric.Metric, 0, len(m.samples))
	for mt, samples := range m.samples {
		if len(samples) > 0 {
			metrics = append(metrics, mt)
		}
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i] < metrics[j]
	})

	return metrics
}

// Samples returns a copy of the samples recorded for the provided metric
func (m *Measurements) Samples(mt metric.Metric) []Sample {
	m.mut.RLock()
	defer m.mut.RUnlock()

	samples := make([]Sample, len(m.samples[mt]))
	copy(samples, m.samples[mt])

	return samples
}

// Aggregate reduces the samples of a metric to the ratio total cost / total transactions
func (m *Measurements) Aggregate(mt metric.Metric) (common.Ratio, error) {
	m.mut.RLock()
	defer m.mut.RUnlock()

	samples := m.samples[mt]
	if len(samples) == 0 {
		return common.Ratio{}, fmt.Errorf("%w: %s", common.ErrMissingMeasurement, mt)
	}

	var totalCost, count, carry uint64
	for _, sample := range samples {
		totalCost, carry = bits.Add64(totalCost, sample.TotalCost, 0)
		if carry != 0 {
			return common.Ratio{}, fmt.Errorf("%w while summing the cost of %s", common.ErrArithmeticOverflow, mt)
		}
		count, carry = bits.Add64(count, sample.Count, 0)
		if carry != 0 {
			return common.Ratio{}, fmt.Errorf("%w while summing the transactions of %s", common.ErrArithmeticOverflow, mt)
		}
	}

	return common.NewRatio(totalCost, count)
}

// Summary computes the per-transaction cost distribution of a metric's samples
func (m *Measurements) Summary(mt metric.Metric) (Summary, error) {
	samples := m.Samples(mt)
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("%w: %s", common.ErrMissingMeasurement, mt)
	}

	values := make([]float64, 0, len(samples))
	weights := make([]float64, 0, len(samples))
	summary := Summary{Samples: len(samples)}
	for i, sample := range samples {
		perTx := float64(sample.TotalCost) / float64(sample.Count)
		values = append(values, perTx)
		weights = append(weights, float64(sample.Count))

		if i == 0 || perTx < summary.Min {
			summary.Min = perTx
		}
		if i == 0 || perTx > summary.Max {
			summary.Max = perTx
		}
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(values, weights)
	if len(samples) == 1 {
		summary.StdDev = 0
	}

	return summary, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (m *Measurements) IsInterfaceNil() bool {
	return m == nil
}
