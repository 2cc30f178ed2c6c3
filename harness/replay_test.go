package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

func TestNewReplayHarness_NilMeasurementsShouldErr(t *testing.T) {
	t.Parallel()

	rh, err := NewReplayHarness(nil)
	assert.Nil(t, rh)
	assert.Equal(t, ErrNilMeasurements, err)
}

func TestReplayHarness_Execute(t *testing.T) {
	t.Parallel()

	recorded := stats.NewMeasurements(common.Time)
	_ = recorded.Record(metric.Noop, stats.Sample{TotalCost: 10, Count: 1})
	_ = recorded.Record(metric.Noop, stats.Sample{TotalCost: 20, Count: 1})

	rh, err := NewReplayHarness(recorded)
	require.Nil(t, err)
	assert.False(t, rh.IsInterfaceNil())

	expected := []uint64{10, 20, 10}
	for _, cost := range expected {
		sample, errExecute := rh.Execute(common.Time, metric.Noop, createBatch(1))
		require.Nil(t, errExecute)
		assert.Equal(t, cost, sample.TotalCost)
	}

	_, err = rh.Execute(common.Time, metric.Receipt, createBatch(1))
	assert.True(t, errors.Is(err, ErrNoRecordedSample))

	_, err = rh.Execute(common.ICount, metric.Noop, createBatch(1))
	assert.True(t, errors.Is(err, stats.ErrGasMetricMismatch))
}
