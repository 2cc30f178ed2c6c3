package statusHandler_test

import (
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/common/disabled"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/statusHandler"
	statusHandlerMock "github.com/multiversx/mx-chain-params-estimator-go/testscommon/statusHandler"
)

func TestNewRunStatusFacadeWithHandlers_NilHandlersShouldFail(t *testing.T) {
	t.Parallel()

	rsf, err := statusHandler.NewRunStatusFacadeWithHandlers()
	assert.Equal(t, statusHandler.ErrHandlersSliceIsNil, err)
	assert.True(t, check.IfNil(rsf))
}

func TestNewRunStatusFacadeWithHandlers_OneOfTheHandlersIsNilShouldFail(t *testing.T) {
	t.Parallel()

	rsf, err := statusHandler.NewRunStatusFacadeWithHandlers(disabled.NewRunStatusHandler(), nil)
	assert.Equal(t, statusHandler.ErrNilHandlerInSlice, err)
	assert.True(t, check.IfNil(rsf))
}

func TestNewRunStatusFacadeWithHandlers_OkHandlersShouldPass(t *testing.T) {
	t.Parallel()

	rsf, err := statusHandler.NewRunStatusFacadeWithHandlers(
		disabled.NewRunStatusHandler(),
		disabled.NewRunStatusHandler(),
	)
	assert.Nil(t, err)
	assert.False(t, check.IfNil(rsf))
}

func TestRunStatusFacade_ShouldDispatchToEveryHandler(t *testing.T) {
	t.Parallel()

	warmups, batches, failures, closes := 0, 0, 0, 0
	var lastSample stats.Sample
	stub := &statusHandlerMock.RunStatusHandlerStub{
		WarmupBatchExecutedCalled: func(m metric.Metric) {
			assert.Equal(t, metric.Warmup, m)
			warmups++
		},
		BatchExecutedCalled: func(m metric.Metric, sample stats.Sample) {
			assert.Equal(t, metric.Noop, m)
			lastSample = sample
			batches++
		},
		BatchFailedCalled: func(m metric.Metric) {
			assert.Equal(t, metric.Receipt, m)
			failures++
		},
		CloseCalled: func() {
			closes++
		},
	}

	rsf, err := statusHandler.NewRunStatusFacadeWithHandlers(stub, stub)
	require.Nil(t, err)

	rsf.WarmupBatchExecuted(metric.Warmup)
	rsf.BatchExecuted(metric.Noop, stats.Sample{TotalCost: 7, Count: 1})
	rsf.BatchFailed(metric.Receipt)
	rsf.Close()

	assert.Equal(t, 2, warmups)
	assert.Equal(t, 2, batches)
	assert.Equal(t, 2, failures)
	assert.Equal(t, 2, closes)
	assert.Equal(t, stats.Sample{TotalCost: 7, Count: 1}, lastSample)
}
