package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/cmd/estimator/hostParameters"
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

func TestCreateFeesTable(t *testing.T) {
	t.Parallel()

	table, err := createFeesTable(params.DefaultRuntimeFeesConfig())
	require.Nil(t, err)
	for _, path := range params.FeePaths() {
		assert.Contains(t, table, path)
	}
}

func TestCreateExtCostsTable(t *testing.T) {
	t.Parallel()

	table, err := createExtCostsTable(params.DefaultVMConfig())
	require.Nil(t, err)
	assert.Contains(t, table, "touching_trie_node")
	assert.Contains(t, table, "grow_mem_cost")
	assert.Contains(t, table, "regular_op_cost")
}

func TestCreateMeasurementsTable(t *testing.T) {
	t.Parallel()

	measurements := stats.NewMeasurements(common.Time)
	require.Nil(t, measurements.Record(metric.Noop, stats.Sample{TotalCost: 40, Count: 4}))
	require.Nil(t, measurements.Record(metric.Noop, stats.Sample{TotalCost: 120, Count: 4}))

	table, err := createMeasurementsTable(measurements)
	require.Nil(t, err)
	assert.Contains(t, table, "noop")
	assert.Contains(t, table, "20.00")
}

func TestCreateHostInfoTable(t *testing.T) {
	t.Parallel()

	table, err := createHostInfoTable(&hostParameters.HostInfo{AppVersion: "v1.2.3", MemorySize: "1.00 GB"})
	require.Nil(t, err)
	assert.Contains(t, table, "v1.2.3")
	assert.Contains(t, table, "1.00 GB")
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"noop", "receipt"}, splitList(" noop, ,receipt,"))
	assert.Empty(t, splitList(""))
}
