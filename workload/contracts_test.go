package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

func TestLoadContractCodes(t *testing.T) {
	t.Parallel()

	t.Run("empty dir should error", func(t *testing.T) {
		t.Parallel()

		codes, err := LoadContractCodes("")
		assert.Equal(t, ErrEmptyContractsDir, err)
		assert.Nil(t, codes)
	})
	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		codes, err := LoadContractCodes(t.TempDir())
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, codes)
	})
	t.Run("empty file should error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, m := range DeployMetrics {
			require.Nil(t, os.WriteFile(filepath.Join(dir, ContractFileName(m)), []byte{}, 0644))
		}

		codes, err := LoadContractCodes(dir)
		assert.ErrorIs(t, err, ErrMissingContractCode)
		assert.Nil(t, codes)
	})
	t.Run("should load every deploy contract", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for idx, m := range DeployMetrics {
			require.Nil(t, os.WriteFile(filepath.Join(dir, ContractFileName(m)), []byte{byte(idx + 1)}, 0644))
		}

		codes, err := LoadContractCodes(dir)
		require.Nil(t, err)
		assert.Len(t, codes, len(DeployMetrics))
		assert.Equal(t, []byte{1}, codes[metric.ActionDeploy10K])
		assert.Equal(t, []byte{3}, codes[metric.ActionDeploy1M])
	})
}

func TestPlaceholderContractCodes(t *testing.T) {
	t.Parallel()

	codes := PlaceholderContractCodes()
	require.Len(t, codes, len(DeployMetrics))
	assert.Len(t, codes[metric.ActionDeploy10K], 10*1024)
	assert.Len(t, codes[metric.ActionDeploy100K], 100*1024)
	assert.Len(t, codes[metric.ActionDeploy1M], 1024*1024)
	assert.Equal(t, "action_deploy_1m.wasm", ContractFileName(metric.ActionDeploy1M))
}
