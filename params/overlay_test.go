package params

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/hashing/sha256"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derivedFees() RuntimeFeesConfig {
	fees := RuntimeFeesConfig{}
	for i, accessor := range feeAccessors {
		*accessor.get(&fees) = uniformFee(uint64(i + 1))
	}

	return fees
}

func TestFee_SendAndExec(t *testing.T) {
	t.Parallel()

	fee := Fee{SendSameAccount: 1, SendDifferentAccount: 2, Execution: 3}
	assert.Equal(t, uint64(1), fee.SendFee(true))
	assert.Equal(t, uint64(2), fee.SendFee(false))
	assert.Equal(t, uint64(3), fee.ExecFee())
}

func TestRuntimeFeesConfig_Entries(t *testing.T) {
	t.Parallel()

	paths := FeePaths()
	assert.Len(t, paths, 15)
	assert.Contains(t, paths, DefaultOverlayFeeField)

	entries := derivedFees().Entries()
	require.Len(t, entries, len(paths))
	for i, entry := range entries {
		assert.Equal(t, paths[i], entry.Path)
		assert.Equal(t, uniformFee(uint64(i+1)), entry.Fee)
	}
}

func TestOverlayPolicy_Apply(t *testing.T) {
	t.Parallel()

	t.Run("default policy refreshes a single fee", func(t *testing.T) {
		t.Parallel()

		base := DefaultRuntimeConfig()
		fees := derivedFees()
		vm := DefaultVMConfig()
		vm.GrowMemCost = 99

		result, err := DefaultOverlayPolicy().Apply(base, fees, vm)
		require.Nil(t, err)
		assert.Equal(t, fees.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte,
			result.TransactionCosts.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte)

		expected := DefaultRuntimeConfig()
		expected.TransactionCosts.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte =
			fees.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte
		assert.Equal(t, expected, result)
		assert.Equal(t, DefaultRuntimeConfig(), base)
	})
	t.Run("all fields refreshes every fee and keeps the carried values", func(t *testing.T) {
		t.Parallel()

		base := DefaultRuntimeConfig()
		fees := derivedFees()

		policy := OverlayPolicy{FeeFields: []string{AllFeeFields}}
		result, err := policy.Apply(base, fees, VMConfig{})
		require.Nil(t, err)
		assert.Equal(t, fees.Entries(), result.TransactionCosts.Entries())
		assert.Equal(t, base.TransactionCosts.StorageUsageConfig, result.TransactionCosts.StorageUsageConfig)
		assert.Equal(t, base.TransactionCosts.BurntGasReward, result.TransactionCosts.BurntGasReward)
		assert.Equal(t, base.WasmConfig, result.WasmConfig)
	})
	t.Run("wasm config refresh", func(t *testing.T) {
		t.Parallel()

		vm := DefaultVMConfig()
		vm.ExtCosts.Sha256Base = 7

		policy := OverlayPolicy{RefreshWasmConfig: true}
		result, err := policy.Apply(DefaultRuntimeConfig(), derivedFees(), vm)
		require.Nil(t, err)
		assert.Equal(t, vm, result.WasmConfig)
		assert.Equal(t, DefaultRuntimeFeesConfig(), result.TransactionCosts)
	})
	t.Run("unknown field should error", func(t *testing.T) {
		t.Parallel()

		policy := OverlayPolicy{FeeFields: []string{"action_creation_config.teleport_cost"}}
		_, err := policy.Apply(DefaultRuntimeConfig(), derivedFees(), VMConfig{})
		assert.True(t, errors.Is(err, ErrUnknownOverlayField))
		assert.True(t, errors.Is(policy.Validate(), ErrUnknownOverlayField))
		assert.Nil(t, DefaultOverlayPolicy().Validate())
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	marshalizer := &marshal.JsonMarshalizer{}
	hasher := sha256.NewSha256()

	_, err := Fingerprint(DefaultRuntimeConfig(), nil, hasher)
	assert.Equal(t, ErrNilMarshalizer, err)
	_, err = Fingerprint(DefaultRuntimeConfig(), marshalizer, nil)
	assert.Equal(t, ErrNilHasher, err)

	first, err := Fingerprint(DefaultRuntimeConfig(), marshalizer, hasher)
	require.Nil(t, err)
	second, _ := Fingerprint(DefaultRuntimeConfig(), marshalizer, hasher)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)

	changed := DefaultRuntimeConfig()
	changed.WasmConfig.GrowMemCost = 2
	third, _ := Fingerprint(changed, marshalizer, hasher)
	assert.NotEqual(t, first, third)
}
