package estimator

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing/sha256"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-params-estimator-go/assembler"
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/common/disabled"
	"github.com/multiversx/mx-chain-params-estimator-go/gas"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/testscommon"
	statusHandlerMock "github.com/multiversx/mx-chain-params-estimator-go/testscommon/statusHandler"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

var expectedErr = errors.New("expected error")

func createMockArgsRuntimeConfigBuilder() ArgsRuntimeConfigBuilder {
	return ArgsRuntimeConfigBuilder{
		Generator:        &testscommon.WorkloadGeneratorStub{},
		Harness:          &testscommon.HarnessStub{},
		Measurements:     stats.NewMeasurements(common.Time),
		Assembler:        &testscommon.CostAssemblerStub{},
		StatusHandler:    disabled.NewRunStatusHandler(),
		BaseConfig:       params.DefaultRuntimeConfig(),
		OverlayPolicy:    params.DefaultOverlayPolicy(),
		GasMetric:        common.Time,
		Metrics:          []metric.Metric{metric.Receipt, metric.Noop},
		BlockSize:        3,
		NumBatches:       2,
		NumWarmupBatches: 1,
	}
}

func TestNewRuntimeConfigBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		modify      func(args *ArgsRuntimeConfigBuilder)
		expectedErr error
	}{
		{
			name:        "nil generator",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Generator = nil },
			expectedErr: ErrNilWorkloadGenerator,
		},
		{
			name:        "nil harness",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Harness = nil },
			expectedErr: ErrNilHarness,
		},
		{
			name:        "nil measurements",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Measurements = nil },
			expectedErr: ErrNilMeasurements,
		},
		{
			name:        "nil assembler",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Assembler = nil },
			expectedErr: ErrNilCostAssembler,
		},
		{
			name:        "nil status handler",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.StatusHandler = nil },
			expectedErr: ErrNilStatusHandler,
		},
		{
			name:        "invalid gas metric",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.GasMetric = common.GasMetric(99) },
			expectedErr: common.ErrInvalidGasMetric,
		},
		{
			name:        "gas metric mismatch",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.GasMetric = common.ICount },
			expectedErr: stats.ErrGasMetricMismatch,
		},
		{
			name:        "no metric",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Metrics = nil },
			expectedErr: ErrNoMetricSelected,
		},
		{
			name:        "unknown metric",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.Metrics = []metric.Metric{metric.Metric(-1)} },
			expectedErr: metric.ErrUnknownMetric,
		},
		{
			name:        "invalid block size",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.BlockSize = 0 },
			expectedErr: ErrInvalidBlockSize,
		},
		{
			name:        "invalid number of batches",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.NumBatches = 0 },
			expectedErr: ErrInvalidNumBatches,
		},
		{
			name:        "negative warmup batches",
			modify:      func(args *ArgsRuntimeConfigBuilder) { args.NumWarmupBatches = -1 },
			expectedErr: ErrInvalidNumWarmupBatches,
		},
		{
			name: "unknown overlay field",
			modify: func(args *ArgsRuntimeConfigBuilder) {
				args.OverlayPolicy = params.OverlayPolicy{FeeFields: []string{"bogus"}}
			},
			expectedErr: params.ErrUnknownOverlayField,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name+" should error", func(t *testing.T) {
			t.Parallel()

			args := createMockArgsRuntimeConfigBuilder()
			tt.modify(&args)
			rcb, err := NewRuntimeConfigBuilder(args)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.True(t, check.IfNil(rcb))
		})
	}

	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		rcb, err := NewRuntimeConfigBuilder(createMockArgsRuntimeConfigBuilder())
		assert.Nil(t, err)
		assert.False(t, check.IfNil(rcb))
	})
}

func TestRuntimeConfigBuilder_MetricsOrder(t *testing.T) {
	t.Parallel()

	args := createMockArgsRuntimeConfigBuilder()
	args.Metrics = []metric.Metric{metric.Noop, metric.Receipt, metric.Warmup, metric.Noop}
	rcb, err := NewRuntimeConfigBuilder(args)
	require.Nil(t, err)

	assert.Equal(t, []metric.Metric{metric.Warmup, metric.Noop, metric.Receipt}, rcb.Metrics())
}

func TestRuntimeConfigBuilder_MeasureRunsWarmupAndRecordedBatches(t *testing.T) {
	t.Parallel()

	executed := make(map[metric.Metric]int)
	args := createMockArgsRuntimeConfigBuilder()
	args.Harness = &testscommon.HarnessStub{
		ExecuteCalled: func(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
			assert.Equal(t, common.Time, gasMetric)
			assert.Len(t, batch, 3)
			executed[m]++

			return stats.Sample{TotalCost: uint64(10 * executed[m]), Count: 3}, nil
		},
	}
	warmups, recorded := 0, 0
	args.StatusHandler = &statusHandlerMock.RunStatusHandlerStub{
		WarmupBatchExecutedCalled: func(m metric.Metric) {
			warmups++
		},
		BatchExecutedCalled: func(m metric.Metric, sample stats.Sample) {
			recorded++
		},
	}
	measurements := stats.NewMeasurements(common.Time)
	args.Measurements = measurements

	rcb, _ := NewRuntimeConfigBuilder(args)
	err := rcb.Measure()
	require.Nil(t, err)

	assert.Equal(t, 3, executed[metric.Receipt])
	assert.Equal(t, 3, executed[metric.Noop])
	assert.Equal(t, 2, warmups)
	assert.Equal(t, 4, recorded)

	// the warmup sample is the first one and it is discarded
	expectedSamples := []stats.Sample{{TotalCost: 20, Count: 3}, {TotalCost: 30, Count: 3}}
	assert.Equal(t, expectedSamples, measurements.Samples(metric.Receipt))
	assert.Equal(t, expectedSamples, measurements.Samples(metric.Noop))
}

func TestRuntimeConfigBuilder_BuildErrors(t *testing.T) {
	t.Parallel()

	t.Run("generator error should abort", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsRuntimeConfigBuilder()
		args.Generator = &testscommon.WorkloadGeneratorStub{
			GenerateBatchCalled: func(m metric.Metric, size int) ([]*workload.Transaction, error) {
				return nil, common.ErrWorkloadGenerationExhausted
			},
		}
		rcb, _ := NewRuntimeConfigBuilder(args)

		cfg, err := rcb.Build()
		assert.ErrorIs(t, err, common.ErrWorkloadGenerationExhausted)
		assert.Equal(t, params.RuntimeConfig{}, cfg)
	})
	t.Run("harness error should abort and notify", func(t *testing.T) {
		t.Parallel()

		failed := make([]metric.Metric, 0)
		args := createMockArgsRuntimeConfigBuilder()
		args.Harness = &testscommon.HarnessStub{
			ExecuteCalled: func(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
				return stats.Sample{}, expectedErr
			},
		}
		args.StatusHandler = &statusHandlerMock.RunStatusHandlerStub{
			BatchFailedCalled: func(m metric.Metric) {
				failed = append(failed, m)
			},
		}
		assemblerCalled := false
		args.Assembler = &testscommon.CostAssemblerStub{
			RuntimeFeesCalled: func(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error) {
				assemblerCalled = true
				return base, nil
			},
		}
		rcb, _ := NewRuntimeConfigBuilder(args)

		cfg, err := rcb.Build()
		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, params.RuntimeConfig{}, cfg)
		assert.Equal(t, []metric.Metric{metric.Receipt}, failed)
		assert.False(t, assemblerCalled)
	})
	t.Run("zero count sample should abort", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsRuntimeConfigBuilder()
		args.NumWarmupBatches = 0
		args.Harness = &testscommon.HarnessStub{
			ExecuteCalled: func(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
				return stats.Sample{TotalCost: 10}, nil
			},
		}
		rcb, _ := NewRuntimeConfigBuilder(args)

		_, err := rcb.Build()
		assert.ErrorIs(t, err, stats.ErrZeroCountSample)
	})
	t.Run("assembler errors should abort", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsRuntimeConfigBuilder()
		args.Assembler = &testscommon.CostAssemblerStub{
			VMConfigCalled: func(base params.VMConfig) (params.VMConfig, error) {
				return params.VMConfig{}, common.ErrMissingMeasurement
			},
		}
		rcb, _ := NewRuntimeConfigBuilder(args)

		cfg, err := rcb.Build()
		assert.ErrorIs(t, err, common.ErrMissingMeasurement)
		assert.Equal(t, params.RuntimeConfig{}, cfg)
	})
}

func TestRuntimeConfigBuilder_AssembleAppliesTheOverlayPolicy(t *testing.T) {
	t.Parallel()

	derivedFee := params.Fee{SendSameAccount: 1, SendDifferentAccount: 2, Execution: 3}
	args := createMockArgsRuntimeConfigBuilder()
	args.Assembler = &testscommon.CostAssemblerStub{
		RuntimeFeesCalled: func(base params.RuntimeFeesConfig) (params.RuntimeFeesConfig, error) {
			base.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte = derivedFee
			base.ActionCreationConfig.TransferCost = derivedFee
			return base, nil
		},
		VMConfigCalled: func(base params.VMConfig) (params.VMConfig, error) {
			base.RegularOpCost++
			return base, nil
		},
	}
	rcb, _ := NewRuntimeConfigBuilder(args)

	cfg, err := rcb.Assemble()
	require.Nil(t, err)

	base := params.DefaultRuntimeConfig()
	expected := base
	expected.TransactionCosts.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte = derivedFee
	assert.Equal(t, expected, cfg)
	assert.Equal(t, base, rcb.baseConfig)
}

func createRealArgsRuntimeConfigBuilder(t *testing.T, gasMetric common.GasMetric) (ArgsRuntimeConfigBuilder, *stats.Measurements) {
	gen, err := workload.NewGenerator(workload.ArgsGenerator{
		ActiveAccounts:       50,
		DeployedAccounts:     10,
		Seed:                 11,
		MaxSelectionAttempts: 100,
		ContractCodes:        workload.PlaceholderContractCodes(),
		Hasher:               sha256.NewSha256(),
		Marshalizer:          &marshal.JsonMarshalizer{},
		KeyGenerator:         signing.NewKeyGenerator(ed25519.NewEd25519()),
		Signer:               &singlesig.Ed25519Signer{},
	})
	require.Nil(t, err)

	measurements := stats.NewMeasurements(gasMetric)
	costAssembler, err := assembler.NewAssembler(assembler.ArgsAssembler{
		Measurements: measurements,
		Overrides:    assembler.DefaultOverrides(),
	})
	require.Nil(t, err)

	return ArgsRuntimeConfigBuilder{
		Generator:        gen,
		Harness:          testscommon.NewFixtureHarness(),
		Measurements:     measurements,
		Assembler:        costAssembler,
		StatusHandler:    disabled.NewRunStatusHandler(),
		BaseConfig:       params.DefaultRuntimeConfig(),
		OverlayPolicy:    params.DefaultOverlayPolicy(),
		GasMetric:        gasMetric,
		Metrics:          metric.All(),
		BlockSize:        2,
		NumBatches:       1,
		NumWarmupBatches: 1,
	}, measurements
}

func TestRuntimeConfigBuilder_BuildWithTheDefaultPolicy(t *testing.T) {
	t.Parallel()

	args, measurements := createRealArgsRuntimeConfigBuilder(t, common.Time)
	rcb, err := NewRuntimeConfigBuilder(args)
	require.Nil(t, err)

	cfg, err := rcb.Build()
	require.Nil(t, err)

	for _, m := range metric.All() {
		assert.True(t, measurements.Has(m), m.String())
	}

	expected := params.DefaultRuntimeConfig()
	expected.TransactionCosts.ActionCreationConfig.AddKeyCost.FunctionCallCostPerByte =
		gas.GasToFee(testscommon.FixtureAddKeyByteCost * gas.GasInMeasureUnit)
	assert.Equal(t, expected, cfg)
}

func TestRuntimeConfigBuilder_BuildRefreshingEverything(t *testing.T) {
	t.Parallel()

	args, _ := createRealArgsRuntimeConfigBuilder(t, common.ICount)
	args.OverlayPolicy = params.OverlayPolicy{
		FeeFields:         []string{params.AllFeeFields},
		RefreshWasmConfig: true,
	}
	rcb, err := NewRuntimeConfigBuilder(args)
	require.Nil(t, err)

	cfg, err := rcb.Build()
	require.Nil(t, err)

	unit := gas.GasInMeasureUnit / common.ICountDivisor
	creation := cfg.TransactionCosts.ActionCreationConfig
	assert.Equal(t, gas.GasToFee(100*unit), cfg.TransactionCosts.ActionReceiptCreationConfig)
	assert.Equal(t, gas.GasToFee(50*unit), creation.TransferCost)
	assert.Equal(t, gas.GasToFee(300*unit), creation.FunctionCallCost)
	assert.Equal(t, 5*unit, cfg.WasmConfig.ExtCosts.Base)
	assert.Equal(t, assembler.DefaultValidatorStakeCost, cfg.WasmConfig.ExtCosts.ValidatorStakeBase)
	assert.Equal(t, uint64(1), cfg.WasmConfig.GrowMemCost)
	assert.Equal(t, params.DefaultRuntimeConfig().StorageAmountPerByte, cfg.StorageAmountPerByte)
}

func TestRuntimeConfigBuilder_MissingRequiredMetricShouldFail(t *testing.T) {
	t.Parallel()

	args, _ := createRealArgsRuntimeConfigBuilder(t, common.Time)
	metrics := make([]metric.Metric, 0)
	for _, m := range metric.All() {
		if m != metric.Sha25610b10k {
			metrics = append(metrics, m)
		}
	}
	args.Metrics = metrics
	rcb, err := NewRuntimeConfigBuilder(args)
	require.Nil(t, err)

	cfg, err := rcb.Build()
	assert.ErrorIs(t, err, common.ErrMissingMeasurement)
	assert.Equal(t, params.RuntimeConfig{}, cfg)
}
