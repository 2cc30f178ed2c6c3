package config

import (
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core"

	"github.com/multiversx/mx-chain-params-estimator-go/assembler"
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
)

// LoadEstimatorConfig returns an EstimatorConfig by reading the config file provided
func LoadEstimatorConfig(filepath string) (*EstimatorConfig, error) {
	cfg := &EstimatorConfig{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, fmt.Errorf("%w while loading the estimator config from %s", err, filepath)
	}

	return cfg, nil
}

// GasMetricValue returns the parsed gas metric
func (cfg *EstimatorConfig) GasMetricValue() (common.GasMetric, error) {
	return common.ParseGasMetric(cfg.General.GasMetric)
}

// SelectedMetrics returns the metrics to measure, in measurement order. An empty list selects every metric.
func (cfg *EstimatorConfig) SelectedMetrics() ([]metric.Metric, error) {
	if len(cfg.General.Metrics) == 0 {
		return metric.All(), nil
	}

	return metric.FromNames(cfg.General.Metrics)
}

// OverlayPolicy returns the overlay policy, the default one if no fee field has been configured
func (cfg *EstimatorConfig) OverlayPolicy() params.OverlayPolicy {
	if len(cfg.Overlay.FeeFields) == 0 && !cfg.Overlay.RefreshWasmConfig {
		return params.DefaultOverlayPolicy()
	}

	return params.OverlayPolicy{
		FeeFields:         cfg.Overlay.FeeFields,
		RefreshWasmConfig: cfg.Overlay.RefreshWasmConfig,
	}
}

// AssemblerOverrides returns the pinned ext costs used by the assembler
func (cfg *EstimatorConfig) AssemblerOverrides() assembler.Overrides {
	return assembler.Overrides{
		DeprecatedIteratorCost:   cfg.Overrides.DeprecatedIteratorCost,
		ValidatorStakeBase:       cfg.Overrides.ValidatorStakeBase,
		ValidatorTotalStakeBase:  cfg.Overrides.ValidatorTotalStakeBase,
		TrieNodeTouchNumerator:   cfg.Overrides.TrieNodeTouchNumerator,
		TrieNodeTouchDenominator: cfg.Overrides.TrieNodeTouchDenominator,
		GrowMemCost:              cfg.Overrides.GrowMemCost,
	}
}

// TestbedTimeout returns the per batch testbed timeout
func (cfg *EstimatorConfig) TestbedTimeout() time.Duration {
	return time.Duration(cfg.Testbed.TimeoutInSec) * time.Second
}
