package config

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// SanityCheckEstimatorConfig checks that the loaded values describe a run that can be executed
func SanityCheckEstimatorConfig(cfg *EstimatorConfig) error {
	general := cfg.General
	_, err := common.ParseGasMetric(general.GasMetric)
	if err != nil {
		return err
	}
	if general.BlockSize <= 0 {
		return fmt.Errorf("%w, provided %d", errInvalidBlockSize, general.BlockSize)
	}
	if general.NumBatches <= 0 {
		return fmt.Errorf("%w, provided %d", errInvalidNumBatches, general.NumBatches)
	}
	if general.NumWarmupBatches < 0 {
		return fmt.Errorf("%w, provided %d", errInvalidNumWarmupBatches, general.NumWarmupBatches)
	}
	_, err = metric.FromNames(general.Metrics)
	if err != nil {
		return err
	}

	err = cfg.OverlayPolicy().Validate()
	if err != nil {
		return err
	}

	if cfg.Overrides.TrieNodeTouchDenominator == 0 {
		return errInvalidTrieNodeTouchDenominator
	}
	if cfg.Testbed.TimeoutInSec < 0 {
		return fmt.Errorf("%w, provided %d", errInvalidTestbedTimeout, cfg.Testbed.TimeoutInSec)
	}
	if len(cfg.BaseConfigs.ByProtocolVersion) > 0 && len(strings.TrimSpace(cfg.BaseConfigs.ConfigDir)) == 0 {
		return errEmptyBaseConfigDir
	}

	return nil
}
