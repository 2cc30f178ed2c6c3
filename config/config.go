package config

import "github.com/multiversx/mx-chain-params-estimator-go/params"

// GeneralConfig will hold the workload and measurement settings of a calibration run
type GeneralConfig struct {
	GasMetric            string
	ProtocolVersion      uint32
	ActiveAccounts       int
	DeployedAccounts     int
	BlockSize            int
	NumBatches           int
	NumWarmupBatches     int
	Seed                 uint64
	MaxSelectionAttempts int
	Metrics              []string
}

// OverlayConfig will hold the derived values that replace the base config values
type OverlayConfig struct {
	FeeFields         []string
	RefreshWasmConfig bool
}

// OverridesConfig will hold the pinned ext costs
type OverridesConfig struct {
	DeprecatedIteratorCost   uint64
	ValidatorStakeBase       uint64
	ValidatorTotalStakeBase  uint64
	TrieNodeTouchNumerator   uint64
	TrieNodeTouchDenominator uint64
	GrowMemCost              uint64
}

// TestbedConfig will hold the settings of the external testbed executing the batches
type TestbedConfig struct {
	BinaryPath   string
	TimeoutInSec int
	ContractsDir string
}

// BaseConfigsConfig will hold the versioned runtime configs the derived values are applied on
type BaseConfigsConfig struct {
	ConfigDir         string
	ByProtocolVersion []params.ByProtocolVersion
}

// StatusConfig will hold the run status export settings
type StatusConfig struct {
	Enabled      bool
	TextfilePath string
}

// EstimatorConfig will hold the whole estimator configuration
type EstimatorConfig struct {
	General     GeneralConfig
	Overlay     OverlayConfig
	Overrides   OverridesConfig
	Testbed     TestbedConfig
	BaseConfigs BaseConfigsConfig
	Status      StatusConfig
}
