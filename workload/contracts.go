package workload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/multiversx/mx-chain-core-go/core"

	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

const contractFileExtension = ".wasm"

// DeployMetrics are the metrics whose workload deploys a contract
var DeployMetrics = []metric.Metric{
	metric.ActionDeploy10K,
	metric.ActionDeploy100K,
	metric.ActionDeploy1M,
}

// ContractFileName returns the file holding the code deployed by the provided metric
func ContractFileName(m metric.Metric) string {
	return m.String() + contractFileExtension
}

// LoadContractCodes reads the code of every deploy metric from the provided directory
func LoadContractCodes(dir string) (map[metric.Metric][]byte, error) {
	if len(dir) == 0 {
		return nil, ErrEmptyContractsDir
	}

	codes := make(map[metric.Metric][]byte, len(DeployMetrics))
	for _, m := range DeployMetrics {
		path := filepath.Join(dir, ContractFileName(m))
		code, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w while loading contract code for %s", err, m)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("%w for %s, file %s is empty", ErrMissingContractCode, m, path)
		}

		info, err := metric.InfoOf(m)
		if err != nil {
			return nil, err
		}

		expected := info.PayloadBytes
		if uint64(len(code)) != expected {
			log.Warn("contract code size differs from the metric payload",
				"metric", m.String(),
				"code size", core.ConvertBytes(uint64(len(code))),
				"payload", core.ConvertBytes(expected))
		}

		codes[m] = code
	}

	return codes, nil
}

// PlaceholderContractCodes returns zero filled codes sized as each deploy metric payload. They are only
// suitable for harnesses that do not execute the code, like the replay harness.
func PlaceholderContractCodes() map[metric.Metric][]byte {
	codes := make(map[metric.Metric][]byte, len(DeployMetrics))
	for _, m := range DeployMetrics {
		info, _ := metric.InfoOf(m)
		codes[m] = make([]byte, info.PayloadBytes)
	}

	return codes
}
