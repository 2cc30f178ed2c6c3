package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

var log = logger.GetOrCreate("harness")

const (
	// TestbedPathEnvVariable overrides every other testbed location
	TestbedPathEnvVariable = "ESTIMATOR_TESTBED_PATH"
	testbedBinaryName      = "estimator-testbed"
	statusError            = "error"
	waitDelay              = time.Second
)

// ExecutionRequest is sent to the testbed on its standard input
type ExecutionRequest struct {
	GasMetric    string                  `json:"gas_metric"`
	Metric       string                  `json:"metric"`
	Transactions []*workload.Transaction `json:"transactions"`
}

// ExecutionResponse is read from the testbed standard output
type ExecutionResponse struct {
	Status          string `json:"status"`
	TotalCost       uint64 `json:"total_cost"`
	NumTransactions uint64 `json:"num_transactions"`
	Error           string `json:"error,omitempty"`
}

// ArgsProcessHarness holds the arguments needed to create a process harness
type ArgsProcessHarness struct {
	// BinaryPath is the configured testbed location, used when the environment variable is not set
	BinaryPath  string
	Timeout     time.Duration
	Marshalizer marshal.Marshalizer
}

type processHarness struct {
	binaryPath  string
	timeout     time.Duration
	marshalizer marshal.Marshalizer
}

// NewProcessHarness creates a harness running every batch through the external testbed binary
func NewProcessHarness(args ArgsProcessHarness) (*processHarness, error) {
	if args.Timeout <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeout, args.Timeout)
	}
	if check.IfNil(args.Marshalizer) {
		return nil, ErrNilMarshalizer
	}

	binaryPath, err := ResolveTestbedPath(args.BinaryPath)
	if err != nil {
		return nil, err
	}

	log.Debug("using testbed", "path", binaryPath)

	return &processHarness{
		binaryPath:  binaryPath,
		timeout:     args.Timeout,
		marshalizer: args.Marshalizer,
	}, nil
}

// ResolveTestbedPath locates the testbed binary: the environment variable, then the configured path,
// then the working directory and finally the PATH
func ResolveTestbedPath(configured string) (string, error) {
	envPath := os.Getenv(TestbedPathEnvVariable)
	if len(envPath) > 0 {
		return envPath, nil
	}

	if len(configured) > 0 {
		_, err := os.Stat(configured)
		if err == nil {
			return configured, nil
		}

		log.Warn("configured testbed not found", "path", configured, "error", err)
	}

	cwd, err := os.Getwd()
	if err == nil {
		localPath := filepath.Join(cwd, testbedBinaryName)
		_, err = os.Stat(localPath)
		if err == nil {
			return localPath, nil
		}
	}

	path, err := exec.LookPath(testbedBinaryName)
	if err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: build %s or set %s", ErrTestbedNotFound, testbedBinaryName, TestbedPathEnvVariable)
}

// Execute sends the batch to a fresh testbed process and returns the cost it reports
func (ph *processHarness) Execute(gasMetric common.GasMetric, m metric.Metric, batch []*workload.Transaction) (stats.Sample, error) {
	if len(batch) == 0 {
		return stats.Sample{}, ErrEmptyBatch
	}

	request := &ExecutionRequest{
		GasMetric:    gasMetric.String(),
		Metric:       m.String(),
		Transactions: batch,
	}
	input, err := ph.marshalizer.Marshal(request)
	if err != nil {
		return stats.Sample{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), ph.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, ph.binaryPath)
	cmd.WaitDelay = waitDelay
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Trace("executing batch", "metric", m.String(), "transactions", len(batch), "input size", len(input))
	err = cmd.Run()
	if err != nil {
		return stats.Sample{}, fmt.Errorf("%w for %s: %v, stderr: %s", ErrTestbedFailed, m, err, stderr.String())
	}

	response := &ExecutionResponse{}
	err = ph.marshalizer.Unmarshal(response, stdout.Bytes())
	if err != nil {
		return stats.Sample{}, fmt.Errorf("%w while decoding the testbed response for %s", err, m)
	}
	if response.Status == statusError {
		return stats.Sample{}, fmt.Errorf("%w for %s: %s", ErrTestbedRejected, m, response.Error)
	}

	numTransactions := response.NumTransactions
	if numTransactions == 0 {
		numTransactions = uint64(len(batch))
	}

	return stats.Sample{
		TotalCost: response.TotalCost,
		Count:     numTransactions,
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ph *processHarness) IsInterfaceNil() bool {
	return ph == nil
}
