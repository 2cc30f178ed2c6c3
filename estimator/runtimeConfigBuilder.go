package estimator

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/harness"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/statusHandler"
)

var log = logger.GetOrCreate("estimator")

// ArgsRuntimeConfigBuilder holds the arguments needed to create a runtime config builder
type ArgsRuntimeConfigBuilder struct {
	Generator     WorkloadGenerator
	Harness       harness.Harness
	Measurements  MeasurementsRecorder
	Assembler     CostAssembler
	StatusHandler statusHandler.RunStatusHandler
	BaseConfig    params.RuntimeConfig
	OverlayPolicy params.OverlayPolicy
	GasMetric     common.GasMetric
	// Metrics are measured in the provided order, warmup first when selected. Duplicates are measured once.
	Metrics          []metric.Metric
	BlockSize        int
	NumBatches       int
	NumWarmupBatches int
}

type runtimeConfigBuilder struct {
	generator        WorkloadGenerator
	harness          harness.Harness
	measurements     MeasurementsRecorder
	assembler        CostAssembler
	statusHandler    statusHandler.RunStatusHandler
	baseConfig       params.RuntimeConfig
	overlayPolicy    params.OverlayPolicy
	gasMetric        common.GasMetric
	metrics          []metric.Metric
	blockSize        int
	numBatches       int
	numWarmupBatches int
}

// NewRuntimeConfigBuilder creates the component driving one calibration run
func NewRuntimeConfigBuilder(args ArgsRuntimeConfigBuilder) (*runtimeConfigBuilder, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &runtimeConfigBuilder{
		generator:        args.Generator,
		harness:          args.Harness,
		measurements:     args.Measurements,
		assembler:        args.Assembler,
		statusHandler:    args.StatusHandler,
		baseConfig:       args.BaseConfig,
		overlayPolicy:    args.OverlayPolicy,
		gasMetric:        args.GasMetric,
		metrics:          measurementOrder(args.Metrics),
		blockSize:        args.BlockSize,
		numBatches:       args.NumBatches,
		numWarmupBatches: args.NumWarmupBatches,
	}, nil
}

func checkArgs(args ArgsRuntimeConfigBuilder) error {
	if check.IfNil(args.Generator) {
		return ErrNilWorkloadGenerator
	}
	if check.IfNil(args.Harness) {
		return ErrNilHarness
	}
	if check.IfNil(args.Measurements) {
		return ErrNilMeasurements
	}
	if check.IfNil(args.Assembler) {
		return ErrNilCostAssembler
	}
	if check.IfNil(args.StatusHandler) {
		return ErrNilStatusHandler
	}
	_, err := args.GasMetric.Divisor()
	if err != nil {
		return err
	}
	if args.Measurements.GasMetric() != args.GasMetric {
		return fmt.Errorf("%w: measurements are recorded under %s, the run uses %s",
			stats.ErrGasMetricMismatch, args.Measurements.GasMetric(), args.GasMetric)
	}
	if len(args.Metrics) == 0 {
		return ErrNoMetricSelected
	}
	for _, m := range args.Metrics {
		if !m.IsValid() {
			return fmt.Errorf("%w: %d", metric.ErrUnknownMetric, int(m))
		}
	}
	if args.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, args.BlockSize)
	}
	if args.NumBatches <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNumBatches, args.NumBatches)
	}
	if args.NumWarmupBatches < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNumWarmupBatches, args.NumWarmupBatches)
	}

	return args.OverlayPolicy.Validate()
}

func measurementOrder(metrics []metric.Metric) []metric.Metric {
	ordered := make([]metric.Metric, 0, len(metrics))
	seen := make(map[metric.Metric]struct{}, len(metrics))
	for _, m := range metrics {
		if m == metric.Warmup {
			ordered = append(ordered, m)
			seen[m] = struct{}{}
			break
		}
	}

	for _, m := range metrics {
		_, found := seen[m]
		if found {
			continue
		}

		seen[m] = struct{}{}
		ordered = append(ordered, m)
	}

	return ordered
}

// Metrics returns the metrics measured by Measure, in measurement order
func (rcb *runtimeConfigBuilder) Metrics() []metric.Metric {
	metrics := make([]metric.Metric, len(rcb.metrics))
	copy(metrics, rcb.metrics)

	return metrics
}

// Build measures every selected metric and returns the base config with the derived values applied
func (rcb *runtimeConfigBuilder) Build() (params.RuntimeConfig, error) {
	err := rcb.Measure()
	if err != nil {
		return params.RuntimeConfig{}, err
	}

	return rcb.Assemble()
}

// Measure runs the warmup and the recorded batches of every selected metric
func (rcb *runtimeConfigBuilder) Measure() error {
	sw := core.NewStopWatch()
	defer func() {
		log.Debug("time measurements of Measure", sw.GetMeasurements()...)
	}()

	for idx, m := range rcb.metrics {
		log.Info("measuring", "metric", m.String(), "index", fmt.Sprintf("%d/%d", idx+1, len(rcb.metrics)))

		sw.Start(m.String())
		err := rcb.measureMetric(m)
		sw.Stop(m.String())
		if err != nil {
			return err
		}
	}

	return nil
}

func (rcb *runtimeConfigBuilder) measureMetric(m metric.Metric) error {
	for i := 0; i < rcb.numWarmupBatches; i++ {
		_, err := rcb.executeBatch(m)
		if err != nil {
			return fmt.Errorf("%w during warmup batch %d", err, i)
		}

		rcb.statusHandler.WarmupBatchExecuted(m)
	}

	for i := 0; i < rcb.numBatches; i++ {
		sample, err := rcb.executeBatch(m)
		if err != nil {
			return fmt.Errorf("%w during batch %d", err, i)
		}

		err = rcb.measurements.Record(m, sample)
		if err != nil {
			return err
		}

		rcb.statusHandler.BatchExecuted(m, sample)
		log.Trace("batch recorded", "metric", m.String(), "batch", i,
			"total cost", sample.TotalCost, "transactions", sample.Count)
	}

	return nil
}

func (rcb *runtimeConfigBuilder) executeBatch(m metric.Metric) (stats.Sample, error) {
	batch, err := rcb.generator.GenerateBatch(m, rcb.blockSize)
	if err != nil {
		return stats.Sample{}, fmt.Errorf("%w while generating the workload of %s", err, m)
	}

	sample, err := rcb.harness.Execute(rcb.gasMetric, m, batch)
	if err != nil {
		rcb.statusHandler.BatchFailed(m)
		return stats.Sample{}, fmt.Errorf("%w while executing %s", err, m)
	}

	return sample, nil
}

// Assemble derives the fee table and the VM cost table out of the recorded samples and applies
// them over a copy of the base config, as selected by the overlay policy
func (rcb *runtimeConfigBuilder) Assemble() (params.RuntimeConfig, error) {
	fees, err := rcb.assembler.RuntimeFees(rcb.baseConfig.TransactionCosts)
	if err != nil {
		return params.RuntimeConfig{}, fmt.Errorf("%w while assembling the runtime fees", err)
	}

	vm, err := rcb.assembler.VMConfig(rcb.baseConfig.WasmConfig)
	if err != nil {
		return params.RuntimeConfig{}, fmt.Errorf("%w while assembling the VM config", err)
	}

	return rcb.overlayPolicy.Apply(rcb.baseConfig, fees, vm)
}

// IsInterfaceNil returns true if there is no value under the interface
func (rcb *runtimeConfigBuilder) IsInterfaceNil() bool {
	return rcb == nil
}
