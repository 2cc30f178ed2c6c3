package main

import (
	"fmt"
	"os"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/hashing/sha256"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/multiversx/mx-chain-params-estimator-go/assembler"
	"github.com/multiversx/mx-chain-params-estimator-go/cmd/estimator/hostParameters"
	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/common/disabled"
	"github.com/multiversx/mx-chain-params-estimator-go/config"
	"github.com/multiversx/mx-chain-params-estimator-go/estimator"
	"github.com/multiversx/mx-chain-params-estimator-go/harness"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
	"github.com/multiversx/mx-chain-params-estimator-go/params"
	"github.com/multiversx/mx-chain-params-estimator-go/stats"
	"github.com/multiversx/mx-chain-params-estimator-go/statusHandler"
	"github.com/multiversx/mx-chain-params-estimator-go/workload"
)

type estimatorRunner struct {
	log         logger.Logger
	version     string
	flagsConfig *config.ContextFlagsConfig
	cfg         *config.EstimatorConfig
	gasMetric   common.GasMetric
	metrics     []metric.Metric
	marshalizer marshal.Marshalizer
	hasher      hashing.Hasher
}

func newEstimatorRunner(ctx *cli.Context, log logger.Logger, version string) (*estimatorRunner, error) {
	flagsConfig := getFlagsConfig(ctx)
	err := attachLogger(flagsConfig, log)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadEstimatorConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return nil, err
	}
	applyFlags(ctx, cfg, flagsConfig, log)

	err = config.SanityCheckEstimatorConfig(cfg)
	if err != nil {
		return nil, err
	}

	gasMetric, err := cfg.GasMetricValue()
	if err != nil {
		return nil, err
	}

	metrics, err := cfg.SelectedMetrics()
	if err != nil {
		return nil, err
	}

	return &estimatorRunner{
		log:         log,
		version:     version,
		flagsConfig: flagsConfig,
		cfg:         cfg,
		gasMetric:   gasMetric,
		metrics:     metrics,
		marshalizer: &marshal.JsonMarshalizer{},
		hasher:      sha256.NewSha256(),
	}, nil
}

func attachLogger(flagsConfig *config.ContextFlagsConfig, log logger.Logger) error {
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	err := logger.SetLogLevel(flagsConfig.LogLevel)
	if err != nil {
		return err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			//we need to print this manually as we do not have console log observer
			fmt.Println("error removing log observer: " + err.Error())
			return err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			//we need to print this manually as we do not have console log observer
			fmt.Println("error setting log observer: " + err.Error())
			return err
		}
	}
	log.Trace("logger updated", "level", flagsConfig.LogLevel, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return nil
}

func (er *estimatorRunner) run() error {
	general := er.cfg.General
	er.log.Info("starting estimator",
		"version", er.version,
		"gas metric", er.gasMetric.String(),
		"protocol version", general.ProtocolVersion,
		"metrics", len(er.metrics),
		"block size", general.BlockSize,
		"batches", general.NumBatches,
		"warmup batches", general.NumWarmupBatches)

	hostInfo := hostParameters.NewHostParameterGetter(er.version).GetHostInfo()
	er.logTable("host parameters", func() (string, error) { return createHostInfoTable(hostInfo) })

	baseConfig, err := params.LoadBaseConfig(er.cfg.BaseConfigs.ConfigDir, er.cfg.BaseConfigs.ByProtocolVersion, general.ProtocolVersion)
	if err != nil {
		return err
	}

	runHarness, contractCodes, err := er.createHarness()
	if err != nil {
		return err
	}

	generator, err := workload.NewGenerator(workload.ArgsGenerator{
		ActiveAccounts:       general.ActiveAccounts,
		DeployedAccounts:     general.DeployedAccounts,
		Seed:                 general.Seed,
		MaxSelectionAttempts: general.MaxSelectionAttempts,
		ContractCodes:        contractCodes,
		Hasher:               er.hasher,
		Marshalizer:          er.marshalizer,
		KeyGenerator:         signing.NewKeyGenerator(ed25519.NewEd25519()),
		Signer:               &singlesig.Ed25519Signer{},
	})
	if err != nil {
		return err
	}

	measurements := stats.NewMeasurements(er.gasMetric)
	costAssembler, err := assembler.NewAssembler(assembler.ArgsAssembler{
		Measurements: measurements,
		Overrides:    er.cfg.AssemblerOverrides(),
	})
	if err != nil {
		return err
	}

	runStatus, promHandler, err := er.createStatusHandler()
	if err != nil {
		return err
	}
	defer func() {
		runStatus.Close()
		er.writeStatusFile(promHandler)
	}()

	builder, err := estimator.NewRuntimeConfigBuilder(estimator.ArgsRuntimeConfigBuilder{
		Generator:        generator,
		Harness:          runHarness,
		Measurements:     measurements,
		Assembler:        costAssembler,
		StatusHandler:    runStatus,
		BaseConfig:       baseConfig,
		OverlayPolicy:    er.cfg.OverlayPolicy(),
		GasMetric:        er.gasMetric,
		Metrics:          er.metrics,
		BlockSize:        general.BlockSize,
		NumBatches:       general.NumBatches,
		NumWarmupBatches: general.NumWarmupBatches,
	})
	if err != nil {
		return err
	}

	err = builder.Measure()
	if err != nil {
		return err
	}

	er.logTable("measurements", func() (string, error) { return createMeasurementsTable(measurements) })
	err = er.saveMeasurements(measurements, hostInfo)
	if err != nil {
		return err
	}

	runtimeConfig, err := builder.Assemble()
	if err != nil {
		return err
	}

	return er.saveRuntimeConfig(runtimeConfig)
}

func (er *estimatorRunner) createHarness() (harness.Harness, map[metric.Metric][]byte, error) {
	replayFile := er.flagsConfig.ReplayMeasurementsFile
	if len(replayFile) > 0 {
		er.log.Info("replaying recorded measurements", "file", replayFile)
		recorded, err := stats.LoadFromFile(replayFile, er.gasMetric)
		if err != nil {
			return nil, nil, err
		}

		replay, err := harness.NewReplayHarness(recorded)
		if err != nil {
			return nil, nil, err
		}

		return replay, workload.PlaceholderContractCodes(), nil
	}

	contractCodes, err := workload.LoadContractCodes(er.cfg.Testbed.ContractsDir)
	if err != nil {
		return nil, nil, err
	}

	process, err := harness.NewProcessHarness(harness.ArgsProcessHarness{
		BinaryPath:  er.cfg.Testbed.BinaryPath,
		Timeout:     er.cfg.TestbedTimeout(),
		Marshalizer: er.marshalizer,
	})
	if err != nil {
		return nil, nil, err
	}

	return process, contractCodes, nil
}

func (er *estimatorRunner) createStatusHandler() (statusHandler.RunStatusHandler, *statusHandler.PrometheusStatusHandler, error) {
	if !er.cfg.Status.Enabled {
		return disabled.NewRunStatusHandler(), nil, nil
	}

	promHandler, err := statusHandler.NewPrometheusStatusHandler()
	if err != nil {
		return nil, nil, err
	}

	facade, err := statusHandler.NewRunStatusFacadeWithHandlers(statusHandler.NewLogStatusHandler(), promHandler)
	if err != nil {
		return nil, nil, err
	}

	return facade, promHandler, nil
}

func (er *estimatorRunner) writeStatusFile(promHandler *statusHandler.PrometheusStatusHandler) {
	if check.IfNil(promHandler) {
		return
	}

	err := promHandler.WriteToFile(er.cfg.Status.TextfilePath)
	if err != nil {
		er.log.Warn("could not write the run status file", "path", er.cfg.Status.TextfilePath, "error", err)
	}
}

func (er *estimatorRunner) saveMeasurements(measurements *stats.Measurements, hostInfo *hostParameters.HostInfo) error {
	path := er.flagsConfig.MeasurementsOutputFile
	if len(path) == 0 {
		return nil
	}

	err := measurements.SaveToFile(path, hostInfo.ToHostEntries())
	if err != nil {
		return fmt.Errorf("%w while saving the measurements to %s", err, path)
	}

	er.log.Info("measurements saved", "file", path)

	return nil
}

func (er *estimatorRunner) saveRuntimeConfig(runtimeConfig params.RuntimeConfig) error {
	er.logTable("runtime fees", func() (string, error) { return createFeesTable(runtimeConfig.TransactionCosts) })
	er.logTable("VM costs", func() (string, error) { return createExtCostsTable(runtimeConfig.WasmConfig) })

	fingerprint, err := params.Fingerprint(runtimeConfig, er.marshalizer, er.hasher)
	if err != nil {
		return err
	}

	err = params.SaveRuntimeConfig(runtimeConfig, er.flagsConfig.OutputFile)
	if err != nil {
		return fmt.Errorf("%w while saving the runtime config to %s", err, er.flagsConfig.OutputFile)
	}

	er.log.Info("runtime config saved", "file", er.flagsConfig.OutputFile, "fingerprint", fingerprint)

	return nil
}

func (er *estimatorRunner) logTable(name string, create func() (string, error)) {
	table, err := create()
	if err != nil {
		er.log.Warn("could not create table", "table", name, "error", err)
		return
	}

	er.log.Info(name + "\n" + table)
}
