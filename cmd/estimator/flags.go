package main

import (
	"strings"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/multiversx/mx-chain-params-estimator-go/config"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"workload, testbed, overlay and base config settings.",
		Value: "./config/config.toml",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,harness:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the harness package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logWithLoggerName is used to enable log correlation elements
	logWithLoggerName = cli.BoolFlag{
		Name:  "log-logger-name",
		Usage: "Boolean option for logger name in the logs.",
	}
	// disableAnsiColor defines if the logger subsystem should prevent displaying ANSI colors
	disableAnsiColor = cli.BoolFlag{
		Name:  "disable-ansi-color",
		Usage: "Boolean option for disabling ANSI colors in the logging system.",
	}
	// gasMetric overrides the gas metric from the config file
	gasMetric = cli.StringFlag{
		Name:  "gas-metric",
		Usage: "The physical `metric` every sample is measured in: time or icount. Overrides General.GasMetric.",
	}
	// protocolVersion overrides the protocol version from the config file
	protocolVersion = cli.UintFlag{
		Name:  "protocol-version",
		Usage: "The protocol `version` selecting the base runtime config. Overrides General.ProtocolVersion.",
	}
	// blockSize overrides the batch size from the config file
	blockSize = cli.IntFlag{
		Name:  "block-size",
		Usage: "The number of transactions in a batch. Overrides General.BlockSize.",
	}
	// numBatches overrides the number of recorded batches from the config file
	numBatches = cli.IntFlag{
		Name:  "num-batches",
		Usage: "The number of recorded batches per metric. Overrides General.NumBatches.",
	}
	// numWarmupBatches overrides the number of warmup batches from the config file
	numWarmupBatches = cli.IntFlag{
		Name:  "num-warmup-batches",
		Usage: "The number of discarded batches run before the recorded ones. Overrides General.NumWarmupBatches.",
	}
	// metricsList restricts the run to the provided metrics
	metricsList = cli.StringFlag{
		Name:  "metrics",
		Usage: "Comma separated `names` of the metrics to measure. Overrides General.Metrics.",
	}
	// testbedPath overrides the testbed binary path from the config file
	testbedPath = cli.StringFlag{
		Name:  "testbed",
		Usage: "The `" + filePathPlaceholder + "` of the testbed binary. Overrides Testbed.BinaryPath.",
	}
	// contractsDir overrides the contracts directory from the config file
	contractsDir = cli.StringFlag{
		Name:  "contracts-dir",
		Usage: "The `" + filePathPlaceholder + "` of the directory holding the deployed contract codes. Overrides Testbed.ContractsDir.",
	}
	// outputFile defines the file the resulting runtime config is written to
	outputFile = cli.StringFlag{
		Name:  "output",
		Usage: "The `" + filePathPlaceholder + "` of the TOML file the resulting runtime config is written to.",
		Value: "./runtime_config.toml",
	}
	// measurementsOutputFile defines the file the recorded samples are written to
	measurementsOutputFile = cli.StringFlag{
		Name:  "measurements-out",
		Usage: "The `" + filePathPlaceholder + "` of the TOML file the recorded samples are written to. Empty disables it.",
	}
	// replayMeasurementsFile replays a measurements file instead of running the testbed
	replayMeasurementsFile = cli.StringFlag{
		Name: "replay",
		Usage: "The `" + filePathPlaceholder + "` of a measurements file. When set the recorded samples are served " +
			"instead of running the testbed.",
	}
	// statusFile overrides the run status file from the config file
	statusFile = cli.StringFlag{
		Name:  "status-file",
		Usage: "The `" + filePathPlaceholder + "` of the prometheus text file holding the run status. Overrides Status.TextfilePath.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		logLevel,
		logWithLoggerName,
		disableAnsiColor,
		gasMetric,
		protocolVersion,
		blockSize,
		numBatches,
		numWarmupBatches,
		metricsList,
		testbedPath,
		contractsDir,
		outputFile,
		measurementsOutputFile,
		replayMeasurementsFile,
		statusFile,
	}
}

func getFlagsConfig(ctx *cli.Context) *config.ContextFlagsConfig {
	flagsConfig := &config.ContextFlagsConfig{}

	flagsConfig.ConfigurationFile = ctx.GlobalString(configurationFile.Name)
	flagsConfig.LogLevel = ctx.GlobalString(logLevel.Name)
	flagsConfig.EnableLogName = ctx.GlobalBool(logWithLoggerName.Name)
	flagsConfig.DisableAnsiColor = ctx.GlobalBool(disableAnsiColor.Name)
	flagsConfig.OutputFile = ctx.GlobalString(outputFile.Name)
	flagsConfig.MeasurementsOutputFile = ctx.GlobalString(measurementsOutputFile.Name)
	flagsConfig.ReplayMeasurementsFile = ctx.GlobalString(replayMeasurementsFile.Name)
	flagsConfig.StatusFile = ctx.GlobalString(statusFile.Name)

	return flagsConfig
}

func applyFlags(ctx *cli.Context, cfg *config.EstimatorConfig, flagsConfig *config.ContextFlagsConfig, log logger.Logger) {
	if ctx.IsSet(gasMetric.Name) {
		cfg.General.GasMetric = ctx.GlobalString(gasMetric.Name)
		log.Debug("gas metric overridden", "value", cfg.General.GasMetric)
	}
	if ctx.IsSet(protocolVersion.Name) {
		cfg.General.ProtocolVersion = uint32(ctx.GlobalUint(protocolVersion.Name))
	}
	if ctx.IsSet(blockSize.Name) {
		cfg.General.BlockSize = ctx.GlobalInt(blockSize.Name)
	}
	if ctx.IsSet(numBatches.Name) {
		cfg.General.NumBatches = ctx.GlobalInt(numBatches.Name)
	}
	if ctx.IsSet(numWarmupBatches.Name) {
		cfg.General.NumWarmupBatches = ctx.GlobalInt(numWarmupBatches.Name)
	}
	if ctx.IsSet(metricsList.Name) {
		cfg.General.Metrics = splitList(ctx.GlobalString(metricsList.Name))
		log.Debug("metrics overridden", "value", strings.Join(cfg.General.Metrics, ","))
	}
	if ctx.IsSet(testbedPath.Name) {
		cfg.Testbed.BinaryPath = ctx.GlobalString(testbedPath.Name)
	}
	if ctx.IsSet(contractsDir.Name) {
		cfg.Testbed.ContractsDir = ctx.GlobalString(contractsDir.Name)
	}
	if len(flagsConfig.StatusFile) > 0 {
		cfg.Status.Enabled = true
		cfg.Status.TextfilePath = flagsConfig.StatusFile
	}
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}

	return items
}
