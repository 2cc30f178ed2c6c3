package config

// ContextFlagsConfig will keep the values for the cli.Context flags
type ContextFlagsConfig struct {
	ConfigurationFile      string
	LogLevel               string
	DisableAnsiColor       bool
	EnableLogName          bool
	OutputFile             string
	MeasurementsOutputFile string
	ReplayMeasurementsFile string
	StatusFile             string
}
