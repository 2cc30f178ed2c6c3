package stats

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core"

	"github.com/multiversx/mx-chain-params-estimator-go/common"
	"github.com/multiversx/mx-chain-params-estimator-go/metric"
)

// SampleEntry is one recorded sample as stored in a measurements file
type SampleEntry struct {
	Metric    string `toml:"Metric"`
	TotalCost uint64 `toml:"TotalCost"`
	Count     uint64 `toml:"Count"`
}

// HostEntry is one host parameter captured when the samples were recorded
type HostEntry struct {
	Name  string `toml:"Name"`
	Value string `toml:"Value"`
}

// MeasurementsFile is the TOML layout of a measurements file
type MeasurementsFile struct {
	GasMetric string        `toml:"GasMetric"`
	Host      []HostEntry   `toml:"Host"`
	Samples   []SampleEntry `toml:"Samples"`
}

// Export converts the store into its file layout, metrics in measurement order
func (m *Measurements) Export(host []HostEntry) *MeasurementsFile {
	file := &MeasurementsFile{
		GasMetric: m.gasMetric.String(),
		Host:      host,
		Samples:   make([]SampleEntry, 0),
	}

	for _, mt := range m.Metrics() {
		for _, sample := range m.Samples(mt) {
			file.Samples = append(file.Samples, SampleEntry{
				Metric:    mt.String(),
				TotalCost: sample.TotalCost,
				Count:     sample.Count,
			})
		}
	}

	return file
}

// Import builds a measurements store out of a file layout
func Import(file *MeasurementsFile) (*Measurements, error) {
	if file == nil {
		return nil, ErrNilMeasurements
	}

	gasMetric, err := common.ParseGasMetric(file.GasMetric)
	if err != nil {
		return nil, err
	}

	m := NewMeasurements(gasMetric)
	for _, entry := range file.Samples {
		mt, errFind := metric.FromName(entry.Metric)
		if errFind != nil {
			return nil, errFind
		}

		err = m.Record(mt, Sample{TotalCost: entry.TotalCost, Count: entry.Count})
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SaveToFile writes the store as a TOML measurements file
func (m *Measurements) SaveToFile(path string, host []HostEntry) error {
	err := core.SaveTomlFile(m.Export(host), path)
	if err != nil {
		return fmt.Errorf("%w while saving measurements to %s", err, path)
	}

	log.Debug("saved measurements", "path", path, "metrics", len(m.Metrics()))

	return nil
}

// LoadFromFile reads a TOML measurements file. An expected gas metric other than the recorded one is an error.
func LoadFromFile(path string, expected common.GasMetric) (*Measurements, error) {
	file := &MeasurementsFile{}
	err := core.LoadTomlFile(file, path)
	if err != nil {
		return nil, fmt.Errorf("%w while loading measurements from %s", err, path)
	}

	m, err := Import(file)
	if err != nil {
		return nil, err
	}
	if m.GasMetric() != expected {
		return nil, fmt.Errorf("%w: file recorded under %s, run uses %s", ErrGasMetricMismatch, m.GasMetric(), expected)
	}

	return m, nil
}
