package params

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-chain-core-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
)

var log = logger.GetOrCreate("params")

const extCostsKey = "wasm_config.ext_costs"

// ByProtocolVersion maps a base config file to the first protocol version it applies to
type ByProtocolVersion struct {
	StartProtocolVersion uint32
	FileName             string
}

// LoadRuntimeConfig reads a runtime config TOML file. The ext costs section is decoded strictly:
// every cost must be present and no unknown cost is accepted.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("%w while loading runtime config %s", err, path)
	}

	cfg := RuntimeConfig{}
	err = tree.Unmarshal(&cfg)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("%w while decoding runtime config %s", err, path)
	}

	extCostsTree, ok := tree.Get(extCostsKey).(*toml.Tree)
	if !ok {
		return RuntimeConfig{}, fmt.Errorf("%w in %s", ErrMissingExtCosts, path)
	}

	cfg.WasmConfig.ExtCosts, err = DecodeExtCosts(extCostsTree.ToMap())
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("%w in %s", err, path)
	}

	return cfg, nil
}

// DecodeExtCosts builds an ExtCostsConfig out of a name to value map. Missing or unknown names are errors.
func DecodeExtCosts(values map[string]interface{}) (ExtCostsConfig, error) {
	extCosts := ExtCostsConfig{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		ErrorUnset:  true,
		Result:      &extCosts,
	})
	if err != nil {
		return ExtCostsConfig{}, err
	}

	err = decoder.Decode(values)
	if err != nil {
		return ExtCostsConfig{}, fmt.Errorf("%w while decoding ext costs", err)
	}

	return extCosts, nil
}

// SaveRuntimeConfig writes a runtime config as a TOML file
func SaveRuntimeConfig(cfg RuntimeConfig, path string) error {
	err := core.SaveTomlFile(&cfg, path)
	if err != nil {
		return fmt.Errorf("%w while saving runtime config %s", err, path)
	}

	return nil
}

// MatchingVersion returns the entry with the highest start version not above the provided protocol version.
// Versions below every start version match the first entry.
func MatchingVersion(versions []ByProtocolVersion, protocolVersion uint32) (ByProtocolVersion, error) {
	if len(versions) == 0 {
		return ByProtocolVersion{}, ErrInvalidBaseConfigVersions
	}

	sorted := make([]ByProtocolVersion, len(versions))
	copy(sorted, versions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartProtocolVersion < sorted[j].StartProtocolVersion
	})

	currentVersion := sorted[0]
	for _, version := range sorted {
		if version.StartProtocolVersion > protocolVersion {
			break
		}

		currentVersion = version
	}

	return currentVersion, nil
}

// LoadBaseConfig returns the base runtime config of the provided protocol version. Without any version
// entry the built in baseline is returned.
func LoadBaseConfig(configDir string, versions []ByProtocolVersion, protocolVersion uint32) (RuntimeConfig, error) {
	if len(versions) == 0 {
		log.Debug("no base config files, using the built in baseline", "protocol version", DefaultProtocolVersion)
		cfg := DefaultRuntimeConfig()
		return cfg, nil
	}

	version, err := MatchingVersion(versions, protocolVersion)
	if err != nil {
		return RuntimeConfig{}, err
	}

	path := filepath.Join(configDir, version.FileName)
	log.Debug("loading base config", "path", path, "start protocol version", version.StartProtocolVersion,
		"requested protocol version", protocolVersion)

	return LoadRuntimeConfig(path)
}
