package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extCostsValues(cfg ExtCostsConfig) map[string]interface{} {
	values := make(map[string]interface{})
	for name, value := range cfg.ToMap() {
		values[name] = int64(value)
	}

	return values
}

func TestMatchingVersion(t *testing.T) {
	t.Parallel()

	versions := []ByProtocolVersion{
		{StartProtocolVersion: 42, FileName: "v42.toml"},
		{StartProtocolVersion: 30, FileName: "v30.toml"},
		{StartProtocolVersion: 35, FileName: "v35.toml"},
	}

	tests := []struct {
		protocolVersion uint32
		expected        string
	}{
		{protocolVersion: 0, expected: "v30.toml"},
		{protocolVersion: 30, expected: "v30.toml"},
		{protocolVersion: 34, expected: "v30.toml"},
		{protocolVersion: 35, expected: "v35.toml"},
		{protocolVersion: 41, expected: "v35.toml"},
		{protocolVersion: 42, expected: "v42.toml"},
		{protocolVersion: 100, expected: "v42.toml"},
	}
	for _, tt := range tests {
		version, err := MatchingVersion(versions, tt.protocolVersion)
		require.Nil(t, err)
		assert.Equal(t, tt.expected, version.FileName, "protocol version %d", tt.protocolVersion)
	}
	assert.Equal(t, "v42.toml", versions[0].FileName)

	_, err := MatchingVersion(nil, 1)
	assert.Equal(t, ErrInvalidBaseConfigVersions, err)
}

func TestLoadBaseConfig_NoVersionsReturnsBaseline(t *testing.T) {
	t.Parallel()

	cfg, err := LoadBaseConfig("", nil, 12)
	require.Nil(t, err)
	assert.Equal(t, DefaultRuntimeConfig(), cfg)
}

func TestRuntimeConfig_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := DefaultRuntimeConfig()
	original.ProtocolVersion = 45
	original.WasmConfig.ExtCosts.Sha256Base = 1234
	require.Nil(t, SaveRuntimeConfig(original, filepath.Join(dir, "runtime45.toml")))

	baseline := DefaultRuntimeConfig()
	require.Nil(t, SaveRuntimeConfig(baseline, filepath.Join(dir, "runtime38.toml")))

	versions := []ByProtocolVersion{
		{StartProtocolVersion: 38, FileName: "runtime38.toml"},
		{StartProtocolVersion: 45, FileName: "runtime45.toml"},
	}

	loaded, err := LoadBaseConfig(dir, versions, 50)
	require.Nil(t, err)
	assert.Equal(t, original, loaded)

	loaded, err = LoadBaseConfig(dir, versions, 40)
	require.Nil(t, err)
	assert.Equal(t, baseline, loaded)
}

func TestLoadRuntimeConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadRuntimeConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.NotNil(t, err)
	})
	t.Run("missing ext costs section should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "runtime.toml")
		require.Nil(t, os.WriteFile(path, []byte("protocol_version = 3\n"), 0644))

		_, err := LoadRuntimeConfig(path)
		assert.True(t, errors.Is(err, ErrMissingExtCosts))
	})
	t.Run("missing ext cost should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "runtime.toml")
		content := "protocol_version = 3\n[wasm_config.ext_costs]\nbase = 10\n"
		require.Nil(t, os.WriteFile(path, []byte(content), 0644))

		_, err := LoadRuntimeConfig(path)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "sha256_base")
	})
}

func TestDecodeExtCosts(t *testing.T) {
	t.Parallel()

	t.Run("complete map should work", func(t *testing.T) {
		t.Parallel()

		extCosts, err := DecodeExtCosts(extCostsValues(DefaultExtCostsConfig()))
		require.Nil(t, err)
		assert.Equal(t, DefaultExtCostsConfig(), extCosts)
	})
	t.Run("missing key should error", func(t *testing.T) {
		t.Parallel()

		values := extCostsValues(DefaultExtCostsConfig())
		delete(values, "touching_trie_node")

		_, err := DecodeExtCosts(values)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "touching_trie_node")
	})
	t.Run("unknown key should error", func(t *testing.T) {
		t.Parallel()

		values := extCostsValues(DefaultExtCostsConfig())
		values["storage_iter_prev_base"] = int64(1)

		_, err := DecodeExtCosts(values)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "storage_iter_prev_base")
	})
	t.Run("negative value should error", func(t *testing.T) {
		t.Parallel()

		values := extCostsValues(DefaultExtCostsConfig())
		values["base"] = int64(-1)

		_, err := DecodeExtCosts(values)
		assert.NotNil(t, err)
	})
}
