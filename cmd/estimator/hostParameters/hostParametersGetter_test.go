package hostParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostParametersGetter_GetHostInfo(t *testing.T) {
	t.Parallel()

	hpg := NewHostParameterGetter("v1.0.0")
	hi := hpg.GetHostInfo()

	assert.Equal(t, "v1.0.0", hi.AppVersion)
	assert.NotEmpty(t, hi.MemorySize)
	assert.NotEmpty(t, hi.CPUCacheL2)
}

func TestHostInfo_ToHostEntries(t *testing.T) {
	t.Parallel()

	hi := &HostInfo{
		AppVersion:    "v1.0.0",
		CPUModel:      "model",
		CPUNumLogical: 8,
		CPUFlags:      []string{"avx", "sse"},
		MemorySize:    "16.00 GB",
	}

	entries := hi.ToHostEntries()
	assert.Len(t, entries, len(hi.ToStrings()))
	assert.Equal(t, "App version", entries[0].Name)
	assert.Equal(t, "v1.0.0", entries[0].Value)

	found := 0
	for _, entry := range entries {
		switch entry.Name {
		case "CPU logical cores":
			assert.Equal(t, "8", entry.Value)
			found++
		case "CPU flags":
			assert.Equal(t, "avx sse", entry.Value)
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestCacheSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unknownValue, cacheSize(-1))
	assert.Equal(t, unknownValue, cacheSize(0))
	assert.Equal(t, "1.00 MB", cacheSize(1024*1024))
}
