package hostParameters

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-params-estimator-go/stats"
)

// HostInfo holds the relevant parameters of the host the samples are recorded on
type HostInfo struct {
	AppVersion      string
	OS              string
	KernelVersion   string
	CPUModel        string
	CPUVendor       string
	CPUNumLogical   int
	CPUNumPhysical  int
	CPUMaxFreqInMHz int
	CPUCacheL2      string
	CPUCacheL3      string
	CPUFlags        []string
	MemorySize      string
}

// ToStrings returns the host parameters as name and value pairs
func (hi *HostInfo) ToStrings() [][]string {
	return [][]string{
		{"App version", hi.AppVersion},
		{"OS", hi.OS},
		{"Kernel version", hi.KernelVersion},
		{"CPU model", hi.CPUModel},
		{"CPU vendor", hi.CPUVendor},
		{"CPU logical cores", fmt.Sprintf("%d", hi.CPUNumLogical)},
		{"CPU physical cores", fmt.Sprintf("%d", hi.CPUNumPhysical)},
		{"CPU max freq", fmt.Sprintf("%d MHz", hi.CPUMaxFreqInMHz)},
		{"CPU L2 cache", hi.CPUCacheL2},
		{"CPU L3 cache", hi.CPUCacheL3},
		{"CPU flags", strings.Join(hi.CPUFlags, " ")},
		{"Memory", hi.MemorySize},
	}
}

// ToHostEntries returns the host parameters in the layout stored along the measurements
func (hi *HostInfo) ToHostEntries() []stats.HostEntry {
	lines := hi.ToStrings()
	entries := make([]stats.HostEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, stats.HostEntry{
			Name:  line[0],
			Value: line[1],
		})
	}

	return entries
}
