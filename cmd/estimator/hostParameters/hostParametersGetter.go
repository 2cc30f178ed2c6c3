package hostParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

const unknownValue = "unknown"

type hostParametersGetter struct {
	versionString string
}

// NewHostParameterGetter will create a structure that is able to get and format the host's relevant parameters
func NewHostParameterGetter(version string) *hostParametersGetter {
	return &hostParametersGetter{
		versionString: version,
	}
}

// GetHostInfo is able to get all the known parameters of a host
func (hpg *hostParametersGetter) GetHostInfo() *HostInfo {
	hi := &HostInfo{
		AppVersion: hpg.versionString,
	}

	hpg.applyHostInfo(hi)
	hpg.applyCpuInfo(hi)
	hpg.applyCpuIdInfo(hi)
	hpg.applyMemInfo(hi)

	return hi
}

func (hpg *hostParametersGetter) applyHostInfo(hi *HostInfo) {
	info, err := host.Info()
	if err != nil {
		hi.OS = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	hi.OS = fmt.Sprintf("%s %s %s", info.OS, info.Platform, info.PlatformVersion)
	hi.KernelVersion = info.KernelVersion
}

func (hpg *hostParametersGetter) applyCpuInfo(hi *HostInfo) {
	rawCpuInfo, err := cpu.Info()
	if err != nil {
		hi.CPUModel = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	if len(rawCpuInfo) == 0 {
		hi.CPUModel = "[ERR:no logical cpus]"
		return
	}

	hi.CPUNumLogical = len(rawCpuInfo)
	hi.CPUModel = rawCpuInfo[0].ModelName
	hi.CPUMaxFreqInMHz = int(rawCpuInfo[0].Mhz)
	hi.CPUFlags = rawCpuInfo[0].Flags
	sort.Slice(hi.CPUFlags, func(i, j int) bool {
		return strings.Compare(hi.CPUFlags[i], hi.CPUFlags[j]) < 0
	})
}

// applyCpuIdInfo fills what the OS does not report, e.g. on hosts without /proc/cpuinfo
func (hpg *hostParametersGetter) applyCpuIdInfo(hi *HostInfo) {
	hi.CPUVendor = cpuid.CPU.VendorString
	hi.CPUNumPhysical = cpuid.CPU.PhysicalCores
	hi.CPUCacheL2 = cacheSize(cpuid.CPU.Cache.L2)
	hi.CPUCacheL3 = cacheSize(cpuid.CPU.Cache.L3)

	cpuModelMissing := len(hi.CPUModel) == 0 || strings.HasPrefix(hi.CPUModel, "[ERR:")
	if cpuModelMissing && len(cpuid.CPU.BrandName) > 0 {
		hi.CPUModel = cpuid.CPU.BrandName
	}
	if hi.CPUNumLogical == 0 {
		hi.CPUNumLogical = cpuid.CPU.LogicalCores
	}
	if len(hi.CPUFlags) == 0 {
		hi.CPUFlags = cpuid.CPU.FeatureSet()
		sort.Strings(hi.CPUFlags)
	}
}

func cacheSize(size int) string {
	if size <= 0 {
		return unknownValue
	}

	return core.ConvertBytes(uint64(size))
}

func (hpg *hostParametersGetter) applyMemInfo(hi *HostInfo) {
	vms, err := mem.VirtualMemory()
	if err != nil {
		hi.MemorySize = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	hi.MemorySize = core.ConvertBytes(vms.Total)
}
