// Package cpuinfo reports the processor environment a tick-counter
// measurement runs on. It is informational only - the counter package itself
// never consults it, and the invariant-tick-rate assumption stays an
// assumption even when InvariantTick is false.
package cpuinfo

import (
	"slices"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
)

// Info describes the processor and its timing-related capabilities.
type Info struct {
	VendorID      string
	ModelName     string
	PhysicalCores int
	LogicalCores  int
	// Clock rate advertised by the OS, MHz
	AdvertisedMhz float64
	// Base clock reported by the CPUID instruction, Hz; 0 when unknown
	ReportedHz int64
	// Combined tick+core-id read (RDTSCP) is available
	HasProcessorID bool
	// The OS reports a constant-rate tick counter
	InvariantTick bool
}

// cpuinfo flags announcing a fixed-rate time-stamp counter
var tickRateFlags = []string{"constant_tsc", "nonstop_tsc"}

// Function substitutions for unit tests
var (
	cpuInfoF = cpu.Info
	countsF  = cpu.Counts
)

// Describe collects processor identity and capability data from the CPUID
// instruction and the OS.
func Describe() (*Info, error) {
	osInfos, err := cpuInfoF()
	if err != nil {
		return nil, err
	}

	ret := Info{
		VendorID:       cpuid.CPU.VendorID.String(),
		ModelName:      cpuid.CPU.BrandName,
		PhysicalCores:  cpuid.CPU.PhysicalCores,
		LogicalCores:   cpuid.CPU.LogicalCores,
		ReportedHz:     cpuid.CPU.Hz,
		HasProcessorID: cpuid.CPU.Supports(cpuid.RDTSCP),
	}

	if len(osInfos) > 0 {
		first := osInfos[0]
		if ret.ModelName == "" {
			ret.ModelName = first.ModelName
		}
		if ret.VendorID == "" {
			ret.VendorID = first.VendorID
		}
		ret.AdvertisedMhz = first.Mhz
		ret.InvariantTick = hasAnyFlag(first.Flags, tickRateFlags)
	}

	if ret.LogicalCores <= 0 {
		if lcores, err := countsF(true); err == nil {
			ret.LogicalCores = lcores
		}
	}
	if ret.PhysicalCores <= 0 {
		if pcores, err := countsF(false); err == nil {
			ret.PhysicalCores = pcores
		}
	}

	return &ret, nil
}

func hasAnyFlag(flags []string, wanted []string) bool {
	for _, w := range wanted {
		if slices.Contains(flags, w) {
			return true
		}
	}
	return false
}
