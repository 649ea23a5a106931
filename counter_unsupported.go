//go:build !amd64 && !arm64

package tickcounter

import "runtime"

// The raw-counter contract is "hardware tick or explicit failure". There is
// no generic software clock to fall back to, so importing the package on an
// architecture without a supported counter fails at startup.

func init() {
	panic("tickcounter: no hardware tick counter backend for " + runtime.GOARCH)
}

// Stubs keep the package compilable for tooling; init makes them unreachable.

func Start() uint64 { return 0 }

func Stop() uint64 { return 0 }

func TickCount() uint64 { return 0 }

func Frequency() (uint64, FrequencyBase) { return 0, HardwareFrequencyBase() }
