//go:build arm64

package tickcounter

// Raw reads, implemented in counter_arm64.s

func tickCount() uint64
func tickFrequency() uint64

// Start returns the current tick counter value to use as a starting point.
// CNTVCT_EL0 reads are ordered with respect to surrounding code, so no extra
// fencing is needed on either side.
func Start() uint64 {
	return tickCount()
}

// Stop returns the current tick counter value to use as a stopping point.
func Stop() uint64 {
	return tickCount()
}

// TickCount reads the CNTVCT_EL0 counter-timer register.
func TickCount() uint64 {
	return tickCount()
}

// Frequency returns the tick counter frequency in Hz as reported by the
// CNTFRQ_EL0 register. The value is exact; no calibration takes place.
func Frequency() (uint64, FrequencyBase) {
	return tickFrequency(), HardwareFrequencyBase()
}
