//go:build amd64

package tickcounter

import (
	"math"
	"time"
)

// Raw reads, implemented in counter_amd64.s

func tickStart() uint64
func tickStop() uint64
func tickCount() uint64
func tickProcessorID() (tick uint64, core uint32)

// Start returns the current tick counter value to use as a starting point.
// MFENCE+LFENCE before RDTSC keep the caller's earlier instructions from
// drifting past the read, so none of the preceding work is charged to the
// measured region.
func Start() uint64 {
	return tickStart()
}

// Stop returns the current tick counter value to use as a stopping point.
// An LFENCE after RDTSC keeps later instructions from starting before the
// read; instructions preceding the read are deliberately left unordered,
// which keeps the bias one-sided and the overhead inside the measured region
// minimal.
func Stop() uint64 {
	return tickStop()
}

// TickCount reads the time-stamp counter without any fencing.
func TickCount() uint64 {
	return tickCount()
}

// ProcessorID reads the time-stamp counter together with the id of the core
// executing the read, from a single RDTSCP instruction so the two values are
// consistent. Differing core ids from two calls flag a migration between the
// reads, not a fault in either read.
func ProcessorID() (uint64, uint32) {
	return tickProcessorID()
}

// Frequency measures the tick counter frequency in Hz over
// DefaultMeasureInterval. amd64 exposes no counter frequency register, so the
// result is always tagged as measured. The call blocks for the whole
// interval; pay it once and cache the result for the process lifetime.
func Frequency() (uint64, FrequencyBase) {
	return MeasureFrequency(DefaultMeasureInterval), MeasuredFrequencyBase(DefaultMeasureInterval)
}

// MeasureFrequency counts ticks across a real-time sleep of "interval" and
// returns the rate rounded to the nearest Hz. Calibration is all-or-nothing;
// there is no partial result and no retry.
func MeasureFrequency(interval time.Duration) uint64 {
	counterStart := Start()
	time.Sleep(interval)
	counterStop := Stop()
	return uint64(math.Round(float64(counterStop-counterStart) / interval.Seconds()))
}
