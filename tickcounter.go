// Package tickcounter samples the CPU tick counter for high-resolution
// benchmarks:
//   - on amd64 it executes the RDTSC instruction, fenced so that out-of-order
//     execution does not bleed surrounding code into the measured region
//   - on arm64 it reads the CNTVCT_EL0 counter-timer register
//
// Tick values are comparable only within one core unless the platform keeps
// an invariant, synchronized counter across cores. The package assumes the
// tick rate is constant for the process lifetime and does not verify either
// assumption. On any other architecture importing the package panics - there
// is no software-clock fallback.
package tickcounter

// TickCounter holds the starting point of one measurement. It is an immutable
// value; capture a new one for every measured region.
type TickCounter struct {
	start uint64
}

// Current captures a starting tick for a measurement.
func Current() TickCounter {
	return TickCounter{start: Start()}
}

// Elapsed returns the number of ticks since the counter was captured.
func (tc TickCounter) Elapsed() uint64 {
	return Stop() - tc.start
}
