package bench

import (
	"sync"
	"time"

	tickcounter "github.com/sheroz/tick-counter"
)

// Function substitution for unit tests
var frequencyF = tickcounter.Frequency

var (
	freqOnce   sync.Once
	cachedHz   uint64
	cachedBase tickcounter.FrequencyBase
)

// CounterFrequency returns the tick counter frequency, paying the calibration
// cost at most once per process. The first call may block for the whole
// calibration window on architectures without a frequency register. The
// physical tick rate is assumed constant for the process lifetime.
func CounterFrequency() (uint64, tickcounter.FrequencyBase) {
	freqOnce.Do(func() { cachedHz, cachedBase = frequencyF() })
	return cachedHz, cachedBase
}

// TicksToDuration converts an elapsed tick count to wall-clock time through
// the cached counter frequency.
func TicksToDuration(ticks uint64) time.Duration {
	hz, _ := CounterFrequency()
	return time.Duration(float64(ticks) * tickcounter.PrecisionNanoseconds(hz))
}
