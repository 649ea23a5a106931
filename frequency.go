package tickcounter

import (
	"fmt"
	"time"
)

// DefaultMeasureInterval is the calibration window used by Frequency on
// architectures without a frequency register.
const DefaultMeasureInterval = 1 * time.Second

// FrequencyBase tells where a counter frequency value came from - a hardware
// register (exact) or a timed calibration run (approximate, with error
// proportional to the calibration interval). Only these two origins exist.
type FrequencyBase struct {
	interval time.Duration
	measured bool
}

// HardwareFrequencyBase marks a frequency read directly from a hardware register.
func HardwareFrequencyBase() FrequencyBase {
	return FrequencyBase{}
}

// MeasuredFrequencyBase marks a frequency estimated by counting ticks over "interval".
func MeasuredFrequencyBase(interval time.Duration) FrequencyBase {
	return FrequencyBase{interval: interval, measured: true}
}

// IsHardware reports whether the frequency was provided by hardware.
func (b FrequencyBase) IsHardware() bool {
	return !b.measured
}

// MeasureInterval returns the calibration interval of a measured frequency;
// "ok" is false for hardware-provided values.
func (b FrequencyBase) MeasureInterval() (interval time.Duration, ok bool) {
	return b.interval, b.measured
}

func (b FrequencyBase) String() string {
	if b.measured {
		return fmt.Sprintf("measured in %v", b.interval)
	}
	return "hardware provided"
}
