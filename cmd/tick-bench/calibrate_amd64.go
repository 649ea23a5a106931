//go:build amd64

package main

import (
	"time"

	tickcounter "github.com/sheroz/tick-counter"
)

// Re-measures the counter frequency over a caller-chosen interval and checks
// for core migration around the run with the combined tick+core-id read.
func calibrationDemo(interval time.Duration) {
	_, core1 := tickcounter.ProcessorID()
	hz := tickcounter.MeasureFrequency(interval)
	_, core2 := tickcounter.ProcessorID()

	logger.Info().Msgf("Re-measured frequency: %.2f MHz (%v)", float64(hz)/1e6, tickcounter.MeasuredFrequencyBase(interval))
	if core1 != core2 {
		logger.Warn().Msgf("Calibration migrated from core %d to core %d", core1, core2)
	}
}
