//go:build !amd64

package main

import "time"

// The frequency register makes software calibration unnecessary here.
func calibrationDemo(time.Duration) {
	logger.Info().Msg("Frequency is hardware provided, skipping calibration")
}
