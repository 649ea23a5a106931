// Demo harness for the tick counter: prints the processor environment, the
// counter frequency and precision, compares tick-derived durations with the
// standard clock and measures a sample workload.
package main

import (
	"crypto/sha256"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/aknopov/fancylogger"
	tickcounter "github.com/sheroz/tick-counter"
	"github.com/sheroz/tick-counter/bench"
	"github.com/sheroz/tick-counter/cpuinfo"
)

const (
	payloadSize = 8192
)

var (
	logger = fancylogger.NewLogger(os.Stdout, fancylogger.LiteFg)
)

func main() {
	interval := flag.Duration("interval", tickcounter.DefaultMeasureInterval, "frequency calibration interval")
	totalRuns := flag.Int("n", 200, "total sample-task runs")
	concur := flag.Int("c", 4, "concurrent sample tasks")
	flag.Parse()

	reportEnvironment()
	reportFrequency()
	calibrationDemo(*interval)
	compareWithSystemClock()
	runSampleBench(*totalRuns, *concur)
}

func reportEnvironment() {
	logger.Info().Msgf("Environment: %s/%s", runtime.GOOS, runtime.GOARCH)

	info, err := cpuinfo.Describe()
	if err != nil {
		logger.Warn().Msgf("Processor probe failed: %v", err)
		return
	}
	logger.Info().Msgf("Processor: %s (%s)", info.ModelName, info.VendorID)
	logger.Info().Msgf("Cores: %d physical, %d logical", info.PhysicalCores, info.LogicalCores)
	logger.Info().Msgf("Advertised clock: %.2f MHz", info.AdvertisedMhz)
	if !info.InvariantTick {
		logger.Warn().Msg("OS does not report an invariant tick rate - measured durations may drift")
	}
}

func reportFrequency() {
	hz, base := bench.CounterFrequency()
	logger.Info().Msgf("Tick frequency: %.2f MHz (%v)", float64(hz)/1e6, base)
	logger.Info().Msgf("Tick precision: %.2f ns", tickcounter.PrecisionNanoseconds(hz))
}

func compareWithSystemClock() {
	wallStart := time.Now()
	counterStart := tickcounter.Start()
	time.Sleep(1 * time.Second)
	elapsedTicks := tickcounter.Stop() - counterStart
	wallElapsed := time.Since(wallStart)

	logger.Info().Msgf("Elapsed ticks across a 1s sleep: %d", elapsedTicks)
	logger.Info().Msgf("Tick-derived time: %v (system clock: %v)", bench.TicksToDuration(elapsedTicks), wallElapsed)
}

func runSampleBench(totalRuns int, concur int) {
	var payload [payloadSize]byte
	task := func() error {
		_ = sha256.Sum256(payload[:])
		return nil
	}

	stats := bench.RunTicks([]bench.Task{task}, totalRuns, concur)

	oneStat := stats[0]
	logger.Info().Msgf("Sample task: SHA-256 over %d bytes", payloadSize)
	logger.Info().Int("  num tests", oneStat.Count).Send()
	logger.Info().Int("  num concur", concur).Send()
	logger.Info().Int("  num failures", oneStat.Fails).Send()
	logger.Info().Dur("  total", oneStat.TotalTime).Send()
	logger.Info().Dur("  max", oneStat.MaxTime).Send()
	logger.Info().Dur("  med", oneStat.MedTime).Send()
	logger.Info().Dur("  min", oneStat.MinTime).Send()
	logger.Info().Dur("  avg", oneStat.AvgTime).Send()
	logger.Info().Dur("  stdev", oneStat.StdDev).Send()
}
