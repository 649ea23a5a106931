// Package bench runs tasks concurrently and aggregates their latencies
// measured with the raw CPU tick counter.
package bench

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/ericlagergren/decimal"
	tickcounter "github.com/sheroz/tick-counter"
)

// Statistics for running one task; durations are derived from raw tick
// samples through the cached counter frequency.
type RunStats struct {
	Count     int           `json,yaml:"count"`
	TotalTime time.Duration `json,yaml:"sum_time"`
	AvgTime   time.Duration `json,yaml:"avg_time"`
	MinTime   time.Duration `json,yaml:"min_time"`
	MaxTime   time.Duration `json,yaml:"max_time"`
	MedTime   time.Duration `json,yaml:"med_time"`
	StdDev    time.Duration `json,yaml:"stdev_time"`
	Fails     int           `json,yaml:"fails"`
	Ticks     []uint64      `json,yaml:"ticks"`
}

// Task under measurement
type Task func() error

type taskFixture struct {
	sema      *chan struct{}  // threads number throttle - shared
	waitGroup *sync.WaitGroup // completion flag - shared
	lock      sync.Mutex      // `ticks` guard
	task      Task
	ticks     []uint64
	fails     int
}

// No data struct
var nd = struct{}{}

// Runs several tasks concurrently, timing each run with the tick counter
//
//   - tasks - tasks to run
//
//   - totalRuns - total number of tasks to run (> len(tasks))
//
//   - concurrent - number of concurrent tasks (< totalRuns)
//
//     return tick and time statistics for each task
func RunTicks(tasks []Task, totalRuns int, concurrent int) []RunStats {
	waitGroup := new(sync.WaitGroup)
	sema := make(chan struct{}, concurrent)
	fixtures := make([]*taskFixture, len(tasks))
	for i, task := range tasks {
		fixtures[i] = createFixture(task, &sema, waitGroup)
	}

	for i := 0; i < totalRuns; i++ {
		idx := i % len(tasks)
		waitGroup.Add(1)
		go runOneTask(fixtures[idx])
	}

	waitGroup.Wait()

	return calcStats(fixtures)
}

// CalcPvals compares two series of runs and calculates probabilities that
// latencies in the second series are larger, using Welch's t-test.
//
// "stats1" and "stats2" should have the same number of tasks; run counts in
// task pairs are not required to be equal, but they should be larger than 1.
func CalcPvals(stats1, stats2 []RunStats) ([]float64, error) {
	if len(stats1) != len(stats2) {
		return nil, errors.New("different size of tasks")
	}

	pVals := make([]float64, 0, len(stats1))
	for i := range stats1 {
		tRes, err := TwoSampleWelchTTest(stat2Sample(stats1[i]), stat2Sample(stats2[i]), LocationGreater)
		if err != nil {
			return nil, fmt.Errorf("invalid statistics data in sample %d: %v", i, err)
		}

		pVals = append(pVals, tRes.P)
	}

	return pVals, nil
}

func stat2Sample(rs RunStats) tTestSample {
	return tTestSample{weight: float64(rs.Count), mean: float64(rs.AvgTime), variance: float64(rs.StdDev) * float64(rs.StdDev)}
}

func createFixture(task Task, sema *chan struct{}, waitGroup *sync.WaitGroup) *taskFixture {
	var fixture taskFixture
	fixture.sema = sema
	fixture.waitGroup = waitGroup
	fixture.lock = sync.Mutex{}
	fixture.task = task
	fixture.ticks = make([]uint64, 0)
	return &fixture
}

func runOneTask(fixture *taskFixture) {
	*fixture.sema <- nd
	defer func() { <-*fixture.sema }()
	defer fixture.waitGroup.Done()

	counter := tickcounter.Current()
	err := fixture.task()
	elapsed := counter.Elapsed()

	fixture.lock.Lock()
	fixture.ticks = append(fixture.ticks, elapsed)
	if err != nil {
		fixture.fails++
	}
	fixture.lock.Unlock()
}

func calcStats(fixtures []*taskFixture) []RunStats {
	hz, _ := CounterFrequency()
	nsPerTick := tickcounter.PrecisionNanoseconds(hz)

	ret := make([]RunStats, 0)

	precCtx := decimal.Context128
	for _, fixture := range fixtures {
		sortticks := make([]uint64, len(fixture.ticks))
		copy(sortticks, fixture.ticks)
		sort.Slice(sortticks, func(i, j int) bool { return sortticks[i] < sortticks[j] })

		sum := new(decimal.Big)
		sum2 := new(decimal.Big)
		bigT := new(decimal.Big)
		for _, ticks := range sortticks {
			bigT.SetUint64(ticks)
			precCtx.Add(sum, sum, bigT)
			precCtx.Add(sum2, sum2, bigT.Mul(bigT, bigT))
		}

		testCount := len(sortticks)
		fCount := float64(testCount)
		var testStats RunStats
		testStats.Count = testCount
		testStats.TotalTime = ticks2Duration(big2float(sum), nsPerTick)
		testStats.AvgTime = ticks2Duration(big2float(sum)/fCount, nsPerTick)
		testStats.MinTime = ticks2Duration(float64(sortticks[0]), nsPerTick)
		testStats.MedTime = ticks2Duration(float64(sortticks[testCount/2]), nsPerTick)
		testStats.MaxTime = ticks2Duration(float64(sortticks[testCount-1]), nsPerTick)
		testStats.StdDev = ticks2Duration(math.Sqrt(big2float(sum2)/(fCount-1)-big2float(sum)*big2float(sum)/fCount/(fCount-1)), nsPerTick)

		testStats.Fails = fixture.fails

		testStats.Ticks = fixture.ticks

		ret = append(ret, testStats)
	}
	return ret
}

func ticks2Duration(ticks float64, nsPerTick float64) time.Duration {
	return time.Duration(ticks * nsPerTick)
}

func big2float(val *decimal.Big) float64 {
	conv, _ := val.Float64()
	return conv
}
