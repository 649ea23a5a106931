package tickcounter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	sleepTime = 20 * time.Millisecond
	fuzzPairs = 1000
)

func TestStartStop(t *testing.T) {
	assertT := assert.New(t)

	counterStart := Start()
	time.Sleep(sleepTime)
	elapsed := Stop() - counterStart
	assertT.Greater(elapsed, uint64(0))
}

func TestTickCounterHelper(t *testing.T) {
	assertT := assert.New(t)

	tc := Current()
	time.Sleep(sleepTime)
	assertT.Greater(tc.Elapsed(), uint64(0))
}

func TestConsecutiveReadsNeverGoBack(t *testing.T) {
	assertT := assert.New(t)

	for i := 0; i < fuzzPairs; i++ {
		c1 := TickCount()
		c2 := TickCount()
		assertT.GreaterOrEqual(c2, c1)
	}
}

func TestPrecision(t *testing.T) {
	assertT := assert.New(t)

	// 24 MHz is the generic timer rate on common arm64 parts
	assertT.Equal(uint64(41), uint64(PrecisionNanoseconds(24_000_000)))
}

func TestPrecisionOfZeroFrequency(t *testing.T) {
	assertT := assert.New(t)

	assertT.True(math.IsInf(PrecisionNanoseconds(0), 1))
}

func TestFrequencyBase(t *testing.T) {
	assertT := assert.New(t)

	hw := HardwareFrequencyBase()
	assertT.True(hw.IsHardware())
	_, ok := hw.MeasureInterval()
	assertT.False(ok)
	assertT.Equal("hardware provided", hw.String())

	measured := MeasuredFrequencyBase(100 * time.Millisecond)
	assertT.False(measured.IsHardware())
	interval, ok := measured.MeasureInterval()
	assertT.True(ok)
	assertT.Equal(100*time.Millisecond, interval)
	assertT.Equal("measured in 100ms", measured.String())
}

func BenchmarkTickCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TickCount()
	}
}

func BenchmarkStartStop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		counterStart := Start()
		_ = Stop() - counterStart
	}
}
