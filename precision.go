package tickcounter

// PrecisionNanoseconds returns the counter resolution in nanoseconds for a
// counter ticking at "hz". A zero frequency yields +Inf rather than an error,
// so downstream tick-to-duration arithmetic degrades to an obviously wrong
// value instead of aborting; Frequency never reports zero on a supported
// backend.
func PrecisionNanoseconds(hz uint64) float64 {
	return 1e9 / float64(hz)
}
