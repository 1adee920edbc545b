package layerkit

import "time"

// Duration represents an elapsed span of time with microsecond precision,
// stored as seconds internally so recognizer arithmetic (velocity, timeouts)
// stays in floating point throughout.
type Duration struct {
	seconds float64
}

// DurationFromSeconds constructs a Duration from a fractional number of seconds.
func DurationFromSeconds(s float64) Duration {
	return Duration{seconds: s}
}

// DurationFromMilliseconds constructs a Duration from a millisecond count.
func DurationFromMilliseconds(ms float64) Duration {
	return Duration{seconds: ms / 1000.0}
}

// Seconds returns the duration in fractional seconds.
func (d Duration) Seconds() float64 { return d.seconds }

// Milliseconds returns the duration rounded to the nearest integer millisecond.
func (d Duration) Milliseconds() int64 {
	return int64(d.seconds*1000 + 0.5)
}

// Add returns the sum of two durations.
func (d Duration) Add(o Duration) Duration { return Duration{d.seconds + o.seconds} }

// Less reports whether d is strictly shorter than o.
func (d Duration) Less(o Duration) bool { return d.seconds < o.seconds }

// GreaterOrEqual reports whether d is at least as long as o.
func (d Duration) GreaterOrEqual(o Duration) bool { return d.seconds >= o.seconds }

// TimePoint is an opaque monotonic instant. Its origin is meaningless in
// isolation; only differences and additions with a Duration are defined.
// Hosts construct TimePoints via Now (wall-clock) or TimePointFromSeconds
// (deterministic synthetic clock, used throughout the test suite).
type TimePoint struct {
	seconds float64
}

// zeroTime is the process-start reference used by Now so that TimePoint
// values stay small and precision-stable across a long-running session.
var zeroTime = time.Now()

// Now returns the current TimePoint using the host's wall clock.
func Now() TimePoint {
	return TimePoint{seconds: time.Since(zeroTime).Seconds()}
}

// TimePointFromSeconds constructs a TimePoint directly from an elapsed
// second count, for use by deterministic test harnesses.
func TimePointFromSeconds(s float64) TimePoint {
	return TimePoint{seconds: s}
}

// Sub returns the Duration elapsed from o to t (t - o).
func (t TimePoint) Sub(o TimePoint) Duration {
	return Duration{seconds: t.seconds - o.seconds}
}

// Plus returns t advanced by d.
func (t TimePoint) Plus(d Duration) TimePoint {
	return TimePoint{seconds: t.seconds + d.seconds}
}

// Before reports whether t occurs strictly before o.
func (t TimePoint) Before(o TimePoint) bool { return t.seconds < o.seconds }

// AtOrBefore reports whether t occurs at or before o.
func (t TimePoint) AtOrBefore(o TimePoint) bool { return t.seconds <= o.seconds }
