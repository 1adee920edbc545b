package layerkit

import "math"

// kMomentHistory bounds the velocity tracker's sliding window.
const kMomentHistory = 10

// kApproxSqrt2 is a fixed sqrt(2) constant used by the impulse-velocity
// algorithm instead of calling math.Sqrt2 at every sample.
const kApproxSqrt2 = 1.41421356237

// velocitySample is one (time, scalar) observation in the tracker's window.
type velocitySample struct {
	time   TimePoint
	sample Scalar
}

// VelocityTracker maintains a bounded sliding window of scalar samples and
// computes an impulse-based fling velocity from them. One instance tracks a
// single axis; the scroll recognizer holds two (horizontal and vertical).
type VelocityTracker struct {
	samples []velocitySample // newest first
}

// NewVelocityTracker returns an empty tracker.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{samples: make([]velocitySample, 0, kMomentHistory)}
}

// AddSample records a new observation at the front of the window, dropping
// the oldest sample once the window exceeds kMomentHistory entries.
func (t *VelocityTracker) AddSample(time TimePoint, sample Scalar) {
	t.samples = append(t.samples, velocitySample{})
	copy(t.samples[1:], t.samples[:len(t.samples)-1])
	t.samples[0] = velocitySample{time: time, sample: sample}
	if len(t.samples) > kMomentHistory {
		t.samples = t.samples[:kMomentHistory]
	}
}

// Clear empties the window. A tracker that has been cleared behaves
// identically to a freshly constructed one.
func (t *VelocityTracker) Clear() {
	t.samples = t.samples[:0]
}

// kineticEnergyToVelocity converts accumulated work into a signed velocity:
// sign(w) * sqrt(|w|) * sqrt(2).
func kineticEnergyToVelocity(work float64) float64 {
	if work == 0 {
		return 0
	}
	sign := 1.0
	if work < 0 {
		sign = -1.0
	}
	return sign * math.Sqrt(math.Abs(work)) * kApproxSqrt2
}

// ComputeVelocity returns the impulse-based fling velocity for the current
// window. Samples are stored newest-first, so "oldest to newest" below means
// iterating from the back of the slice.
func (t *VelocityTracker) ComputeVelocity() Scalar {
	n := len(t.samples)
	if n < 2 {
		return 0
	}
	if n == 2 {
		newest, older := t.samples[0], t.samples[1]
		dt := older.time.Sub(newest.time).Seconds()
		if dt == 0 {
			return 0
		}
		return (older.sample - newest.sample) / dt
	}

	var work float64
	first := true
	// Oldest to newest: index n-1 (oldest) down to index 0 (newest).
	for i := n - 1; i > 0; i-- {
		current := t.samples[i]
		next := t.samples[i-1]
		dt := current.time.Sub(next.time).Seconds()
		if dt == 0 {
			continue
		}
		vPrev := kineticEnergyToVelocity(work)
		vCurr := (current.sample - next.sample) / dt
		work += (vCurr - vPrev) * math.Abs(vCurr)
		if first {
			work *= 0.5
			first = false
		}
	}
	return kineticEnergyToVelocity(work)
}
