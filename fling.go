package layerkit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flingSettleVelocity is the speed, in points per second, below which a
// fling is considered settled and FlingAnimator reports Done.
const flingSettleVelocity Scalar = 4

// NewFlingAnimator builds a settling-offset animator from a velocity
// (typically two VelocityTracker.ComputeVelocity() calls, one per axis) and
// GesturesConfiguration.ScrollFriction: instead of animating to an explicit
// destination, it eases a scroll offset toward wherever continuous decay
// under friction would carry it. Returns an already-Done animator if
// velocity is at or below flingSettleVelocity.
func NewFlingAnimator(velocity Vector, friction Scalar) *FlingAnimator {
	speed := velocity.Length()
	if friction <= 0 || speed <= float64(flingSettleVelocity) {
		return &FlingAnimator{Done: true}
	}

	// friction is expressed as a per-frame-at-60Hz decay coefficient.
	// Treating it as a continuous decay rate k = friction*60 lets the
	// fling's total travel distance and settle time fall out of exponential
	// decay: v(t) = v0*e^(-kt), distance(t) = v0/k * (1 - e^(-kt)).
	k := float64(friction) * 60
	duration := float32(math.Log(speed/float64(flingSettleVelocity)) / k)
	if duration <= 0 {
		return &FlingAnimator{Done: true}
	}

	distX := velocity.DX / k
	distY := velocity.DY / k

	return &FlingAnimator{
		tweenX: gween.New(0, float32(distX), duration, ease.OutCubic),
		tweenY: gween.New(0, float32(distY), duration, ease.OutCubic),
	}
}

// FlingAnimator eases a scroll layer's offset from zero out to the total
// distance implied by its starting velocity and the configured friction,
// rather than re-simulating physics every frame.
type FlingAnimator struct {
	tweenX, tweenY *gween.Tween
	Done           bool
}

// Update advances the animator by dt seconds and returns the cumulative
// offset to add to the scroll layer's position as it was when the fling
// began. Once Done, Update is a no-op returning the zero offset.
func (f *FlingAnimator) Update(dt float32) Vector {
	if f.Done {
		return Vector{}
	}

	x, doneX := f.tweenX.Update(dt)
	y, doneY := f.tweenY.Update(dt)
	f.Done = doneX && doneY
	return Vector{DX: Scalar(x), DY: Scalar(y)}
}

// Cancel stops the animator immediately; subsequent Update calls are no-ops.
func (f *FlingAnimator) Cancel() {
	f.Done = true
}
