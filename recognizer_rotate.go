package layerkit

import "math"

// RotateListener receives rotate move events carrying the accumulated
// rotation, in radians.
type RotateListener func(r *RotateRecognizer, state RecognizerState, event RotateEvent)

// RotateRecognizer recognizes a two-finger rotation, mirroring
// PinchRecognizer's accumulate-across-finger-lift structure but tracking an
// angle instead of a scale.
type RotateRecognizer struct {
	*GestureRecognizer
	*moveGesture
	noOpStarted

	OnRotate RotateListener

	// netRotation accumulates rotation across finger-lift/resume cycles,
	// same caveat as PinchRecognizer.netScale (Ticket: 2885).
	netRotation Scalar
}

// NewRotateRecognizer builds a rotate recognizer. The configuration is
// accepted for symmetry with the other constructors; rotate has no tunable
// thresholds of its own.
func NewRotateRecognizer(cfg GesturesConfiguration) *RotateRecognizer {
	r := &RotateRecognizer{}
	r.GestureRecognizer = newGestureRecognizer(r)
	r.moveGesture = newMoveGesture(r.GestureRecognizer, r)
	return r
}

func (r *RotateRecognizer) typeName() string { return "rotate" }

func (r *RotateRecognizer) onUpdate(e TouchEvent) { r.onUpdateMove(e) }

func (r *RotateRecognizer) onReset() {
	r.onResetMove()
	r.netRotation = 0
}

func (r *RotateRecognizer) onProcess() {
	if r.OnRotate == nil || r.shouldSuppressProcess() {
		return
	}
	r.OnRotate(r, r.state, r.makeRotateEvent())
}

// getCurrentRotation is the angular delta between the start and current
// pointer-direction vectors, each measured as -atan2(dx, dy).
func (r *RotateRecognizer) getCurrentRotation() Scalar {
	start := r.startDirection()
	current := r.currentDirection()
	startAngle := -math.Atan2(start.DX, start.DY)
	currentAngle := -math.Atan2(current.DX, current.DY)
	return currentAngle - startAngle
}

// makeRotateEvent mirrors PinchRecognizer.makePinchEvent: while more than
// one pointer is live and the current event isn't a pointer transition, it
// reports getCurrentRotation()+netRotation; otherwise netRotation alone.
func (r *RotateRecognizer) makeRotateEvent() RotateEvent {
	base := r.makeBaseMoveEvent()
	t := r.currentEventType()
	if base.PointerCount > 1 && t != TouchPointerUp && t != TouchPointerDown {
		return RotateEvent{MoveEvent: base, Rotation: r.getCurrentRotation() + r.netRotation}
	}
	return RotateEvent{MoveEvent: base, Rotation: r.netRotation}
}

func (r *RotateRecognizer) shouldStartMove(e TouchEvent) bool    { return e.PointerCount > 1 }
func (r *RotateRecognizer) shouldContinueMove(e TouchEvent) bool { return e.PointerCount > 0 }
func (r *RotateRecognizer) didStartMove(e TouchEvent)            {}
func (r *RotateRecognizer) didContinueMove(e TouchEvent)         {}
func (r *RotateRecognizer) onEnd(e TouchEvent)                   { r.transitionToState(StateEnded) }

// onPointerChange accumulates netRotation when the pointer count drops from
// two to one, same cache-on-decrease rule as PinchRecognizer.
func (r *RotateRecognizer) onPointerChange(e TouchEvent) {
	if e.PointerCount == 2 && e.Type == TouchPointerUp {
		r.netRotation += r.getCurrentRotation()
		r.transitionToState(StateChanged)
	}
}

// requiresFailureOf: two rotates cannot coexist.
func (r *RotateRecognizer) requiresFailureOf(other *GestureRecognizer) bool {
	_, ok := other.behavior.(*RotateRecognizer)
	return ok
}

// canRecognizeSimultaneously: a rotate composes with pinch and drag.
func (r *RotateRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	switch other.behavior.(type) {
	case *PinchRecognizer, *DragRecognizer:
		return true
	default:
		return false
	}
}
