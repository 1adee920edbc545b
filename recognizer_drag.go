package layerkit

// DragListener receives drag move events. state is Began on the first
// qualifying move, Changed on continuations, Ended when the gesture
// terminates (including the dispatcher's synthetic trailing call).
type DragListener func(r *DragRecognizer, state RecognizerState, event DragEvent)

// DragRecognizer recognizes a single- or multi-pointer drag: it starts once
// the pointer has traveled dragTouchSlop from its down location, or
// immediately if a second pointer joins, and continues for as long as any
// pointer remains down.
type DragRecognizer struct {
	*GestureRecognizer
	*moveGesture
	noOpStarted

	DragTouchSlop Scalar

	OnDrag DragListener
}

// NewDragRecognizer builds a drag recognizer using the configuration's
// DragTouchSlop.
func NewDragRecognizer(cfg GesturesConfiguration) *DragRecognizer {
	r := &DragRecognizer{DragTouchSlop: cfg.DragTouchSlop}
	r.GestureRecognizer = newGestureRecognizer(r)
	r.moveGesture = newMoveGesture(r.GestureRecognizer, r)
	return r
}

func (r *DragRecognizer) typeName() string { return "drag" }

func (r *DragRecognizer) onUpdate(e TouchEvent) { r.onUpdateMove(e) }
func (r *DragRecognizer) onReset()              { r.onResetMove() }

func (r *DragRecognizer) onProcess() {
	if r.OnDrag == nil || r.shouldSuppressProcess() {
		return
	}
	r.OnDrag(r, r.state, r.makeBaseMoveEvent())
}

// shouldStartMove starts once the pointer has traveled DragTouchSlop from
// its down location, or immediately on a second pointer joining.
func (r *DragRecognizer) shouldStartMove(e TouchEvent) bool {
	distance := r.moveState.startEvent.LocationInWindow.Sub(e.LocationInWindow).Length()
	return distance >= r.DragTouchSlop || e.PointerCount > 1
}

// shouldContinueMove continues a drag even across pointer-count changes, to
// support multitouch and composing with pinch/rotate.
func (r *DragRecognizer) shouldContinueMove(e TouchEvent) bool {
	return e.PointerCount > 0
}

func (r *DragRecognizer) didStartMove(e TouchEvent)    {}
func (r *DragRecognizer) didContinueMove(e TouchEvent) {}
func (r *DragRecognizer) onPointerChange(e TouchEvent) {}
func (r *DragRecognizer) onEnd(e TouchEvent)           { r.transitionToState(StateEnded) }

// requiresFailureOf: two drags cannot coexist, so a drag waits for any other
// drag candidate to fail.
func (r *DragRecognizer) requiresFailureOf(other *GestureRecognizer) bool {
	_, ok := other.behavior.(*DragRecognizer)
	return ok
}

// canRecognizeSimultaneously: a drag composes with pinch and rotate (e.g.
// pan-while-zooming), but not with another drag.
func (r *DragRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	switch other.behavior.(type) {
	case *PinchRecognizer, *RotateRecognizer:
		return true
	default:
		return false
	}
}
