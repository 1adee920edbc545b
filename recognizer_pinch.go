package layerkit

// PinchListener receives pinch move events carrying the accumulated scale.
type PinchListener func(r *PinchRecognizer, state RecognizerState, event PinchEvent)

// PinchRecognizer recognizes a two-finger pinch, reporting scale as the
// ratio of the current to the starting inter-finger distance, accumulated
// across finger lifts so a user can release and resume without losing
// progress.
type PinchRecognizer struct {
	*GestureRecognizer
	*moveGesture
	noOpStarted

	OnPinch PinchListener

	// netScale accumulates scale across finger-lift/resume cycles within one
	// gesture. The source notes (Ticket: 2885) that startEvent re-anchoring
	// on multitouch resumption does not track perfectly; preserved as-is.
	netScale Scalar
}

// NewPinchRecognizer builds a pinch recognizer. The configuration is
// accepted for symmetry with the other constructors; pinch has no tunable
// thresholds of its own.
func NewPinchRecognizer(cfg GesturesConfiguration) *PinchRecognizer {
	r := &PinchRecognizer{netScale: 1}
	r.GestureRecognizer = newGestureRecognizer(r)
	r.moveGesture = newMoveGesture(r.GestureRecognizer, r)
	return r
}

func (r *PinchRecognizer) typeName() string { return "pinch" }

func (r *PinchRecognizer) onUpdate(e TouchEvent) { r.onUpdateMove(e) }

func (r *PinchRecognizer) onReset() {
	r.onResetMove()
	r.netScale = 1
}

func (r *PinchRecognizer) onProcess() {
	if r.OnPinch == nil || r.shouldSuppressProcess() {
		return
	}
	r.OnPinch(r, r.state, r.makePinchEvent())
}

// getCurrentScale is the ratio of the current to the starting inter-finger
// direction length.
func (r *PinchRecognizer) getCurrentScale() Scalar {
	startLen := r.startDirection().Length()
	currentLen := r.currentDirection().Length()
	return currentLen / startLen
}

// makePinchEvent reports scale = getCurrentScale() * netScale while more
// than one pointer is live and the current event isn't a pointer
// transition; the dispatcher fires one last Process call for the finger
// leaving with a stale currentEvent, so that call reports netScale alone.
func (r *PinchRecognizer) makePinchEvent() PinchEvent {
	base := r.makeBaseMoveEvent()
	t := r.currentEventType()
	if base.PointerCount > 1 && t != TouchPointerUp && t != TouchPointerDown {
		return PinchEvent{MoveEvent: base, Scale: r.getCurrentScale() * r.netScale}
	}
	return PinchEvent{MoveEvent: base, Scale: r.netScale}
}

func (r *PinchRecognizer) shouldStartMove(e TouchEvent) bool    { return e.PointerCount > 1 }
func (r *PinchRecognizer) shouldContinueMove(e TouchEvent) bool { return e.PointerCount > 0 }
func (r *PinchRecognizer) didStartMove(e TouchEvent)            {}
func (r *PinchRecognizer) didContinueMove(e TouchEvent)         {}
func (r *PinchRecognizer) onEnd(e TouchEvent)                   { r.transitionToState(StateEnded) }

// onPointerChange caches the current scale into netScale when the pointer
// count drops from two to one, so a user can lift one finger and resume
// pinching from where they left off. Only the decreasing transition caches,
// so multi-finger or duplicate events don't re-cache.
func (r *PinchRecognizer) onPointerChange(e TouchEvent) {
	if e.PointerCount == 2 && e.Type == TouchPointerUp {
		r.netScale *= r.getCurrentScale()
		r.transitionToState(StateChanged)
	}
}

// requiresFailureOf: two pinches cannot coexist.
func (r *PinchRecognizer) requiresFailureOf(other *GestureRecognizer) bool {
	_, ok := other.behavior.(*PinchRecognizer)
	return ok
}

// canRecognizeSimultaneously: a pinch composes with rotate and drag.
func (r *PinchRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	switch other.behavior.(type) {
	case *RotateRecognizer, *DragRecognizer:
		return true
	default:
		return false
	}
}
