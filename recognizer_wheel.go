package layerkit

// WheelEvent is published once per scroll-wheel tick.
type WheelEvent struct {
	Location  Point
	Direction Vector
}

// WheelListener receives wheel events.
type WheelListener func(r *WheelRecognizer, state RecognizerState, event WheelEvent)

// WheelRecognizer fires once per TouchWheel event: it begins and ends
// within the same dispatch cycle, so it never blocks or waits on anything
// else.
type WheelRecognizer struct {
	*GestureRecognizer
	noOpStarted

	OnWheel WheelListener
}

// NewWheelRecognizer builds a wheel recognizer.
func NewWheelRecognizer() *WheelRecognizer {
	r := &WheelRecognizer{}
	r.GestureRecognizer = newGestureRecognizer(r)
	return r
}

// typeName returns "drag", not "wheel" — preserved from the source this
// runtime is grounded on, where WheelGestureRecognizer::getTypeName()
// returns the DragGestureRecognizer's name. Nothing in the arbiter's policy
// checks typeName() (they use dynamic type / behavior type assertions
// instead), so this is purely a debug-trace cosmetic quirk, kept rather than
// silently fixed.
func (r *WheelRecognizer) typeName() string { return "drag" }

func (r *WheelRecognizer) onUpdate(e TouchEvent) {
	switch e.Type {
	case TouchWheel:
		r.transitionToState(StateBegan)
	default:
		r.transitionToState(StateFailed)
	}
}

func (r *WheelRecognizer) onProcess() {
	if r.OnWheel == nil {
		return
	}
	last := r.LastEvent()
	if last == nil {
		return
	}
	r.OnWheel(r, r.state, WheelEvent{Location: last.Location, Direction: last.Direction})
	r.transitionToState(StateEnded)
}

func (r *WheelRecognizer) onReset() {}

func (r *WheelRecognizer) requiresFailureOf(other *GestureRecognizer) bool { return false }

// canRecognizeSimultaneously is always true: a wheel tick never conflicts
// with anything.
func (r *WheelRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool { return true }
