package layerkit

// TapListener receives the outcome of a tap-family recognizer. state is
// Began, Ended, or Failed; only Ended means "the tap fired". location is in
// the owning layer's local coordinates.
type TapListener func(r *TapRecognizer, state RecognizerState, location Point)

// TapRecognizer recognizes a fixed number of taps within a shared position
// and time budget (single-tap when NumberOfTapsRequired is 1, double-tap
// when 2, and so on for an arbitrary N-tap gesture).
type TapRecognizer struct {
	*GestureRecognizer

	NumberOfTapsRequired int
	PressTimeout         Duration
	TapShiftTolerance    Scalar

	OnTap TapListener

	events []TouchEvent
}

// NewTapRecognizer builds an N-tap recognizer using the given configuration.
// numberOfTaps defaults to 1 (single tap) when 0 is passed.
func NewTapRecognizer(cfg GesturesConfiguration, numberOfTaps int) *TapRecognizer {
	if numberOfTaps <= 0 {
		numberOfTaps = 1
	}
	r := &TapRecognizer{
		NumberOfTapsRequired: numberOfTaps,
		PressTimeout:         cfg.DoubleTapTimeout,
		TapShiftTolerance:    cfg.DragTouchSlop,
	}
	r.GestureRecognizer = newGestureRecognizer(r)
	return r
}

func (r *TapRecognizer) typeName() string { return "tap" }

func (r *TapRecognizer) onUpdate(e TouchEvent) {
	if len(r.events) > 0 {
		first := r.events[0]
		if first.LocationInWindow.Sub(e.LocationInWindow).Length() >= r.TapShiftTolerance {
			r.transitionToState(StateFailed)
			return
		}
		if e.Time.Sub(first.Time).Seconds() >= r.PressTimeout.Seconds() {
			r.transitionToState(StateFailed)
			return
		}
	}

	switch e.Type {
	case TouchDown:
		r.events = append(r.events, e)
		if len(r.events) > r.NumberOfTapsRequired {
			r.transitionToState(StateFailed)
		}
	case TouchUp:
		if len(r.events) == r.NumberOfTapsRequired {
			r.transitionToState(StateBegan)
		}
	case TouchNone:
		if len(r.events) == 0 || len(r.events) >= r.NumberOfTapsRequired {
			r.transitionToState(StateFailed)
		}
	default:
		// Moved/Idle/PointerUp/PointerDown/Wheel: no-op, touch still active.
	}
}

// onStarted immediately completes the tap: there is no "changed" phase.
func (r *TapRecognizer) onStarted() {
	r.transitionToState(StateEnded)
}

func (r *TapRecognizer) onProcess() {
	if r.OnTap == nil {
		return
	}
	loc := Point{}
	if r.lastEvent != nil {
		loc = r.lastEvent.Location
	}
	r.OnTap(r, r.state, loc)
}

func (r *TapRecognizer) onReset() {
	r.events = r.events[:0]
}

// requiresFailureOf: a tap requires the failure of any other tap, so that a
// single-tap waits to see whether a simultaneously-armed double-tap fires
// first.
func (r *TapRecognizer) requiresFailureOf(other *GestureRecognizer) bool {
	if otherTap, ok := other.behavior.(*TapRecognizer); ok {
		return otherTap != r
	}
	return false
}

func (r *TapRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	return false
}
