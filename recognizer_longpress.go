package layerkit

// LongPressListener receives long-press state transitions. Only Began and
// Changed/Ended carry useful semantics; Failed means the gesture never
// qualified.
type LongPressListener func(r *LongPressRecognizer, state RecognizerState, location Point)

// LongPressRecognizer fires once a single pointer has been held in place,
// without drifting beyond its shift tolerance, for at least LongPressTimeout.
type LongPressRecognizer struct {
	*GestureRecognizer
	noOpStarted

	LongPressTimeout      Duration
	LongPressShiftTolerance Scalar

	OnLongPress LongPressListener

	start *TouchEvent
}

// NewLongPressRecognizer builds a long-press recognizer using the given
// configuration's LongPressTimeout and DragTouchSlop (reused as the shift
// tolerance).
func NewLongPressRecognizer(cfg GesturesConfiguration) *LongPressRecognizer {
	r := &LongPressRecognizer{
		LongPressTimeout:        cfg.LongPressTimeout,
		LongPressShiftTolerance: cfg.DragTouchSlop,
	}
	r.GestureRecognizer = newGestureRecognizer(r)
	return r
}

func (r *LongPressRecognizer) typeName() string { return "longPress" }

func (r *LongPressRecognizer) onUpdate(e TouchEvent) {
	switch e.Type {
	case TouchDown:
		if r.start != nil {
			r.transitionToState(StateFailed)
			return
		}
		ev := e
		r.start = &ev
	case TouchMoved, TouchIdle, TouchPointerUp, TouchPointerDown:
		if r.IsActive() {
			r.transitionToState(StateChanged)
			return
		}
		if r.start == nil {
			return
		}
		if r.start.LocationInWindow.Sub(e.LocationInWindow).Length() > r.LongPressShiftTolerance {
			r.transitionToState(StateFailed)
			return
		}
		if e.Time.Sub(r.start.Time).Seconds() >= r.LongPressTimeout.Seconds() {
			r.transitionToState(StateBegan)
		}
	case TouchUp:
		if r.IsActive() {
			r.transitionToState(StateEnded)
		} else {
			r.transitionToState(StateFailed)
		}
	case TouchWheel, TouchNone:
		r.transitionToState(StateFailed)
	}
}

func (r *LongPressRecognizer) onProcess() {
	if r.OnLongPress == nil {
		return
	}
	loc := Point{}
	if r.lastEvent != nil {
		loc = r.lastEvent.Location
	}
	r.OnLongPress(r, r.state, loc)
}

func (r *LongPressRecognizer) onReset() {
	r.start = nil
}

func (r *LongPressRecognizer) requiresFailureOf(other *GestureRecognizer) bool { return false }
func (r *LongPressRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	return false
}

// TouchListener receives continuous touch notifications: onStart when the
// recognizer begins, onTouch on every active update whose last event isn't
// TouchIdle, and onEnd when the touch lifts.
type TouchListener func(r *TouchRecognizer, location Point)

// TouchRecognizer observes a single touch's down/hold/up lifecycle without
// any slop or timeout gating beyond an optional start delay. It is
// observational: canRecognizeSimultaneously always returns true, so it never
// blocks any other gesture.
type TouchRecognizer struct {
	*GestureRecognizer
	noOpStarted

	// OnTouchDelayDuration delays the Began transition by a fixed interval
	// after the initial Down. Zero means begin immediately on Down.
	OnTouchDelayDuration Duration

	OnStart TouchListener
	OnEnd   TouchListener
	OnTouch TouchListener

	startTime *TimePoint
}

// NewTouchRecognizer builds a touch recognizer with the given start delay.
func NewTouchRecognizer(delay Duration) *TouchRecognizer {
	r := &TouchRecognizer{OnTouchDelayDuration: delay}
	r.GestureRecognizer = newGestureRecognizer(r)
	return r
}

func (r *TouchRecognizer) typeName() string { return "touch" }

func (r *TouchRecognizer) onUpdate(e TouchEvent) {
	switch e.Type {
	case TouchDown:
		t := e.Time
		r.startTime = &t
		if r.OnTouchDelayDuration.Seconds() == 0 {
			r.transitionToState(StateBegan)
		}
	case TouchWheel:
		// no-op
	case TouchIdle:
		if !r.IsActive() && r.held(e.Time) {
			r.transitionToState(StateBegan)
		}
	case TouchMoved, TouchPointerUp, TouchPointerDown:
		if r.IsActive() {
			r.transitionToState(StateChanged)
		} else if r.held(e.Time) {
			r.transitionToState(StateBegan)
		}
	case TouchUp:
		r.transitionToState(StateEnded)
	case TouchNone:
		r.transitionToState(StateFailed)
	}
}

func (r *TouchRecognizer) held(now TimePoint) bool {
	if r.startTime == nil {
		return false
	}
	return now.Sub(*r.startTime).Seconds() >= r.OnTouchDelayDuration.Seconds()
}

func (r *TouchRecognizer) onProcess() {
	if r.lastEvent == nil {
		return
	}
	loc := r.lastEvent.Location
	switch r.state {
	case StateBegan:
		if r.OnStart != nil {
			r.OnStart(r, loc)
		}
	case StateEnded:
		if r.OnEnd != nil {
			r.OnEnd(r, loc)
		}
	}
	if r.lastEvent.Type != TouchIdle && r.OnTouch != nil {
		r.OnTouch(r, loc)
	}
}

func (r *TouchRecognizer) onReset() {
	r.startTime = nil
}

func (r *TouchRecognizer) requiresFailureOf(other *GestureRecognizer) bool { return false }

// canRecognizeSimultaneously is always true: touch is purely observational.
func (r *TouchRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool {
	return true
}
