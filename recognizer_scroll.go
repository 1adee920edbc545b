package layerkit

// kScrollVelocityThreshold is the minimum |velocity| (window units/second)
// below which a scroll's emitted fling velocity is snapped to zero.
const kScrollVelocityThreshold Scalar = 50

// ScrollListener receives scroll move events, already axis-filtered and
// velocity-negated per the recognizer's configured orientation.
type ScrollListener func(r *ScrollRecognizer, state RecognizerState, event DragEvent)

// ScrollRecognizer recognizes a single-axis pan, reporting a fling velocity
// computed from its own velocity trackers rather than the generic two-sample
// default. A host typically owns one horizontal and one vertical instance.
type ScrollRecognizer struct {
	*GestureRecognizer
	*moveGesture
	noOpStarted

	DragTouchSlop Scalar

	OnScroll ScrollListener

	isHorizontal    bool
	animatingScroll bool

	horizontal *VelocityTracker
	vertical   *VelocityTracker
}

// NewScrollRecognizer builds a scroll recognizer using the configuration's
// DragTouchSlop. Call SetHorizontal to switch its axis (vertical by
// default).
func NewScrollRecognizer(cfg GesturesConfiguration) *ScrollRecognizer {
	r := &ScrollRecognizer{
		DragTouchSlop: cfg.DragTouchSlop,
		horizontal:    NewVelocityTracker(),
		vertical:      NewVelocityTracker(),
	}
	r.GestureRecognizer = newGestureRecognizer(r)
	r.moveGesture = newMoveGesture(r.GestureRecognizer, r)
	return r
}

// SetHorizontal switches the recognizer's dominant axis.
func (r *ScrollRecognizer) SetHorizontal(horizontal bool) { r.isHorizontal = horizontal }

// SetAnimatingScroll forces the next candidate event to start the gesture
// immediately, used by a host resuming a fling that's still settling.
func (r *ScrollRecognizer) SetAnimatingScroll(animating bool) { r.animatingScroll = animating }

func (r *ScrollRecognizer) typeName() string { return "scroll" }

func (r *ScrollRecognizer) onUpdate(e TouchEvent) { r.onUpdateMove(e) }
func (r *ScrollRecognizer) onReset()              { r.onResetMove() }

func (r *ScrollRecognizer) onProcess() {
	if r.OnScroll == nil || r.shouldSuppressProcess() {
		return
	}
	r.OnScroll(r, r.state, r.makeScrollEvent())
}

// makeScrollEvent overrides the generic velocity with one computed from this
// recognizer's own axis trackers, negated (screen motion to content motion)
// and snapped to zero below kScrollVelocityThreshold.
func (r *ScrollRecognizer) makeScrollEvent() DragEvent {
	event := r.makeBaseMoveEvent()
	if r.isHorizontal {
		vx := -r.horizontal.ComputeVelocity()
		if scalarAbs(vx) < kScrollVelocityThreshold {
			vx = 0
		}
		event.Velocity = Vector{DX: vx, DY: 0}
	} else {
		vy := -r.vertical.ComputeVelocity()
		if scalarAbs(vy) < kScrollVelocityThreshold {
			vy = 0
		}
		event.Velocity = Vector{DX: 0, DY: vy}
	}
	return event
}

// shouldStartMove starts immediately while animatingScroll is set (resuming
// a fling); otherwise it requires DragTouchSlop of travel along the
// dominant axis.
func (r *ScrollRecognizer) shouldStartMove(e TouchEvent) bool {
	if r.animatingScroll {
		return true
	}
	start := r.moveState.startEvent.LocationInWindow
	current := e.LocationInWindow
	distance := start.Sub(current).Length()
	if distance < r.DragTouchSlop {
		return false
	}
	diffX := current.X - start.X
	diffY := current.Y - start.Y
	if r.isHorizontal {
		return scalarAbs(diffX) > scalarAbs(diffY)
	}
	return scalarAbs(diffY) > scalarAbs(diffX)
}

// shouldContinueMove requires the pointer count to stay exactly what it was
// at gesture start.
func (r *ScrollRecognizer) shouldContinueMove(e TouchEvent) bool {
	return r.moveState.startEvent.PointerCount == e.PointerCount
}

func (r *ScrollRecognizer) didStartMove(e TouchEvent) {
	r.horizontal.Clear()
	r.vertical.Clear()
	r.didContinueMove(e)
}

func (r *ScrollRecognizer) didContinueMove(e TouchEvent) {
	loc := e.LocationInWindow
	r.horizontal.AddSample(e.Time, loc.X)
	r.vertical.AddSample(e.Time, loc.Y)
}

func (r *ScrollRecognizer) onPointerChange(e TouchEvent) {}
func (r *ScrollRecognizer) onEnd(e TouchEvent)           { r.transitionToState(StateEnded) }

// requiresFailureOf: a scroll never waits for another recognizer to fail.
func (r *ScrollRecognizer) requiresFailureOf(other *GestureRecognizer) bool { return false }

// canRecognizeSimultaneously: unlike drag, scroll never overrides the base
// class default, so it is never simultaneously compatible from its own side
// (it may still run alongside a peer whose own check returns true).
func (r *ScrollRecognizer) canRecognizeSimultaneously(other *GestureRecognizer) bool { return false }

func scalarAbs(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}
