package layerkit

// MoveEvent is the payload published by every move-family recognizer (drag,
// scroll, pinch, rotate). Offset is measured from the gesture's start
// location; Velocity is in LocationInWindow units per second.
type MoveEvent struct {
	Location     Point
	Offset       Vector
	Velocity     Vector
	Time         TimePoint
	PointerCount int
}

// DragEvent is published by both the drag and scroll recognizers (the
// original source reuses one event shape for both; scroll only overrides
// Velocity).
type DragEvent = MoveEvent

// PinchEvent extends the base move event with the accumulated scale factor.
type PinchEvent struct {
	MoveEvent
	Scale Scalar
}

// RotateEvent extends the base move event with the accumulated rotation, in
// radians.
type RotateEvent struct {
	MoveEvent
	Rotation Scalar
}

// MoveGestureState tracks the three events a move recognizer needs to
// compute offsets and velocities: where the gesture started, the previous
// event, and the event currently being processed.
type MoveGestureState struct {
	startEvent   TouchEvent
	lastEvent    TouchEvent
	currentEvent TouchEvent
}

// moveBehavior is the specialization surface for the move-gesture template.
// Drag, Scroll, Pinch, and Rotate each implement this (embedding *moveGesture
// for the shared machinery) to get their own start/continue rules and move
// bookkeeping, as a template with six hooks.
type moveBehavior interface {
	shouldStartMove(e TouchEvent) bool
	shouldContinueMove(e TouchEvent) bool
	didStartMove(e TouchEvent)
	didContinueMove(e TouchEvent)
	onPointerChange(e TouchEvent)
	onEnd(e TouchEvent)
}

// moveGesture is the shared state and per-event template embedded by every
// move-family recognizer. It is not itself a recognizerBehavior: concrete
// types embed both *GestureRecognizer (for the common FSM) and *moveGesture
// (for this template), and forward onUpdate/onReset into it.
type moveGesture struct {
	behavior  moveBehavior
	owner     *GestureRecognizer
	moveState *MoveGestureState
}

func newMoveGesture(owner *GestureRecognizer, behavior moveBehavior) *moveGesture {
	return &moveGesture{owner: owner, behavior: behavior}
}

// onUpdateMove runs the generic per-event processing template shared by the
// move-family recognizers: None/Wheel always fail; an active recognizer
// routes through onPointerChange/onEnd/didContinueMove; an inactive one checks
// shouldStartMove (or fails outright on Up). The move state's lastEvent and
// currentEvent are advanced unconditionally afterward.
func (m *moveGesture) onUpdateMove(e TouchEvent) {
	if m.moveState == nil {
		m.moveState = &MoveGestureState{startEvent: e, lastEvent: e, currentEvent: e}
	}

	switch e.Type {
	case TouchNone, TouchWheel:
		m.owner.transitionToState(StateFailed)
	default:
		if m.owner.IsActive() {
			switch e.Type {
			case TouchPointerDown, TouchPointerUp:
				m.behavior.onPointerChange(e)
			default:
				if e.Type == TouchUp || !m.behavior.shouldContinueMove(e) {
					m.behavior.onEnd(e)
				} else {
					m.behavior.didContinueMove(e)
				}
			}
		} else {
			if m.behavior.shouldStartMove(e) {
				m.owner.transitionToState(StateBegan)
				m.moveState = &MoveGestureState{startEvent: e, lastEvent: e, currentEvent: e}
				m.behavior.didStartMove(e)
			} else if e.Type == TouchUp {
				m.owner.transitionToState(StateFailed)
			}
		}
	}

	m.moveState.lastEvent = m.moveState.currentEvent
	m.moveState.currentEvent = e
}

func (m *moveGesture) onResetMove() {
	m.moveState = nil
}

// shouldSuppressProcess reports whether onProcess should skip invoking the
// listener: the dispatcher fires one last Process call for the finger
// leaving with a stale/idle currentEvent, and that call carries no new
// information.
func (m *moveGesture) shouldSuppressProcess() bool {
	return m.moveState != nil && m.moveState.currentEvent.Type == TouchIdle
}

// computeOffset returns the displacement from the gesture's start location
// to its current one, in window coordinates.
func (m *moveGesture) computeOffset() Vector {
	start := m.moveState.startEvent.LocationInWindow
	current := m.moveState.currentEvent.LocationInWindow
	return Vector{DX: current.X - start.X, DY: current.Y - start.Y}
}

// computeVelocity computes the default velocity: the delta between the last
// two window locations divided by the elapsed time, or zero if no time has
// passed.
func (m *moveGesture) computeVelocity() Vector {
	dt := m.moveState.currentEvent.Time.Sub(m.moveState.lastEvent.Time).Seconds()
	if dt == 0 {
		return Vector{}
	}
	last := m.moveState.lastEvent.LocationInWindow
	current := m.moveState.currentEvent.LocationInWindow
	return Vector{DX: (current.X - last.X) / dt, DY: (current.Y - last.Y) / dt}
}

// makeBaseMoveEvent builds the common MoveEvent fields; subtypes wrap this
// to add their own Scale/Rotation.
func (m *moveGesture) makeBaseMoveEvent() MoveEvent {
	return MoveEvent{
		Location:     m.moveState.currentEvent.Location,
		Offset:       m.computeOffset(),
		Velocity:     m.computeVelocity(),
		Time:         m.moveState.currentEvent.Time,
		PointerCount: m.moveState.currentEvent.PointerCount,
	}
}

// startDirection and currentDirection expose the raw Direction field of the
// move state's start/current events, used by pinch (length ratio) and
// rotate (atan2 difference) to recompute their accumulators.
func (m *moveGesture) startDirection() Vector   { return m.moveState.startEvent.Direction }
func (m *moveGesture) currentDirection() Vector { return m.moveState.currentEvent.Direction }

// currentEventType exposes the move state's currentEvent.Type for subtypes
// that need to special-case PointerUp/PointerDown (pinch, rotate scale
// persistence during the dispatcher's synthetic trailing events).
func (m *moveGesture) currentEventType() TouchEventType {
	if m.moveState == nil {
		return TouchNone
	}
	return m.moveState.currentEvent.Type
}
