package layerkit

// GesturesConfiguration bundles the tunable thresholds shared by the
// recognizer family. A value is carried through LayerRoot's resources and
// read by the recognizer constructors that take one (all but the wheel and
// touch recognizers, which take none); the core never consults global
// state for these, so a test harness can swap in its own synthetic clock
// and thresholds without touching package-level state.
type GesturesConfiguration struct {
	// LongPressTimeout is how long a touch must be held before a long-press
	// recognizer begins. (A delayed touch recognizer uses its own delay.)
	LongPressTimeout Duration
	// DoubleTapTimeout is the maximum gap allowed between successive taps
	// in a tap-family recognizer (also called the press timeout).
	DoubleTapTimeout Duration
	// DragTouchSlop is the distance a pointer must travel before a drag (or
	// the position drift tolerated across a tap/long-press sequence).
	DragTouchSlop Scalar
	// TouchTolerance is an additional hit-test tolerance consumed by text
	// link hit testing at the boundary; unused by the core's own hit tests.
	TouchTolerance Scalar
	// ScrollFriction is a dimensionless friction coefficient consumed by
	// host-side fling animators (see FlingAnimator), not by the core.
	ScrollFriction Scalar
	// DebugGestures, when true, makes the dispatcher emit structured debug
	// lines describing capture, update, conflict resolution, and cancellation.
	DebugGestures bool
}

// DefaultGesturesConfiguration returns the documented defaults: a 0.25s
// long-press/double-tap timeout, a 10px touch slop, a 5px touch tolerance,
// and a 0.015 scroll friction, with debug tracing off.
func DefaultGesturesConfiguration() GesturesConfiguration {
	return GesturesConfiguration{
		LongPressTimeout: DurationFromSeconds(0.25),
		DoubleTapTimeout: DurationFromSeconds(0.25),
		DragTouchSlop:    10,
		TouchTolerance:   5,
		ScrollFriction:   0.015,
		DebugGestures:    false,
	}
}
