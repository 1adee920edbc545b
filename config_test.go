package layerkit

import "testing"

func TestDefaultGesturesConfiguration(t *testing.T) {
	c := DefaultGesturesConfiguration()
	if c.LongPressTimeout.Seconds() != 0.25 {
		t.Errorf("LongPressTimeout = %v, want 0.25s", c.LongPressTimeout.Seconds())
	}
	if c.DoubleTapTimeout.Seconds() != 0.25 {
		t.Errorf("DoubleTapTimeout = %v, want 0.25s", c.DoubleTapTimeout.Seconds())
	}
	if c.DragTouchSlop != 10 {
		t.Errorf("DragTouchSlop = %v, want 10", c.DragTouchSlop)
	}
	if c.TouchTolerance != 5 {
		t.Errorf("TouchTolerance = %v, want 5", c.TouchTolerance)
	}
	if c.ScrollFriction != 0.015 {
		t.Errorf("ScrollFriction = %v, want 0.015", c.ScrollFriction)
	}
	if c.DebugGestures {
		t.Error("DebugGestures should default to false")
	}
}
