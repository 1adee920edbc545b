package layerkit

import "testing"

func TestDragRecognizerStartsAfterSlop(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewDragRecognizer(cfg)

	var events []DragEvent
	r.OnDrag = func(r *DragRecognizer, state RecognizerState, e DragEvent) { events = append(events, e) }

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Time: t0})
	if r.State() != StatePossible {
		t.Fatalf("state after Down = %v, want Possible", r.State())
	}

	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 3, Y: 0}, PointerCount: 1, Time: t0})
	if r.State() != StatePossible {
		t.Fatalf("state after a sub-slop move = %v, want Possible", r.State())
	}

	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 20, Y: 0}, PointerCount: 1, Time: t0.Plus(DurationFromMilliseconds(16))})
	if r.State() != StateBegan {
		t.Fatalf("state after exceeding slop = %v, want Began", r.State())
	}
	r.Process()
	// Began re-anchors the move state at the event that crossed the slop
	// threshold, so the first reported offset is zero; only subsequent
	// moves accumulate relative to it.
	if len(events) != 1 || events[0].Offset.DX != 0 {
		t.Errorf("events = %v, want one Began event with Offset.DX=0", events)
	}

	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 35, Y: 0}, PointerCount: 1, Time: t0.Plus(DurationFromMilliseconds(32))})
	r.Process()
	if len(events) != 2 || events[1].Offset.DX != 15 {
		t.Errorf("events = %v, want a second event with Offset.DX=15", events)
	}
}

func TestDragRecognizerSecondPointerStartsImmediately(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewDragRecognizer(cfg)

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Time: t0})
	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 1, Y: 0}, PointerCount: 2, Time: t0})

	if r.State() != StateBegan {
		t.Errorf("state = %v, want Began immediately on a second pointer", r.State())
	}
}

func TestDragRecognizerEndsOnUp(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewDragRecognizer(cfg)

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Time: t0})
	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 50, Y: 0}, PointerCount: 1, Time: t0})
	r.Update(TouchEvent{Type: TouchUp, LocationInWindow: Point{X: 50, Y: 0}, PointerCount: 0, Time: t0})

	if r.State() != StateEnded {
		t.Errorf("state = %v, want Ended after TouchUp", r.State())
	}
}

func TestDragRecognizerRequiresFailureOfAnotherDragOnly(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	a := NewDragRecognizer(cfg)
	b := NewDragRecognizer(cfg)
	scroll := NewScrollRecognizer(cfg)

	if !a.requiresFailureOf(b.GestureRecognizer) {
		t.Error("a drag should require failure of another drag")
	}
	if a.requiresFailureOf(scroll.GestureRecognizer) {
		t.Error("a drag should not require failure of a scroll")
	}
}

func TestDragRecognizerComposesWithPinchAndRotateNotDrag(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	drag := NewDragRecognizer(cfg)
	pinch := NewPinchRecognizer(cfg)
	rotate := NewRotateRecognizer(cfg)
	otherDrag := NewDragRecognizer(cfg)

	if !drag.canRecognizeSimultaneously(pinch.GestureRecognizer) {
		t.Error("drag should compose with pinch")
	}
	if !drag.canRecognizeSimultaneously(rotate.GestureRecognizer) {
		t.Error("drag should compose with rotate")
	}
	if drag.canRecognizeSimultaneously(otherDrag.GestureRecognizer) {
		t.Error("drag should not compose with another drag")
	}
}

func TestDragRecognizerCancelEmitsSyntheticEnded(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewDragRecognizer(cfg)
	var lastState RecognizerState
	r.OnDrag = func(r *DragRecognizer, state RecognizerState, e DragEvent) { lastState = state }

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Time: t0})
	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 50, Y: 0}, PointerCount: 1, Time: t0})
	r.Process()

	r.Cancel()
	if lastState != StateEnded {
		t.Errorf("last observed state = %v, want a synthetic Ended from Cancel", lastState)
	}
	if r.State() != StatePossible {
		t.Errorf("state after Cancel = %v, want Possible", r.State())
	}
}
