package layerkit

import "testing"

func TestTouchDispatcherRecognizesTap(t *testing.T) {
	root := NewLayer()
	root.Frame = RectFromLTWH(0, 0, 100, 100)

	child := NewLayer()
	child.Frame = RectFromLTWH(0, 0, 50, 50)
	root.AddChild(child)

	cfg := DefaultGesturesConfiguration()
	tap := NewTapRecognizer(cfg, 1)
	var ended bool
	tap.OnTap = func(r *TapRecognizer, state RecognizerState, loc Point) {
		if state == StateEnded {
			ended = true
		}
	}
	child.AddGestureRecognizer(tap.GestureRecognizer)

	d := NewTouchDispatcher()
	now := TimePointFromSeconds(0)

	d.DispatchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 10, Y: 10}, PointerCount: 1, Time: now}, root)
	d.DispatchEvent(TouchEvent{Type: TouchUp, Location: Point{X: 10, Y: 10}, PointerCount: 0, Time: now.Plus(DurationFromMilliseconds(50))}, root)

	if !ended {
		t.Fatal("expected the tap recognizer to end, but it never fired OnTap(Ended)")
	}
	if !d.IsEmpty() {
		t.Error("expected dispatcher to be empty after a completed tap")
	}
}

func TestTouchDispatcherMissDoesNotCapture(t *testing.T) {
	root := NewLayer()
	root.Frame = RectFromLTWH(0, 0, 100, 100)

	child := NewLayer()
	child.Frame = RectFromLTWH(0, 0, 50, 50)
	root.AddChild(child)

	cfg := DefaultGesturesConfiguration()
	tap := NewTapRecognizer(cfg, 1)
	child.AddGestureRecognizer(tap.GestureRecognizer)

	d := NewTouchDispatcher()
	now := TimePointFromSeconds(0)

	d.DispatchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 90, Y: 90}, PointerCount: 1, Time: now}, root)

	if !d.IsEmpty() {
		t.Error("expected no candidates captured for a down outside every recognizer's layer")
	}
}

func TestTouchDispatcherCancelAllGestures(t *testing.T) {
	root := NewLayer()
	root.Frame = RectFromLTWH(0, 0, 100, 100)

	cfg := DefaultGesturesConfiguration()
	drag := NewDragRecognizer(cfg)
	root.AddGestureRecognizer(drag.GestureRecognizer)

	d := NewTouchDispatcher()
	now := TimePointFromSeconds(0)
	d.DispatchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 5, Y: 5}, PointerCount: 1, Time: now}, root)

	if d.IsEmpty() {
		t.Fatal("expected the drag recognizer to be captured as a candidate before cancellation")
	}

	d.CancelAllGestures()

	if !d.IsEmpty() {
		t.Error("expected dispatcher to be empty after CancelAllGestures")
	}
	if drag.State() != StatePossible {
		t.Errorf("expected drag recognizer back to StatePossible after cancel, got %s", drag.State())
	}
}

func TestTouchDispatcherIsDispatchingEventDuringCallback(t *testing.T) {
	root := NewLayer()
	root.Frame = RectFromLTWH(0, 0, 100, 100)

	cfg := DefaultGesturesConfiguration()
	tap := NewTapRecognizer(cfg, 1)

	var sawDispatching bool
	d := NewTouchDispatcher()
	tap.OnTap = func(r *TapRecognizer, state RecognizerState, loc Point) {
		if d.IsDispatchingEvent() {
			sawDispatching = true
		}
	}
	root.AddGestureRecognizer(tap.GestureRecognizer)

	now := TimePointFromSeconds(0)
	d.DispatchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 5, Y: 5}, PointerCount: 1, Time: now}, root)
	d.DispatchEvent(TouchEvent{Type: TouchUp, Location: Point{X: 5, Y: 5}, PointerCount: 0, Time: now.Plus(DurationFromMilliseconds(10))}, root)

	if !sawDispatching {
		t.Error("expected IsDispatchingEvent to report true from within a recognizer callback")
	}
	if d.IsDispatchingEvent() {
		t.Error("expected IsDispatchingEvent to report false once DispatchEvent has returned")
	}
}
