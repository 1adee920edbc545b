package layerkit

import "testing"

func TestTouchEventWithLocationPreservesOtherFields(t *testing.T) {
	e := TouchEvent{
		Type:             TouchMoved,
		LocationInWindow: Point{X: 10, Y: 20},
		Location:         Point{X: 10, Y: 20},
		PointerCount:     1,
	}
	got := e.WithLocation(Point{X: 1, Y: 2})

	if got.Location != (Point{X: 1, Y: 2}) {
		t.Errorf("Location = %v, want {1 2}", got.Location)
	}
	if got.LocationInWindow != e.LocationInWindow {
		t.Errorf("LocationInWindow changed: got %v, want %v", got.LocationInWindow, e.LocationInWindow)
	}
	if got.Type != e.Type || got.PointerCount != e.PointerCount {
		t.Error("WithLocation should not disturb Type or PointerCount")
	}
}

func TestTouchEventIsInteracting(t *testing.T) {
	interacting := []TouchEventType{TouchDown, TouchMoved, TouchIdle, TouchPointerDown, TouchPointerUp}
	for _, ty := range interacting {
		if !(TouchEvent{Type: ty}).IsInteracting() {
			t.Errorf("%v should be IsInteracting", ty)
		}
	}
	idle := []TouchEventType{TouchUp, TouchWheel, TouchNone}
	for _, ty := range idle {
		if (TouchEvent{Type: ty}).IsInteracting() {
			t.Errorf("%v should not be IsInteracting", ty)
		}
	}
}

func TestTouchEventTypeString(t *testing.T) {
	cases := map[TouchEventType]string{
		TouchDown:        "Down",
		TouchMoved:       "Moved",
		TouchIdle:        "Idle",
		TouchUp:          "Up",
		TouchWheel:       "Wheel",
		TouchNone:        "None",
		TouchPointerDown: "PointerDown",
		TouchPointerUp:   "PointerUp",
	}
	for ty, want := range cases {
		if got := ty.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ty, got, want)
		}
	}
	if got := TouchEventType(99).String(); got != "Unknown" {
		t.Errorf("unknown type String() = %q, want Unknown", got)
	}
}
