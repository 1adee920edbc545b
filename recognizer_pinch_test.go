package layerkit

import (
	"math"
	"testing"
)

func TestPinchRecognizerStartsOnSecondPointer(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewPinchRecognizer(cfg)

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Direction: Vector{}, Time: t0})
	if r.State() != StatePossible {
		t.Fatalf("state after one pointer down = %v, want Possible", r.State())
	}

	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 10, Y: 0}, PointerCount: 2, Direction: Vector{DX: 10, DY: 0}, Time: t0})
	if r.State() != StateBegan {
		t.Fatalf("state after second pointer = %v, want Began", r.State())
	}
}

func TestPinchRecognizerScaleIsDirectionLengthRatio(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewPinchRecognizer(cfg)

	var lastEvent PinchEvent
	r.OnPinch = func(r *PinchRecognizer, state RecognizerState, e PinchEvent) { lastEvent = e }

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Direction: Vector{DX: 10, DY: 0}, Time: t0})
	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 10, Y: 0}, PointerCount: 2, Direction: Vector{DX: 10, DY: 0}, Time: t0})
	r.Process()

	// The current event is the PointerDown that began the gesture, and a
	// pointer-transition event reports netScale alone, so the first reported
	// scale is 1.
	if math.Abs(float64(lastEvent.Scale-1)) > 1e-9 {
		t.Errorf("initial Scale = %v, want 1", lastEvent.Scale)
	}

	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 20, Y: 0}, PointerCount: 2, Direction: Vector{DX: 20, DY: 0}, Time: t0})
	r.Process()
	if math.Abs(float64(lastEvent.Scale-2)) > 1e-9 {
		t.Errorf("Scale after doubling inter-finger distance = %v, want 2", lastEvent.Scale)
	}
}

func TestPinchRecognizerCachesScaleOnPointerUp(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewPinchRecognizer(cfg)

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Direction: Vector{DX: 10, DY: 0}, Time: t0})
	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 10, Y: 0}, PointerCount: 2, Direction: Vector{DX: 10, DY: 0}, Time: t0})
	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 20, Y: 0}, PointerCount: 2, Direction: Vector{DX: 20, DY: 0}, Time: t0})

	r.Update(TouchEvent{Type: TouchPointerUp, LocationInWindow: Point{X: 20, Y: 0}, PointerCount: 2, Direction: Vector{DX: 20, DY: 0}, Time: t0})
	if math.Abs(float64(r.netScale-2)) > 1e-9 {
		t.Errorf("netScale after a pointer lifts from 2x zoom = %v, want 2", r.netScale)
	}
}

func TestPinchRecognizerRequiresFailureOfAnotherPinch(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	a := NewPinchRecognizer(cfg)
	b := NewPinchRecognizer(cfg)
	drag := NewDragRecognizer(cfg)

	if !a.requiresFailureOf(b.GestureRecognizer) {
		t.Error("a pinch should require failure of another pinch")
	}
	if !a.canRecognizeSimultaneously(drag.GestureRecognizer) {
		t.Error("pinch should compose with drag")
	}
}
