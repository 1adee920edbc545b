package layerkit

import (
	"math"
	"testing"
)

func TestRotateRecognizerStartsOnSecondPointer(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewRotateRecognizer(cfg)

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Direction: Vector{DX: 1, DY: 0}, Time: t0})
	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 1, Y: 0}, PointerCount: 2, Direction: Vector{DX: 1, DY: 0}, Time: t0})

	if r.State() != StateBegan {
		t.Fatalf("state = %v, want Began", r.State())
	}
}

func TestRotateRecognizerAccumulatesAngle(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	r := NewRotateRecognizer(cfg)

	var lastEvent RotateEvent
	r.OnRotate = func(r *RotateRecognizer, state RecognizerState, e RotateEvent) { lastEvent = e }

	t0 := TimePointFromSeconds(0)
	r.Update(TouchEvent{Type: TouchDown, LocationInWindow: Point{X: 0, Y: 0}, PointerCount: 1, Direction: Vector{DX: 1, DY: 0}, Time: t0})
	r.Update(TouchEvent{Type: TouchPointerDown, LocationInWindow: Point{X: 1, Y: 0}, PointerCount: 2, Direction: Vector{DX: 1, DY: 0}, Time: t0})
	r.Process()
	if math.Abs(float64(lastEvent.Rotation)) > 1e-9 {
		t.Errorf("initial Rotation = %v, want 0", lastEvent.Rotation)
	}

	// Rotate the direction vector 90 degrees.
	r.Update(TouchEvent{Type: TouchMoved, LocationInWindow: Point{X: 0, Y: 1}, PointerCount: 2, Direction: Vector{DX: 0, DY: 1}, Time: t0})
	r.Process()
	if math.Abs(float64(lastEvent.Rotation)-math.Pi/2) > 1e-9 {
		t.Errorf("Rotation after a 90-degree turn = %v, want pi/2", lastEvent.Rotation)
	}
}

func TestRotateRecognizerRequiresFailureOfAnotherRotate(t *testing.T) {
	cfg := DefaultGesturesConfiguration()
	a := NewRotateRecognizer(cfg)
	b := NewRotateRecognizer(cfg)
	pinch := NewPinchRecognizer(cfg)

	if !a.requiresFailureOf(b.GestureRecognizer) {
		t.Error("a rotate should require failure of another rotate")
	}
	if !a.canRecognizeSimultaneously(pinch.GestureRecognizer) {
		t.Error("rotate should compose with pinch")
	}
}
