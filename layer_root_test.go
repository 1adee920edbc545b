package layerkit

import "testing"

type recordingListener struct {
	needsFrame int
	didDraw    int
	lastPlanes CompositorPlaneList
}

func (l *recordingListener) OnNeedsProcessFrame(root *LayerRoot) { l.needsFrame++ }
func (l *recordingListener) OnDidDraw(root *LayerRoot, dl *DisplayList, planes CompositorPlaneList) {
	l.didDraw++
	l.lastPlanes = planes
}

func TestLayerRootSetContentLayerLaysOutToRootSize(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	content := NewLayer()

	root.SetSize(Size{Width: 300, Height: 200}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)
	root.ProcessFrame(TimePointFromSeconds(0))

	if content.Frame != RectFromLTWH(0, 0, 300, 200) {
		t.Errorf("content frame = %v, want the root's full size", content.Frame)
	}
}

func TestLayerRootProcessFrameDrawsOnce(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	listener := &recordingListener{}
	root.SetListener(listener)

	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)

	root.ProcessFrame(TimePointFromSeconds(0))

	if listener.didDraw != 1 {
		t.Fatalf("didDraw = %d, want 1 after a frame with pending display work", listener.didDraw)
	}

	// Nothing changed since the last frame: no further work, no redraw.
	root.ProcessFrame(TimePointFromSeconds(1.0 / 60))
	if listener.didDraw != 1 {
		t.Errorf("didDraw = %d, want still 1 once the root has settled", listener.didDraw)
	}
}

func TestLayerRootMarkNeedsDisplayRequestsAnotherFrame(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	listener := &recordingListener{}
	root.SetListener(listener)

	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)
	root.ProcessFrame(TimePointFromSeconds(0))

	before := listener.needsFrame
	root.MarkNeedsDisplay()
	if listener.needsFrame != before+1 {
		t.Errorf("needsFrame = %d, want %d after MarkNeedsDisplay", listener.needsFrame, before+1)
	}

	root.ProcessFrame(TimePointFromSeconds(1.0 / 60))
	if listener.didDraw != 2 {
		t.Errorf("didDraw = %d, want 2 after MarkNeedsDisplay forced a redraw", listener.didDraw)
	}
}

func TestLayerRootNeedsProcessFrameReflectsPendingEnqueue(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	listener := &recordingListener{}
	root.SetListener(listener)

	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)
	root.ProcessFrame(TimePointFromSeconds(0))

	if root.NeedsProcessFrame() {
		t.Fatalf("NeedsProcessFrame() = true before any new work, want false once settled")
	}

	root.EnqueueFrame()
	if !root.NeedsProcessFrame() {
		t.Errorf("NeedsProcessFrame() = false right after EnqueueFrame, want true")
	}

	root.ProcessFrame(TimePointFromSeconds(1.0 / 60))
	if root.NeedsProcessFrame() {
		t.Errorf("NeedsProcessFrame() = true after ProcessFrame cleared the pending enqueue, want false")
	}
}

func TestLayerRootDispatchTouchEventHitsContentGesture(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)
	root.ProcessFrame(TimePointFromSeconds(0))

	tap := NewTapRecognizer(root.Config, 1)
	var ended bool
	tap.OnTap = func(r *TapRecognizer, state RecognizerState, loc Point) {
		if state == StateEnded {
			ended = true
		}
	}
	content.AddGestureRecognizer(tap.GestureRecognizer)

	now := TimePointFromSeconds(0)
	root.DispatchTouchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 10, Y: 10}, PointerCount: 1, Time: now})
	root.DispatchTouchEvent(TouchEvent{Type: TouchUp, Location: Point{X: 10, Y: 10}, PointerCount: 0, Time: now.Plus(DurationFromMilliseconds(20))})

	if !ended {
		t.Fatal("expected the content layer's tap recognizer to fire")
	}
}

func TestLayerRootEnqueueEventFiresDuringProcessFrame(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)
	root.ProcessFrame(TimePointFromSeconds(0))

	var fired bool
	root.EnqueueEvent(DurationFromMilliseconds(10), func() { fired = true })

	root.ProcessFrame(TimePointFromSeconds(0.005))
	if fired {
		t.Fatal("callback fired before its delay elapsed")
	}

	root.ProcessFrame(TimePointFromSeconds(0.02))
	if !fired {
		t.Error("expected the enqueued callback to fire once its delay elapsed")
	}
}

func TestLayerRootDestroyIsIdempotentAndInert(t *testing.T) {
	root := NewLayerRoot(DefaultGesturesConfiguration())
	content := NewLayer()
	root.SetSize(Size{Width: 100, Height: 100}, 1)
	root.SetContentLayer(content, SizingModeMatchSize)

	root.Destroy()
	root.Destroy()

	if root.ContentLayer() != nil {
		t.Error("expected ContentLayer to be nil after Destroy")
	}
	if root.DispatchTouchEvent(TouchEvent{Type: TouchDown, Location: Point{X: 1, Y: 1}, Time: TimePointFromSeconds(0)}) {
		t.Error("expected DispatchTouchEvent to be a no-op once destroyed")
	}
}
