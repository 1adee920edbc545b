package layerkit

import (
	"fmt"
	"os"
)

// SizingMode controls how a LayerRoot resolves its content layer's frame.
type SizingMode int

const (
	// SizingModeMatchSize gives the content layer the root's own size.
	SizingModeMatchSize SizingMode = iota
	// SizingModeMinSize asks the content layer's sizeThatFits for its
	// preferred size within the root's size, and uses that instead.
	SizingModeMinSize
)

// kTouchRefreshMs is the minimum gap since the last dispatched event before
// refreshTouches synthesizes an Idle/None event.
var kTouchRefreshMs = DurationFromMilliseconds(10)

// frameSlowWarningThreshold is the per-frame draw budget at or above which
// draw logs a diagnostic.
var frameSlowWarningThreshold = DurationFromMilliseconds(100)

// RootListener receives the two notifications a LayerRoot's host must act
// on: a request to schedule the next processFrame call, and the result of
// one once drawn.
type RootListener interface {
	// OnNeedsProcessFrame is called when the root has pending work; the
	// host should schedule processFrame(now) on the drawing thread,
	// typically at the next vsync.
	OnNeedsProcessFrame(root *LayerRoot)
	// OnDidDraw delivers the display list and plane list produced by one
	// processFrame's draw step, for the host to submit to its renderer.
	OnDidDraw(root *LayerRoot, dl *DisplayList, planes CompositorPlaneList)
}

// LayerRoot is the core's single drive loop: it owns the content layer, the
// touch dispatcher, the event queue, and the id sequence, and exposes the
// host-facing contract (SetContentLayer/SetSize/ProcessFrame/
// DispatchTouchEvent/Destroy/EnqueueEvent/CancelEvent/DrawInCanvas).
type LayerRoot struct {
	Config GesturesConfiguration

	contentLayer *Layer
	sizingMode   SizingMode
	size         Size
	scale        Scalar

	listener RootListener

	initialAbsoluteFrameTime *TimePoint
	lastAbsoluteFrameTime    TimePoint

	needsDisplay bool
	needsLayout  bool

	processingFrame  bool
	didEnqueueFrame  bool
	destroyed        bool
	lastDrawnFrame   *DisplayList
	eventQueue       *EventQueue
	touchDispatcher  *TouchDispatcher
	layerIDSequence  uint64
	compositor       *Compositor
}

// NewLayerRoot builds a root using the given gestures configuration. The
// root starts with no content layer and zero size; a host must call
// SetContentLayer and SetSize before the first ProcessFrame produces
// anything.
func NewLayerRoot(config GesturesConfiguration) *LayerRoot {
	debugGesturesEnabled = debugGesturesEnabled || config.DebugGestures
	return &LayerRoot{
		Config:          config,
		eventQueue:      NewEventQueue(TimePointFromSeconds(0)),
		touchDispatcher: NewTouchDispatcher(),
		compositor:      NewCompositor(),
	}
}

// SetListener attaches the host's RootListener.
func (r *LayerRoot) SetListener(listener RootListener) { r.listener = listener }

// ContentLayer returns the currently attached content layer, or nil.
func (r *LayerRoot) ContentLayer() *Layer { return r.contentLayer }

// AllocateLayerID returns the next monotonic 64-bit id, unique within this
// root's lifetime.
func (r *LayerRoot) AllocateLayerID() uint64 {
	r.layerIDSequence++
	return r.layerIDSequence
}

// EnqueueFrame requests a processFrame call from the host, exactly once per
// outstanding request: if a frame is already pending, already processing,
// or the root is destroyed, this is a no-op.
func (r *LayerRoot) EnqueueFrame() {
	if r.didEnqueueFrame || r.processingFrame || r.destroyed {
		return
	}
	r.didEnqueueFrame = true
	if r.listener != nil {
		r.listener.OnNeedsProcessFrame(r)
	}
}

// SetSize updates the root's size and device scale. A size change marks
// layout dirty; a scale change marks the display dirty (everything must be
// re-snapped to the new pixel grid). Resolves layout synchronously before
// returning.
func (r *LayerRoot) SetSize(size Size, scale Scalar) {
	sizeChanged := size != r.size
	scaleChanged := scale != r.scale
	r.size = size
	r.scale = scale
	if sizeChanged {
		r.needsLayout = true
	}
	if scaleChanged {
		r.needsDisplay = true
	}
	r.layoutIfNeeded()
}

// SetContentLayer cancels all in-flight gestures, detaches the previous
// content layer (if any, reporting a nil parent to its OnParentChanged),
// stores the new one, and requests both a relayout and a redraw. The new
// layer is not notified: its Parent stays as it was and its OnParentChanged
// is not called, since the root is not itself a Layer.
func (r *LayerRoot) SetContentLayer(layer *Layer, sizingMode SizingMode) {
	r.touchDispatcher.CancelAllGestures()
	if r.contentLayer != nil && r.contentLayer.OnParentChanged != nil {
		old := r.contentLayer
		old.OnParentChanged(old, nil, nil)
	}
	r.contentLayer = layer
	r.sizingMode = sizingMode
	r.needsDisplay = true
	r.needsLayout = true
	r.EnqueueFrame()
}

// layoutIfNeeded resolves the content layer's frame from the root's size
// and sizing mode, then recurses into the content subtree.
func (r *LayerRoot) layoutIfNeeded() {
	if !r.needsLayout || r.contentLayer == nil {
		return
	}
	r.needsLayout = false

	w, h := r.size.Width, r.size.Height
	if r.sizingMode == SizingModeMinSize {
		fit := r.contentLayer.sizeThatFits(r.size)
		w, h = fit.Width, fit.Height
	}
	r.contentLayer.setFrame(RectFromLTWH(0, 0, w, h))
	r.contentLayer.layoutIfNeeded()
}

// ProcessFrame advances the root by one tick at absoluteTime: it resolves
// layout, flushes touches and timers, redraws if needed, and re-requests a
// frame if any work remains outstanding. A no-op once destroyed.
func (r *LayerRoot) ProcessFrame(absoluteTime TimePoint) {
	if r.destroyed {
		return
	}
	r.processingFrame = true

	if r.initialAbsoluteFrameTime == nil {
		t := absoluteTime
		r.initialAbsoluteFrameTime = &t
	}
	frameTime := absoluteTime.Sub(*r.initialAbsoluteFrameTime)
	r.lastAbsoluteFrameTime = absoluteTime

	r.layoutIfNeeded()

	frameTimeAsPoint := TimePointFromSeconds(frameTime.Seconds())
	r.refreshTouches(frameTimeAsPoint)
	r.eventQueue.Flush(frameTimeAsPoint)

	var drawn *DisplayList
	if r.needsDisplay {
		r.needsDisplay = false
		drawn = r.draw()
		r.lastDrawnFrame = drawn
	}

	r.didEnqueueFrame = false
	r.processingFrame = false

	if drawn != nil && r.listener != nil {
		planes := CompositorPlaneList{PlaneCount: 1}
		r.listener.OnDidDraw(r, drawn, planes)
	}

	if r.NeedsProcessFrame() {
		r.EnqueueFrame()
	}
}

// NeedsProcessFrame reports whether another ProcessFrame call is still
// needed: a frame is already enqueued, a draw or layout is pending, or the
// touch dispatcher or event queue still has unfinished work.
func (r *LayerRoot) NeedsProcessFrame() bool {
	return r.didEnqueueFrame || r.needsDisplay || r.needsLayout || !r.touchDispatcher.IsEmpty() || !r.eventQueue.Empty()
}

// draw allocates a fresh display list sized to the root, asks the content
// layer to paint into it, and warns on stderr if the pass took
// frameSlowWarningThreshold or longer. Composition onto a canvas happens
// later, in DrawInCanvas.
func (r *LayerRoot) draw() *DisplayList {
	dl := NewDisplayList(r.size, r.lastAbsoluteFrameTime)
	var metrics DrawMetrics
	start := Now()
	if r.contentLayer != nil {
		r.contentLayer.draw(dl, &metrics)
	}
	elapsed := Now().Sub(start)
	if elapsed.GreaterOrEqual(frameSlowWarningThreshold) {
		_, _ = fmt.Fprintf(os.Stderr, "[layerkit] frame slow: %dms (visited=%d cacheMiss=%d)\n",
			elapsed.Milliseconds(), metrics.VisitedLayers, metrics.DrawCacheMiss)
	}
	return dl
}

// DrawInCanvas replays the most recently drawn frame onto canvas, scaling to
// its dimensions if they differ from the display list's own recorded size.
func (r *LayerRoot) DrawInCanvas(canvas *DrawableSurfaceCanvas) {
	if r.lastDrawnFrame == nil {
		return
	}
	r.compositor.Compose(r.lastDrawnFrame, canvas)
}

// refreshTouches synthesizes and dispatches an Idle or None event once the
// dispatcher has gone kTouchRefreshMs without fresh input, so time-based
// recognizers (long-press, delayed touch) can make forward progress.
// Returns true if a synthetic event was dispatched.
func (r *LayerRoot) refreshTouches(frameTime TimePoint) bool {
	if r.touchDispatcher.IsEmpty() {
		return false
	}
	last := r.touchDispatcher.LastEvent()
	if last == nil {
		return false
	}
	offset := frameTime.Sub(last.Time)
	if offset.Less(kTouchRefreshMs) {
		return false
	}

	eventType := TouchNone
	if last.IsInteracting() {
		eventType = TouchIdle
	}

	synthetic := TouchEvent{
		Type:              eventType,
		LocationInWindow:  last.LocationInWindow,
		Location:          last.Location,
		Direction:         last.Direction,
		PointerCount:      last.PointerCount,
		ActionIndex:       last.ActionIndex,
		PointerLocations:  last.PointerLocations,
		Time:              frameTime,
		OffsetSinceSource: last.OffsetSinceSource.Add(offset),
		Source:            last.Source,
	}
	r.DispatchTouchEvent(synthetic)
	return true
}

// DispatchTouchEvent delivers event to the touch dispatcher against the
// content layer. Rejects re-entrant calls (returns false immediately) and
// requests another frame if the interaction is still ongoing afterward.
func (r *LayerRoot) DispatchTouchEvent(event TouchEvent) bool {
	if r.touchDispatcher.IsDispatchingEvent() || r.contentLayer == nil {
		return false
	}
	processed := r.touchDispatcher.DispatchEvent(event, r.contentLayer)
	if !r.touchDispatcher.IsEmpty() {
		r.EnqueueFrame()
	}
	return processed
}

// EnqueueEvent schedules callback to run on a future ProcessFrame's event
// flush, after delay relative to the event queue's own clock.
func (r *LayerRoot) EnqueueEvent(delay Duration, callback EventCallback) EventID {
	return r.eventQueue.Enqueue(delay, callback)
}

// CancelEvent cancels a previously enqueued event by id.
func (r *LayerRoot) CancelEvent(id EventID) bool {
	return r.eventQueue.Cancel(id)
}

// MarkNeedsDisplay flags the root for a redraw on the next ProcessFrame and
// requests one.
func (r *LayerRoot) MarkNeedsDisplay() {
	r.needsDisplay = true
	r.EnqueueFrame()
}

// Destroy clears the listener, drains the event queue, detaches the content
// layer, and marks the root permanently inert: further ProcessFrame/
// DispatchTouchEvent calls are no-ops. Idempotent.
func (r *LayerRoot) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.listener = nil
	r.eventQueue.Clear()
	r.touchDispatcher.CancelAllGestures()
	if r.contentLayer != nil && r.contentLayer.OnParentChanged != nil {
		old := r.contentLayer
		old.OnParentChanged(old, nil, nil)
	}
	r.contentLayer = nil
}
