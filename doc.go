// Package layerkit is a deterministic, real-time gesture and layout runtime
// for retained 2D interfaces, built on [Ebitengine] for rendering and input.
//
// The core is a tree of [Layer] nodes driven by a single [LayerRoot] frame
// loop: layout, touch-idle refresh, timer flush, and redraw happen in a
// fixed order every tick. Incoming pointer/touch/wheel input is hit-tested
// against the tree by a [TouchDispatcher], which captures candidate
// [GestureRecognizer]s on the opening event of an interaction and arbitrates
// which of them get to start, continue, or must cancel when more than one
// wants the same input.
//
// # Quick start
//
// [RunHost] wires a [LayerRoot] to a live ebiten window, translating mouse,
// touch, and wheel input into dispatched events every tick:
//
//	root := layerkit.NewLayerRoot(layerkit.DefaultGesturesConfiguration())
//	root.SetContentLayer(content, layerkit.SizingModeMatchSize)
//	layerkit.RunHost(root, layerkit.HostConfig{Title: "My App", Width: 640, Height: 480})
//
// For full control over the loop, attach a [RootListener] and drive
// ProcessFrame/DispatchTouchEvent/DrawInCanvas yourself.
//
// # Gesture recognizers
//
// Each concrete recognizer ([TapRecognizer], [LongPressRecognizer],
// [TouchRecognizer], [DragRecognizer], [ScrollRecognizer], [PinchRecognizer],
// [RotateRecognizer], [WheelRecognizer]) is a small state machine sharing the
// common [GestureRecognizer] FSM; drag/scroll/pinch/rotate additionally share
// a move-gesture base for slop/threshold handling. Scroll also feeds
// [VelocityTracker]s for its fling velocity, which a [FlingAnimator] built
// on [gween] can ease back to rest.
//
// # External interfaces
//
// Rendering is deliberately opaque to the core: a [Layer]'s own draw hook
// only ever talks to the [DisplayList]/[Compositor]/[DrawableSurfaceCanvas]
// boundary, concretely backed here by ebiten images and geometry matrices,
// not by any particular asset pipeline.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package layerkit
