package layerkit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HostConfig configures the reference ebiten host loop.
type HostConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	// If zero, defaults to 640x480.
	Width, Height int
	// Scale is the device pixel ratio passed to LayerRoot.SetSize. Defaults
	// to 1 if zero.
	Scale Scalar
}

// RunHost wires an ebiten game loop around root: every tick it translates
// mouse/touch/wheel state into TouchEvents dispatched to root, calls
// root.ProcessFrame, and submits the result via root.DrawInCanvas. Skip
// RunHost and drive LayerRoot directly for full control over the loop.
func RunHost(root *LayerRoot, cfg HostConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 640
	}
	if h == 0 {
		h = 480
	}
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}

	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}

	shell := &hostShell{root: root, w: w, h: h, scale: scale}
	return ebiten.RunGame(shell)
}

// hostShell implements ebiten.Game by translating raw mouse/touch/wheel
// input into the TouchEvent stream LayerRoot expects.
type hostShell struct {
	root  *LayerRoot
	w, h  int
	scale Scalar

	sizeSet bool

	pointerDown [maxPointers]bool
	pointerLoc  [maxPointers]Point
	touchIDs    [maxPointers]ebiten.TouchID
	touchInUse  [maxPointers]bool
	prevTouches []ebiten.TouchID
}

func (g *hostShell) Update() error {
	if !g.sizeSet {
		g.root.SetSize(Size{Width: Scalar(g.w), Height: Scalar(g.h)}, g.scale)
		g.sizeSet = true
	}

	now := Now()
	g.dispatchPointerTransitions(now)
	g.dispatchWheel(now)
	g.root.ProcessFrame(now)
	return nil
}

func (g *hostShell) Draw(screen *ebiten.Image) {
	canvas := NewDrawableSurfaceCanvas(screen)
	g.root.DrawInCanvas(canvas)
}

func (g *hostShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// slot 0 is reserved for the mouse; slots 1..maxPointers-1 map to touches.
const mouseSlot = 0

// maxPointers bounds how many simultaneous pointers (mouse plus touches) the
// host shell tracks; slot 0 is the mouse, the rest are touch slots.
const maxPointers = 10

// dispatchPointerTransitions reads the current mouse and touch state,
// compares it against last tick's, and dispatches TouchDown/TouchMoved/
// TouchPointerDown/TouchPointerUp/TouchUp events for whatever changed,
// building PointerLocations/PointerCount/Direction from every slot
// currently down (capped at maxInlinePointerLocations, per the event's own
// reserved-2 layout).
func (g *hostShell) dispatchPointerTransitions(now TimePoint) {
	mx, my := ebiten.CursorPosition()
	mouseLoc := Point{X: float64(mx), Y: float64(my)}
	mousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	wasDown := g.pointerDown[mouseSlot]
	g.pointerLoc[mouseSlot] = mouseLoc
	if mousePressed != wasDown {
		g.pointerDown[mouseSlot] = mousePressed
		g.emitTransition(now, mouseSlot, wasDown, mousePressed)
	} else if mousePressed {
		g.emitMoveIfTracked(now, mouseSlot)
	}

	ids := ebiten.AppendTouchIDs(g.prevTouches[:0])
	g.prevTouches = ids
	var seen [maxPointers]bool
	for _, id := range ids {
		slot := g.touchSlot(id)
		if slot < 0 {
			continue
		}
		seen[slot] = true
		tx, ty := ebiten.TouchPosition(id)
		loc := Point{X: float64(tx), Y: float64(ty)}
		wasDown := g.pointerDown[slot]
		g.pointerLoc[slot] = loc
		if !wasDown {
			g.pointerDown[slot] = true
			g.emitTransition(now, slot, false, true)
		} else {
			g.emitMoveIfTracked(now, slot)
		}
	}
	for slot := 1; slot < maxPointers; slot++ {
		if g.touchInUse[slot] && !seen[slot] && g.pointerDown[slot] {
			g.pointerDown[slot] = false
			g.emitTransition(now, slot, true, false)
			g.touchInUse[slot] = false
		}
	}
}

func (g *hostShell) touchSlot(id ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchInUse[i] && g.touchIDs[i] == id {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchInUse[i] {
			g.touchInUse[i] = true
			g.touchIDs[i] = id
			return i
		}
	}
	return -1
}

func (g *hostShell) downCount() int {
	count := 0
	for _, down := range g.pointerDown {
		if down {
			count++
		}
	}
	return count
}

// firstTwoLocations returns up to maxInlinePointerLocations currently-down
// pointer locations, in slot order, for the event's Direction/
// PointerLocations fields.
func (g *hostShell) firstTwoLocations() [maxInlinePointerLocations]Point {
	var out [maxInlinePointerLocations]Point
	n := 0
	for slot, down := range g.pointerDown {
		if !down {
			continue
		}
		out[n] = g.pointerLoc[slot]
		n++
		if n == maxInlinePointerLocations {
			break
		}
	}
	return out
}

func (g *hostShell) directionVector(locs [maxInlinePointerLocations]Point, count int) Vector {
	if count < 2 {
		return Vector{}
	}
	return locs[1].Sub(locs[0])
}

// emitTransition dispatches the event type corresponding to a single
// slot's down-state flip, given how many pointers are down afterward.
func (g *hostShell) emitTransition(now TimePoint, slot int, wasDown, isDown bool) {
	count := g.downCount()
	locs := g.firstTwoLocations()
	dir := g.directionVector(locs, count)

	var eventType TouchEventType
	switch {
	case isDown && count == 1:
		eventType = TouchDown
	case isDown:
		eventType = TouchPointerDown
	case !isDown && count == 0:
		eventType = TouchUp
	default:
		eventType = TouchPointerUp
	}

	g.root.DispatchTouchEvent(TouchEvent{
		Type:             eventType,
		LocationInWindow: g.pointerLoc[slot],
		Location:         g.pointerLoc[slot],
		Direction:        dir,
		PointerCount:     count,
		ActionIndex:      slot,
		PointerLocations: locs,
		Time:             now,
	})
}

// emitMoveIfTracked dispatches a TouchMoved event for the given slot. Its
// callers invoke it only for a slot that was already down on the previous
// tick; LayerRoot.DispatchTouchEvent ignores the event when no content layer
// is attached.
func (g *hostShell) emitMoveIfTracked(now TimePoint, slot int) {
	count := g.downCount()
	locs := g.firstTwoLocations()
	dir := g.directionVector(locs, count)

	g.root.DispatchTouchEvent(TouchEvent{
		Type:             TouchMoved,
		LocationInWindow: g.pointerLoc[slot],
		Location:         g.pointerLoc[slot],
		Direction:        dir,
		PointerCount:     count,
		ActionIndex:      slot,
		PointerLocations: locs,
		Time:             now,
	})
}

// dispatchWheel translates ebiten's per-tick wheel delta into a TouchWheel
// event, skipping entirely when there was no wheel movement this tick.
func (g *hostShell) dispatchWheel(now TimePoint) {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	loc := Point{X: float64(mx), Y: float64(my)}
	g.root.DispatchTouchEvent(TouchEvent{
		Type:             TouchWheel,
		LocationInWindow: loc,
		Location:         loc,
		Direction:        Vector{DX: dx, DY: dy},
		PointerCount:     0,
		Time:             now,
	})
}
