package layerkit

// TouchEventType enumerates the kinds of touch events the dispatcher
// understands.
type TouchEventType int

const (
	// TouchDown is a new pointer contacting the surface.
	TouchDown TouchEventType = iota
	// TouchMoved is an existing pointer moving.
	TouchMoved
	// TouchIdle is a synthetic event injected by refreshTouches while an
	// interaction is ongoing but no fresh input has arrived.
	TouchIdle
	// TouchUp is the last pointer lifting.
	TouchUp
	// TouchWheel is a scroll-wheel tick.
	TouchWheel
	// TouchNone is a synthetic event injected by refreshTouches once an
	// interaction has gone fully idle (no pointers down).
	TouchNone
	// TouchPointerDown is an additional pointer contacting the surface
	// while others are already down (multi-touch).
	TouchPointerDown
	// TouchPointerUp is one of several pointers lifting while others
	// remain down.
	TouchPointerUp
)

func (t TouchEventType) String() string {
	switch t {
	case TouchDown:
		return "Down"
	case TouchMoved:
		return "Moved"
	case TouchIdle:
		return "Idle"
	case TouchUp:
		return "Up"
	case TouchWheel:
		return "Wheel"
	case TouchNone:
		return "None"
	case TouchPointerDown:
		return "PointerDown"
	case TouchPointerUp:
		return "PointerUp"
	default:
		return "Unknown"
	}
}

// maxInlinePointerLocations is the number of pointer locations carried
// inline on a TouchEvent without an allocation: room for at least 2
// (single-finger plus one companion for pinch/rotate).
const maxInlinePointerLocations = 2

// TouchEvent is an immutable description of one input occurrence delivered
// to the touch dispatcher. Use WithLocation to derive a copy localized to a
// particular layer's coordinate system; all other fields are copied as-is.
type TouchEvent struct {
	Type TouchEventType

	// LocationInWindow is the event's position in the root's coordinate
	// space, stable for the lifetime of the event regardless of which
	// layer is currently interpreting it.
	LocationInWindow Point

	// Location is the position in whichever layer's coordinate system is
	// currently interpreting this event (the root's space for a freshly
	// captured event; a descendant's space once localized).
	Location Point

	// Direction is the wheel delta for TouchWheel events, or the vector
	// between the first two pointer locations for multi-touch events.
	Direction Vector

	// PointerCount is the number of pointers currently down.
	PointerCount int

	// ActionIndex identifies which pointer slot this event concerns for
	// PointerDown/PointerUp events.
	ActionIndex int

	// PointerLocations holds up to maxInlinePointerLocations locations
	// inline; recognizers needing more than two active pointers are not
	// supported by this runtime (matching the source's reserved-2 layout).
	PointerLocations [maxInlinePointerLocations]Point

	Time              TimePoint
	OffsetSinceSource Duration

	// Source is an opaque host-owned handle (e.g. the originating platform
	// event), carried through unexamined by the core.
	Source any
}

// WithLocation returns a copy of e with Location replaced by p. Every other
// field, including LocationInWindow, is preserved.
func (e TouchEvent) WithLocation(p Point) TouchEvent {
	e.Location = p
	return e
}

// IsInteracting reports whether this event type represents an ongoing
// interaction (as opposed to a fully-idle gap), used by refreshTouches to
// decide whether to synthesize TouchIdle or TouchNone.
func (e TouchEvent) IsInteracting() bool {
	switch e.Type {
	case TouchDown, TouchMoved, TouchIdle, TouchPointerDown, TouchPointerUp:
		return true
	default:
		return false
	}
}
