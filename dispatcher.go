package layerkit

// TouchDispatcher hit-tests incoming events against a layer tree, captures
// gesture recognizer candidates on the opening event of an interaction, and
// arbitrates which of those candidates get to start, continue, or must
// cancel, exactly mirroring the capture/update/start/process four-step
// cycle of the runtime this module generalizes from a 2D drawing layer tree
// to layerkit's own Layer type.
type TouchDispatcher struct {
	candidates  []*GestureRecognizer
	toStart     []*GestureRecognizer
	lastEvent   *TouchEvent
	dispatching bool
}

// NewTouchDispatcher returns an empty dispatcher.
func NewTouchDispatcher() *TouchDispatcher {
	return &TouchDispatcher{}
}

// IsDispatchingEvent reports whether a dispatch is currently in progress
// (true only for the duration of one DispatchEvent call).
func (d *TouchDispatcher) IsDispatchingEvent() bool { return d.dispatching }

// IsEmpty reports whether the dispatcher has no candidate or pending-start
// recognizers, meaning a LayerRoot may treat the interaction as fully idle.
func (d *TouchDispatcher) IsEmpty() bool {
	return len(d.candidates) == 0 && len(d.toStart) == 0
}

// LastEvent returns the most recently dispatched event, or nil if none yet.
func (d *TouchDispatcher) LastEvent() *TouchEvent { return d.lastEvent }

// CancelAllGestures cancels every candidate recognizer, from the most
// recently captured back to the first, matching the source's
// back-to-front drain order.
func (d *TouchDispatcher) CancelAllGestures() {
	for len(d.candidates) > 0 {
		r := d.candidates[len(d.candidates)-1]
		d.cancelGestureRecognizer(r)
	}
}

// DispatchEvent runs one full capture/update/start/process cycle for event
// against rootLayer, returning true if any recognizer remains a candidate
// afterward. Capture only happens on TouchDown/TouchWheel: every other event
// type, including a second finger's TouchPointerDown, only updates/
// arbitrates the candidates already captured by an earlier down.
func (d *TouchDispatcher) DispatchEvent(event TouchEvent, rootLayer *Layer) bool {
	d.dispatching = true
	d.lastEvent = &event
	debugLogf("dispatcher: dispatching %s", event.Type)

	if event.Type == TouchDown || event.Type == TouchWheel {
		before := len(d.candidates)
		d.captureCandidates(event, rootLayer, &d.candidates)
		debugLogf("dispatcher: captured %d new candidates (total %d)", len(d.candidates)-before, len(d.candidates))
	}

	processed := d.processGestureRecognizers(rootLayer)
	d.dispatching = false
	return processed
}

// GestureCandidatesForEvent returns the recognizers that would be captured
// for event against rootLayer, without mutating dispatcher state. Used by
// callers wanting to inspect what a hypothetical down would hit.
func (d *TouchDispatcher) GestureCandidatesForEvent(event TouchEvent, rootLayer *Layer) []*GestureRecognizer {
	var out []*GestureRecognizer
	d.captureCandidates(event, rootLayer, &out)
	return out
}

func containsRecognizer(list []*GestureRecognizer, r *GestureRecognizer) bool {
	for _, existing := range list {
		if existing == r {
			return true
		}
	}
	return false
}

func indexOfRecognizer(list []*GestureRecognizer, r *GestureRecognizer) int {
	for i, existing := range list {
		if existing == r {
			return i
		}
	}
	return -1
}

func removeRecognizer(list []*GestureRecognizer, r *GestureRecognizer) []*GestureRecognizer {
	i := indexOfRecognizer(list, r)
	if i < 0 {
		return list
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}

// captureCandidates hit-tests layer (in the coordinate space event.Location
// is already expressed in) and, if hit, appends its own recognizers (honoring
// ShouldProcessBeforeOtherGestures) before recursing into children from
// topmost to bottommost, stopping at the first child that is itself hit —
// siblings below it never capture for this same down.
func (d *TouchDispatcher) captureCandidates(event TouchEvent, layer *Layer, out *[]*GestureRecognizer) bool {
	if !layer.hitTest(event.Location) {
		return false
	}

	for _, r := range layer.GestureRecognizers() {
		if containsRecognizer(*out, r) {
			continue
		}
		if r.ShouldProcessBeforeOtherGestures {
			insertAt := 0
			for insertAt < len(*out) && (*out)[insertAt].ShouldProcessBeforeOtherGestures {
				insertAt++
			}
			*out = append(*out, nil)
			copy((*out)[insertAt+1:], (*out)[insertAt:])
			(*out)[insertAt] = r
		} else {
			*out = append(*out, r)
		}
	}

	for i := layer.NumChildren() - 1; i >= 0; i-- {
		child := layer.ChildAt(i)
		childPoint := child.convertPointFromParent(event.Location)
		if d.captureCandidates(event.WithLocation(childPoint), child, out) {
			break
		}
	}

	return true
}

func (d *TouchDispatcher) processGestureRecognizers(rootLayer *Layer) bool {
	if d.lastEvent == nil {
		return false
	}
	d.updateGestureRecognizers(rootLayer)
	d.startPendingGestureRecognizers()
	d.processActiveGestureRecognizers()
	return len(d.candidates) > 0
}

// updateGestureRecognizers calls Update on every non-deferred candidate with
// its event re-localized into that recognizer's owning layer's space. A
// recognizer whose layer has left the tree (adjustEventCoordinatesToLayer
// fails), or that fails outright, is cancelled and dropped.
func (d *TouchDispatcher) updateGestureRecognizers(rootLayer *Layer) {
	i := 0
	for i < len(d.candidates) {
		r := d.candidates[i]
		shouldCancel := false

		if !d.isGestureRecognizerDeferred(r) {
			childEvent, ok := adjustEventCoordinatesToLayer(rootLayer, r.Layer, *d.lastEvent)
			if ok {
				previousState := r.State()
				r.Update(childEvent)

				switch {
				case r.State() == StateFailed:
					shouldCancel = true
				case r.State() == StateBegan,
					previousState == StatePossible && r.State() == StateEnded:
					d.toStart = append(d.toStart, r)
				}
			} else {
				shouldCancel = true
			}
		}

		if shouldCancel {
			r.Cancel()
			d.candidates = removeRecognizer(d.candidates, r)
		} else {
			i++
		}
	}
}

func (d *TouchDispatcher) cancelGestureRecognizer(r *GestureRecognizer) {
	d.candidates = removeRecognizer(d.candidates, r)
	d.toStart = removeRecognizer(d.toStart, r)
	r.Cancel()
}

func (d *TouchDispatcher) cancelGestureRecognizersBeforeIndex(index int) {
	for len(d.candidates) > index+1 {
		d.cancelGestureRecognizer(d.candidates[index+1])
	}
}

// startPendingGestureRecognizers arbitrates every recognizer that asked to
// start this cycle, walking from the most recently requested back to the
// first (capture appends a layer's recognizers before its children's, so
// the deepest-in-hierarchy candidates sit at the back and are arbitrated
// first, matching the source's back-to-front priority rule), resolving
// conflicts via requiresFailureOf/canRecognizeSimultaneously.
func (d *TouchDispatcher) startPendingGestureRecognizers() {
	index := len(d.toStart)
	for index > 0 {
		index--
		r := d.toStart[index]

		shouldStart := true
		shouldDefer := false

		downIndex := index
		for downIndex > 0 {
			downIndex--
			conflict := d.toStart[downIndex]
			if canRecognizeSimultaneously(r, conflict) {
				continue
			}
			if conflict.RequiresFailureOf(r) {
				conflict.Cancel()
				d.toStart = append(d.toStart[:downIndex], d.toStart[downIndex+1:]...)
				d.candidates = removeRecognizer(d.candidates, conflict)
				index--
			} else {
				shouldStart = false
				break
			}
		}

		if shouldStart {
			for _, active := range d.candidates {
				if active == r {
					continue
				}
				switch {
				case active.State() == StateChanged || active.State() == StateEnded:
					if !canRecognizeSimultaneously(r, active) {
						shouldStart = false
					}
				case active.State() == StatePossible:
					if r.RequiresFailureOf(active) {
						shouldDefer = true
					}
				}
				if !shouldStart || shouldDefer {
					break
				}
			}
		}

		if shouldDefer {
			continue
		}

		d.toStart = removeRecognizer(d.toStart, r)

		if shouldStart {
			if r.ShouldCancelOtherGesturesOnStart {
				d.cancelGestureRecognizersBeforeIndex(indexOfRecognizer(d.candidates, r))
				index = 0
			}
			r.OnStarted()
		} else {
			d.cancelGestureRecognizer(r)
		}
	}
}

// processActiveGestureRecognizers fires Process on every non-deferred active
// candidate, removing (after a final Cancel) any that reach StateEnded.
func (d *TouchDispatcher) processActiveGestureRecognizers() {
	i := 0
	for i < len(d.candidates) {
		r := d.candidates[i]
		if !d.isGestureRecognizerDeferred(r) && r.IsActive() {
			r.Process()
			if r.State() == StateEnded {
				r.Cancel()
				d.candidates = removeRecognizer(d.candidates, r)
				continue
			}
		}
		i++
	}
}

func (d *TouchDispatcher) isGestureRecognizerDeferred(r *GestureRecognizer) bool {
	return containsRecognizer(d.toStart, r)
}

// canRecognizeSimultaneously is the dispatcher's own symmetric wrapper:
// true iff either recognizer's own policy allows it.
func canRecognizeSimultaneously(left, right *GestureRecognizer) bool {
	return compatible(left, right)
}

// adjustEventCoordinatesToLayer relocalizes event's Location into
// childLayer's coordinate system by walking up from rootLayer, returning
// ok=false if childLayer is nil or no longer reachable from rootLayer (it
// has left the tree).
func adjustEventCoordinatesToLayer(rootLayer *Layer, childLayer *Layer, event TouchEvent) (TouchEvent, bool) {
	if childLayer == nil {
		return TouchEvent{}, false
	}
	converted, ok := rootLayer.convertPointToLayer(event.Location, childLayer)
	if !ok {
		return TouchEvent{}, false
	}
	return event.WithLocation(converted), true
}
