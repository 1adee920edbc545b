package layerkit

// RecognizerState is a gesture recognizer's position in its per-cycle state
// machine.
type RecognizerState int

const (
	// StatePossible is the initial state: the recognizer is still watching
	// the event stream and has not yet committed to begin or fail.
	StatePossible RecognizerState = iota
	// StateFailed is terminal within a dispatch cycle: the recognizer lost
	// the arbitration or its own rules rejected the gesture.
	StateFailed
	// StateBegan is the first active state: the gesture has started.
	StateBegan
	// StateChanged is the continuing-active state, following StateBegan.
	StateChanged
	// StateEnded is terminal: the gesture completed successfully.
	StateEnded
)

func (s RecognizerState) String() string {
	switch s {
	case StatePossible:
		return "Possible"
	case StateFailed:
		return "Failed"
	case StateBegan:
		return "Began"
	case StateChanged:
		return "Changed"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// IsActive reports whether the state is one in which the recognizer is
// actively tracking a live gesture (Began, Changed, or Ended).
func (s RecognizerState) IsActive() bool {
	return s == StateBegan || s == StateChanged || s == StateEnded
}

// recognizerBehavior is the per-subtype vtable a concrete recognizer
// supplies. GestureRecognizer dispatches to it from the common FSM
// machinery in Update/Process/Cancel, matching the "shared state record
// plus a variant" design described for the recognizer hierarchy: the three
// hooks here are the virtual onUpdate/onProcess/onReset, and
// requiresFailureOf/canRecognizeSimultaneously are the arbiter's policy
// predicates.
type recognizerBehavior interface {
	onUpdate(e TouchEvent)
	onProcess()
	onReset()
	// onStarted runs once, when the dispatcher's arbitration allows this
	// recognizer to begin (see TouchDispatcher.startPendingGestureRecognizers).
	// Most subtypes leave this a no-op; the tap family uses it to collapse
	// Began directly into Ended, since a tap has no "changed" phase.
	onStarted()
	requiresFailureOf(other *GestureRecognizer) bool
	canRecognizeSimultaneously(other *GestureRecognizer) bool
	typeName() string
}

// GestureRecognizer is the common state shared by every concrete recognizer
// subtype. Concrete recognizers embed a *GestureRecognizer and register
// themselves as its behavior, so promoted methods (Update, Process, Cancel,
// State, ...) are available directly on the concrete type.
type GestureRecognizer struct {
	behavior recognizerBehavior

	// Layer is the owning layer. Conceptually a weak reference: clearing it
	// (SetLayer(nil)) never keeps the layer alive. Go's GC makes the
	// weakness automatic as long as no other code retains
	// recognizer->layer->recognizer cycles as strong on both sides (layer ->
	// recognizer is the strong edge).
	Layer *Layer

	lastEvent    *TouchEvent
	wasProcessed bool
	state        RecognizerState

	// ShouldCancelOtherGesturesOnStart, when true, cancels every later
	// candidate in the dispatcher's list once this recognizer starts.
	ShouldCancelOtherGesturesOnStart bool
	// ShouldProcessBeforeOtherGestures places this recognizer ahead of every
	// captured candidate that lacks the flag (see
	// TouchDispatcher.captureCandidates).
	ShouldProcessBeforeOtherGestures bool

	// ShouldBeginListener, if set, overrides the default shouldBegin()
	// predicate (which always returns true).
	ShouldBeginListener func() bool
}

func newGestureRecognizer(behavior recognizerBehavior) *GestureRecognizer {
	return &GestureRecognizer{behavior: behavior, state: StatePossible}
}

// State returns the recognizer's current state.
func (g *GestureRecognizer) State() RecognizerState { return g.state }

// IsActive reports whether the recognizer is in an active state.
func (g *GestureRecognizer) IsActive() bool { return g.state.IsActive() }

// LastEvent returns the most recent event this recognizer was active for,
// or nil if it has none (fresh or just reset).
func (g *GestureRecognizer) LastEvent() *TouchEvent { return g.lastEvent }

// WasProcessed reports whether Process has been called since the last reset.
func (g *GestureRecognizer) WasProcessed() bool { return g.wasProcessed }

// TypeName returns the concrete subtype's debug name, used only by
// debugGestures tracing.
func (g *GestureRecognizer) TypeName() string { return g.behavior.typeName() }

// transitionToState is a pure state assignment with no side effects.
func (g *GestureRecognizer) transitionToState(s RecognizerState) {
	g.state = s
}

// shouldBegin reports whether a Possible -> active transition is allowed to
// stand. Defaults to true unless ShouldBeginListener says otherwise.
func (g *GestureRecognizer) shouldBegin() bool {
	if g.ShouldBeginListener != nil {
		return g.ShouldBeginListener()
	}
	return true
}

// RequiresFailureOf reports whether g must wait for other to fail before it
// may start. Delegates to the subtype's policy.
func (g *GestureRecognizer) RequiresFailureOf(other *GestureRecognizer) bool {
	return g.behavior.requiresFailureOf(other)
}

// CanRecognizeSimultaneously reports whether g is willing to be active at
// the same time as other. Delegates to the subtype's policy. Two
// recognizers are compatible overall iff either direction returns true
// (checked by the caller, not here).
func (g *GestureRecognizer) CanRecognizeSimultaneously(other *GestureRecognizer) bool {
	return g.behavior.canRecognizeSimultaneously(other)
}

// compatible reports whether a and b may both be active at once: true iff
// either side's canRecognizeSimultaneously says yes.
func compatible(a, b *GestureRecognizer) bool {
	return a.CanRecognizeSimultaneously(b) || b.CanRecognizeSimultaneously(a)
}

// Update is called by the dispatcher on every event this recognizer is a
// candidate for. If already Began, it first advances to Changed. The
// subtype's onUpdate then runs; if it moved the recognizer from Possible to
// an active state but shouldBegin() vetoes it, the state is forced to
// Failed. Finally, if the recognizer ended up active, lastEvent is updated.
func (g *GestureRecognizer) Update(e TouchEvent) {
	wasPossible := g.state == StatePossible
	if g.state == StateBegan {
		g.transitionToState(StateChanged)
	}
	g.behavior.onUpdate(e)
	if wasPossible && g.state.IsActive() && !g.shouldBegin() {
		g.transitionToState(StateFailed)
	}
	if g.state.IsActive() {
		evCopy := e
		g.lastEvent = &evCopy
	}
}

// Process is called by the dispatcher on every active recognizer after
// arbitration. It marks the recognizer processed and invokes the subtype's
// onProcess, where listener callbacks fire.
func (g *GestureRecognizer) Process() {
	g.wasProcessed = true
	g.behavior.onProcess()
}

// Cancel ends the recognizer's current cycle. If it had already been
// processed and had not reached Ended, a synthetic Ended is delivered (one
// more Process call) so the listener observes termination. The recognizer
// is then returned to Possible, its lastEvent cleared, and the subtype's
// onReset hook runs to clear any accumulators.
func (g *GestureRecognizer) Cancel() {
	if g.wasProcessed && g.state != StateEnded {
		g.transitionToState(StateEnded)
		g.Process()
	}
	g.wasProcessed = false
	g.transitionToState(StatePossible)
	g.lastEvent = nil
	g.behavior.onReset()
}

// SetLayer attaches (or, with nil, detaches) the recognizer's owning layer.
func (g *GestureRecognizer) SetLayer(l *Layer) { g.Layer = l }

// OnStarted is invoked by the dispatcher's arbitration exactly once, when it
// allows this recognizer to begin.
func (g *GestureRecognizer) OnStarted() { g.behavior.onStarted() }

// noOpStarted is embedded by recognizer subtypes that have nothing special
// to do when arbitration lets them begin (the default virtual behavior).
type noOpStarted struct{}

func (noOpStarted) onStarted() {}
