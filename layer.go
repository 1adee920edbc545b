package layerkit

import "reflect"

// Layer ids come from LayerRoot.layerIDSequence, a plain counter (no atomic —
// layerkit is single-threaded); LayerRoot exposes it through AllocateLayerID
// so ids are unique only within one root's lifetime.

// ParentChangeListener is notified when a layer gains or loses a parent.
type ParentChangeListener func(layer *Layer, oldParent, newParent *Layer)

// BoxShadow describes a simple drop shadow; opaque to the core beyond being
// carried and handed to the compositor at draw time.
type BoxShadow struct {
	OffsetX, OffsetY Scalar
	BlurRadius       Scalar
	Color            Color
}

// Layer is the fundamental node of the retained scene graph hit-tested and
// driven by LayerRoot's frame loop. A single flat struct is used for every
// layer rather than an interface hierarchy, to avoid dispatch on the hot
// path; the transform has no skew term, unlike a general sprite transform.
type Layer struct {
	id uint64

	Parent   *Layer // weak: never keeps this layer alive
	children []*Layer

	// Frame is this layer's bounding box in its parent's local space, before
	// TranslationX/Y is applied. Width/Height come from Frame; Left/Top is
	// the layout position, distinct from the transform offset below.
	Frame Rect

	TranslationX, TranslationY Scalar
	ScaleX, ScaleY             Scalar
	Rotation                   Scalar
	AnchorX, AnchorY           Scalar

	Visible       bool
	ClipsToBounds bool
	Opacity       Scalar

	BackgroundColor Color
	BorderRadius    Scalar
	BoxShadow       *BoxShadow
	BorderWidth     Scalar
	BorderColor     Color

	MaskLayer *Layer

	TouchEnabled bool
	// TouchAreaExtensionLeft/Top/Right/Bottom inset the hit-test bounds
	// independently of Frame (negative values shrink, positive values grow).
	TouchAreaExtensionLeft, TouchAreaExtensionTop       Scalar
	TouchAreaExtensionRight, TouchAreaExtensionBottom   Scalar

	AccessibilityID string

	recognizers []*GestureRecognizer

	OnParentChanged ParentChangeListener

	needsLayout bool

	// LayoutHandler, if set, is invoked by layoutIfNeeded after the frame is
	// applied, mirroring the content-driven layout hosts install on their
	// root content layer.
	LayoutHandler func(l *Layer)
	// SizeThatFitsHandler, if set, backs sizeThatFits; a layer with no
	// intrinsic content (the common case) returns maxSize unchanged.
	SizeThatFitsHandler func(maxSize Size) Size
	// DrawHandler, if set, is invoked by draw to paint this layer's own
	// content (background/border/shadow are painted by the core regardless).
	DrawHandler func(l *Layer, dl *DisplayList)
}

// NewLayer returns a layer with the documented defaults: visible, opaque,
// unit scale, touch-enabled.
func NewLayer() *Layer {
	return &Layer{
		Visible:      true,
		Opacity:      1,
		ScaleX:       1,
		ScaleY:       1,
		TouchEnabled: true,
	}
}

// ID returns the layer's stable, root-allocated identifier (zero until
// allocated by a LayerRoot).
func (l *Layer) ID() uint64 { return l.id }

// --- Tree operations ---

func isLayerAncestor(candidate, of *Layer) bool {
	for n := of; n != nil; n = n.Parent {
		if n == candidate {
			return true
		}
	}
	return false
}

// AddChild appends child as this layer's new topmost child, detaching it
// from any previous parent first. Panics on a nil child or a cycle.
func (l *Layer) AddChild(child *Layer) {
	if child == nil {
		panic("layerkit: cannot add nil child")
	}
	if isLayerAncestor(child, l) {
		panic("layerkit: adding child would create a cycle")
	}
	l.adopt(child, len(l.children))
}

// AddChildAt inserts child at the given index. Same reparenting and
// cycle-check behavior as AddChild.
func (l *Layer) AddChildAt(child *Layer, index int) {
	if child == nil {
		panic("layerkit: cannot add nil child")
	}
	if isLayerAncestor(child, l) {
		panic("layerkit: adding child would create a cycle")
	}
	if index < 0 || index > len(l.children) {
		panic("layerkit: child index out of range")
	}
	l.adopt(child, index)
}

func (l *Layer) adopt(child *Layer, index int) {
	oldParent := child.Parent
	if oldParent != nil {
		oldParent.removeChildByPtr(child)
	}
	child.Parent = l
	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = child
	if child.OnParentChanged != nil {
		child.OnParentChanged(child, oldParent, l)
	}
}

// RemoveChild detaches child from this layer. Panics if child.Parent != l.
func (l *Layer) RemoveChild(child *Layer) {
	if child.Parent != l {
		panic("layerkit: child's parent is not this layer")
	}
	l.removeChildByPtr(child)
	child.Parent = nil
	if child.OnParentChanged != nil {
		child.OnParentChanged(child, l, nil)
	}
}

// RemoveFromParent detaches this layer from its parent. No-op if it has
// none.
func (l *Layer) RemoveFromParent() {
	if l.Parent == nil {
		return
	}
	l.Parent.RemoveChild(l)
}

func (l *Layer) removeChildByPtr(child *Layer) {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			return
		}
	}
}

// Children returns the layer's children, ordered bottom-to-top (last is
// topmost). The returned slice must not be mutated by the caller.
func (l *Layer) Children() []*Layer { return l.children }

// NumChildren returns the number of direct children.
func (l *Layer) NumChildren() int { return len(l.children) }

// ChildAt returns the child at index (0 = bottommost).
func (l *Layer) ChildAt(index int) *Layer { return l.children[index] }

// --- Gesture recognizers ---

// AddGestureRecognizer attaches r to this layer, setting its weak owning
// link.
func (l *Layer) AddGestureRecognizer(r *GestureRecognizer) {
	l.recognizers = append(l.recognizers, r)
	r.SetLayer(l)
}

// RemoveGestureRecognizer detaches r from this layer, if present.
func (l *Layer) RemoveGestureRecognizer(r *GestureRecognizer) {
	for i, existing := range l.recognizers {
		if existing == r {
			copy(l.recognizers[i:], l.recognizers[i+1:])
			l.recognizers[len(l.recognizers)-1] = nil
			l.recognizers = l.recognizers[:len(l.recognizers)-1]
			r.SetLayer(nil)
			return
		}
	}
}

// GestureRecognizers returns the layer's attached recognizers in attachment
// order.
func (l *Layer) GestureRecognizers() []*GestureRecognizer { return l.recognizers }

// IndexOfGestureRecognizerOfType returns the index of the first attached
// recognizer whose behavior has the given concrete type (passed as a
// pointer, e.g. (*TapRecognizer)(nil)), or -1 if none matches.
func (l *Layer) IndexOfGestureRecognizerOfType(sample any) int {
	want := reflect.TypeOf(sample)
	for i, r := range l.recognizers {
		if reflect.TypeOf(r.behavior) == want {
			return i
		}
	}
	return -1
}

// --- Transform & coordinate conversion ---

// localTransform returns the affine matrix mapping this layer's local
// coordinates to its parent's, composed as
// Translate(-anchor) -> Scale -> Rotate -> Translate(anchor + frame origin + translation).
func (l *Layer) localTransform() Matrix {
	return ScaleTranslateRotate(
		l.Frame.Left+l.TranslationX,
		l.Frame.Top+l.TranslationY,
		l.ScaleX, l.ScaleY,
		l.Rotation,
		l.AnchorX, l.AnchorY,
	)
}

// convertPointFromParent maps a point in the parent's local space into this
// layer's own local space.
func (l *Layer) convertPointFromParent(p Point) Point {
	return l.localTransform().Inverse().Apply(p)
}

// convertPointToParent maps a point in this layer's local space into the
// parent's.
func (l *Layer) convertPointToParent(p Point) Point {
	return l.localTransform().Apply(p)
}

// convertPointToLayer maps p, given in l's local space, into descendant's
// local space by composing the local transforms along the path from l down
// to descendant. Returns ok=false if descendant is not reachable from l.
func (l *Layer) convertPointToLayer(p Point, descendant *Layer) (Point, bool) {
	if descendant == l {
		return p, true
	}
	path := make([]*Layer, 0, 8)
	for n := descendant; n != nil && n != l; n = n.Parent {
		path = append(path, n)
	}
	if len(path) == 0 || path[len(path)-1].Parent != l {
		return Point{}, false
	}
	pt := p
	for i := len(path) - 1; i >= 0; i-- {
		pt = path[i].convertPointFromParent(pt)
	}
	return pt, true
}

// visualFrame is this layer's Frame as seen in its parent's space after
// applying its own transform to each corner's bounding box; used by hosts
// wanting a rough on-screen extent. The hit-test path below doesn't use
// this — it works directly in local space instead.
func (l *Layer) visualFrame() Rect {
	local := Rect{Left: 0, Top: 0, Right: l.Frame.Width(), Bottom: l.Frame.Height()}
	t := l.localTransform()
	corners := [4]Point{
		{X: local.Left, Y: local.Top}, {X: local.Right, Y: local.Top},
		{X: local.Left, Y: local.Bottom}, {X: local.Right, Y: local.Bottom},
	}
	r := Rect{Left: t.Apply(corners[0]).X, Top: t.Apply(corners[0]).Y, Right: t.Apply(corners[0]).X, Bottom: t.Apply(corners[0]).Y}
	for _, c := range corners[1:] {
		p := t.Apply(c)
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}
	return r
}

// hitTest reports whether pointInParent, given in this layer's parent's
// local space, falls within this layer's touch bounds. Invisible or
// touch-disabled layers never hit.
func (l *Layer) hitTest(pointInParent Point) bool {
	if !l.Visible || !l.TouchEnabled {
		return false
	}
	local := l.convertPointFromParent(pointInParent)
	bounds := Rect{Left: 0, Top: 0, Right: l.Frame.Width(), Bottom: l.Frame.Height()}
	bounds = bounds.Inset(l.TouchAreaExtensionLeft, l.TouchAreaExtensionTop, l.TouchAreaExtensionRight, l.TouchAreaExtensionBottom)
	return bounds.Contains(local)
}

// sizeThatFits asks the layer what size it would choose given a maximum, for
// content-driven sizing (LayerRoot.SizingMode = MinSize). Layers with no
// SizeThatFitsHandler simply accept the maximum.
func (l *Layer) sizeThatFits(maxSize Size) Size {
	if l.SizeThatFitsHandler != nil {
		return l.SizeThatFitsHandler(maxSize)
	}
	return maxSize
}

// setFrame assigns a new frame, marking layout dirty if the size changed.
func (l *Layer) setFrame(r Rect) {
	sizeChanged := r.Width() != l.Frame.Width() || r.Height() != l.Frame.Height()
	l.Frame = r
	if sizeChanged {
		l.needsLayout = true
	}
}

// layoutIfNeeded resolves pending layout: if needsLayout is set, it clears
// the flag and invokes LayoutHandler (if any), then recurses into children.
func (l *Layer) layoutIfNeeded() {
	if l.needsLayout {
		l.needsLayout = false
		if l.LayoutHandler != nil {
			l.LayoutHandler(l)
		}
	}
	for _, child := range l.children {
		child.layoutIfNeeded()
	}
}

// MarkNeedsLayout flags this layer for re-layout on the next
// layoutIfNeeded pass.
func (l *Layer) MarkNeedsLayout() { l.needsLayout = true }

// --- Drawing ---

// draw paints this layer and its visible children into dl, in the order
// box shadow -> background -> DrawHandler content -> border -> children
// (bottom-to-top), updating metrics as it goes. Invisible or fully
// transparent layers and their entire subtrees are skipped.
func (l *Layer) draw(dl *DisplayList, metrics *DrawMetrics) {
	if !l.Visible || l.Opacity <= 0 {
		return
	}
	metrics.VisitedLayers++
	dl.PushLayer(l)
	if l.BoxShadow != nil {
		dl.DrawBoxShadow(l, *l.BoxShadow)
	}
	if l.BackgroundColor.A > 0 || l.BorderRadius > 0 {
		dl.DrawBackground(l)
	}
	if l.DrawHandler != nil {
		l.DrawHandler(l, dl)
	}
	if l.BorderWidth > 0 {
		dl.DrawBorder(l)
	}
	for _, child := range l.children {
		child.draw(dl, metrics)
	}
	dl.PopLayer(l)
}

