package layerkit

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ILayer is the minimum shape any layer must satisfy to participate in the
// dispatcher's capture/update/draw cycle: tree links, hit testing,
// coordinate conversion, recognizer iteration, and drawing. *Layer is the
// only implementation this module provides.
type ILayer interface {
	hitTest(pointInParent Point) bool
	convertPointFromParent(p Point) Point
	convertPointToParent(p Point) Point
	convertPointToLayer(p Point, descendant *Layer) (Point, bool)
	GestureRecognizers() []*GestureRecognizer
	draw(dl *DisplayList, metrics *DrawMetrics)
}

var _ ILayer = (*Layer)(nil)

// --- Bitmap boundary ---

// ColorType enumerates the pixel layouts a bitmap may carry.
type ColorType int

const (
	ColorTypeUnknown ColorType = iota
	ColorTypeRGBA8888
	ColorTypeBGRA8888
	ColorTypeAlpha8
	ColorTypeGray8
	ColorTypeRGBAF16
	ColorTypeRGBAF32
)

// BytesPerPixel returns the storage width of one pixel in this format, or an
// error for ColorTypeUnknown or any unrecognized value.
func (c ColorType) BytesPerPixel() (int, error) {
	switch c {
	case ColorTypeAlpha8, ColorTypeGray8:
		return 1, nil
	case ColorTypeRGBA8888, ColorTypeBGRA8888:
		return 4, nil
	case ColorTypeRGBAF16:
		return 8, nil
	case ColorTypeRGBAF32:
		return 16, nil
	default:
		return 0, fmt.Errorf("layerkit: unknown color type %d has no defined pixel size", c)
	}
}

// AlphaType enumerates how a bitmap's alpha channel relates to its color
// channels.
type AlphaType int

const (
	AlphaTypeOpaque AlphaType = iota
	AlphaTypePremul
	AlphaTypeUnpremul
)

// BitmapInfo describes a bitmap's pixel format without owning its storage.
type BitmapInfo struct {
	Width, Height int
	ColorType     ColorType
	AlphaType     AlphaType
}

// IBitmap is a rectangular pixel buffer with scoped byte access. A real
// implementation backs LockBytes by pinning (or mapping) the pixel store for
// the duration of the callback and must tolerate UnlockBytes being called
// without a matching successful lock (a no-op).
type IBitmap interface {
	Info() BitmapInfo
	LockBytes(fn func(pixels []byte) error) error
	UnlockBytes()
}

// IBitmapFactory creates bitmaps of a requested format, returning a
// structured error (never panicking) if the combination of size and color
// type can't be allocated.
type IBitmapFactory interface {
	NewBitmap(info BitmapInfo) (IBitmap, error)
}

// ebitenBitmap is the reference IBitmap backed by an *ebiten.Image's pixel
// buffer, read via ebiten's own At/Set accessors rather than a raw mapped
// pointer (ebiten.Image does not expose one across all backends).
type ebitenBitmap struct {
	info  BitmapInfo
	image *ebiten.Image
}

// NewEbitenBitmapFactory returns an IBitmapFactory that allocates
// *ebiten.Image-backed bitmaps, restricted to RGBA8888/premultiplied, the
// only layout ebiten itself uses.
func NewEbitenBitmapFactory() IBitmapFactory { return ebitenBitmapFactory{} }

type ebitenBitmapFactory struct{}

func (ebitenBitmapFactory) NewBitmap(info BitmapInfo) (IBitmap, error) {
	if info.ColorType != ColorTypeRGBA8888 {
		return nil, fmt.Errorf("layerkit: ebiten bitmaps only support RGBA8888, got color type %d", info.ColorType)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("layerkit: invalid bitmap size %dx%d", info.Width, info.Height)
	}
	return &ebitenBitmap{info: info, image: ebiten.NewImage(info.Width, info.Height)}, nil
}

func (b *ebitenBitmap) Info() BitmapInfo { return b.info }

func (b *ebitenBitmap) LockBytes(fn func(pixels []byte) error) error {
	pixels := make([]byte, b.info.Width*b.info.Height*4)
	b.image.ReadPixels(pixels)
	if err := fn(pixels); err != nil {
		return fmt.Errorf("layerkit: bitmap pixel callback failed: %w", err)
	}
	b.image.WritePixels(pixels)
	return nil
}

func (b *ebitenBitmap) UnlockBytes() {}

// --- Display list / compositor boundary ---

// DrawMetrics accumulates counters produced by one draw() pass, consumed by
// the frame-slow diagnostic in LayerRoot.draw.
type DrawMetrics struct {
	VisitedLayers int
	DrawCacheMiss int
}

// displayOp is one recorded drawing instruction, closed over the transform
// in effect when it was recorded.
type displayOp func(target *ebiten.Image)

// DisplayList is the opaque-to-callers, concrete-to-this-module recording
// of one frame's drawing instructions, replayed against an *ebiten.Image by
// DrawInCanvas. A per-layer analogue of a per-sprite render command list.
type DisplayList struct {
	Size Size
	Time TimePoint

	transformStack []Matrix
	opacityStack   []Scalar
	ops            []displayOp
}

// NewDisplayList allocates an empty display list for one frame.
func NewDisplayList(size Size, time TimePoint) *DisplayList {
	return &DisplayList{
		Size:           size,
		Time:           time,
		transformStack: []Matrix{IdentityMatrix},
		opacityStack:   []Scalar{1},
	}
}

func (dl *DisplayList) currentTransform() Matrix { return dl.transformStack[len(dl.transformStack)-1] }
func (dl *DisplayList) currentOpacity() Scalar    { return dl.opacityStack[len(dl.opacityStack)-1] }

// PushLayer composes l's local transform and opacity onto the current
// stack top, for the duration of l's own drawing and its children's.
func (dl *DisplayList) PushLayer(l *Layer) {
	parent := dl.currentTransform()
	dl.transformStack = append(dl.transformStack, parent.Concat(l.localTransform()))
	dl.opacityStack = append(dl.opacityStack, dl.currentOpacity()*l.Opacity)
}

// PopLayer undoes the push made for l.
func (dl *DisplayList) PopLayer(l *Layer) {
	dl.transformStack = dl.transformStack[:len(dl.transformStack)-1]
	dl.opacityStack = dl.opacityStack[:len(dl.opacityStack)-1]
}

// geoMFromMatrix converts a layerkit Matrix into an ebiten.GeoM.
func geoMFromMatrix(m Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// DrawBackground records a solid-fill of l's bounds using l.BackgroundColor,
// scaling WhitePixel by a GeoM the same way a solid-color sprite would be
// drawn.
func (dl *DisplayList) DrawBackground(l *Layer) {
	transform := dl.currentTransform()
	opacity := dl.currentOpacity()
	c := l.BackgroundColor
	w, h := l.Frame.Width(), l.Frame.Height()
	dl.ops = append(dl.ops, func(target *ebiten.Image) {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(w, h)
		op.GeoM.Concat(geoMFromMatrix(transform))
		a := c.A * opacity
		op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
		target.DrawImage(WhitePixel, &op)
	})
}

// DrawBorder records a stroke of l's bounds using l.BorderWidth/BorderColor,
// approximated as four thin solid-fill rectangles (one per edge), the same
// per-edge rect approach used for nine-slice pieces.
func (dl *DisplayList) DrawBorder(l *Layer) {
	transform := dl.currentTransform()
	opacity := dl.currentOpacity()
	c := l.BorderColor
	bw := l.BorderWidth
	w, h := l.Frame.Width(), l.Frame.Height()
	edges := [4]Rect{
		{Left: 0, Top: 0, Right: w, Bottom: bw},
		{Left: 0, Top: h - bw, Right: w, Bottom: h},
		{Left: 0, Top: 0, Right: bw, Bottom: h},
		{Left: w - bw, Top: 0, Right: w, Bottom: h},
	}
	for _, edge := range edges {
		edge := edge
		dl.ops = append(dl.ops, func(target *ebiten.Image) {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(edge.Width(), edge.Height())
			op.GeoM.Translate(edge.Left, edge.Top)
			op.GeoM.Concat(geoMFromMatrix(transform))
			a := c.A * opacity
			op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
			target.DrawImage(WhitePixel, &op)
		})
	}
}

// DrawBoxShadow records a soft drop shadow beneath l, approximated (like
// DrawBackground) as an offset solid fill; a real compositor would blur it,
// but the blur kernel is a rendering-backend concern outside this module's
// boundary.
func (dl *DisplayList) DrawBoxShadow(l *Layer, shadow BoxShadow) {
	transform := dl.currentTransform()
	opacity := dl.currentOpacity()
	w, h := l.Frame.Width(), l.Frame.Height()
	c := shadow.Color
	dl.ops = append(dl.ops, func(target *ebiten.Image) {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(shadow.OffsetX, shadow.OffsetY)
		op.GeoM.Concat(geoMFromMatrix(transform))
		a := c.A * opacity
		op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
		target.DrawImage(WhitePixel, &op)
	})
}

// CompositorPlaneList partitions a DisplayList's operations into
// composition planes; callers treat it as opaque beyond carrying the count,
// produced and consumed internally rather than defined by the core. The
// reference Compositor below produces a single plane, since ebiten itself
// has no native plane-composition concept.
type CompositorPlaneList struct {
	PlaneCount int
}

// DrawableSurfaceCanvas is the host-owned destination surface a LayerRoot
// draws into. The reference implementation wraps an *ebiten.Image.
type DrawableSurfaceCanvas struct {
	Image *ebiten.Image
}

// NewDrawableSurfaceCanvas wraps an existing ebiten image as a canvas.
func NewDrawableSurfaceCanvas(img *ebiten.Image) *DrawableSurfaceCanvas {
	return &DrawableSurfaceCanvas{Image: img}
}

// Compositor replays a DisplayList's recorded operations onto a canvas,
// scaling to the canvas's own dimensions if they differ from the display
// list's recorded size.
type Compositor struct{}

// NewCompositor returns the reference single-plane compositor.
func NewCompositor() *Compositor { return &Compositor{} }

// Compose replays dl onto canvas, clearing first, and returns the
// (trivial, single-plane) plane list produced.
func (c *Compositor) Compose(dl *DisplayList, canvas *DrawableSurfaceCanvas) CompositorPlaneList {
	canvas.Image.Clear()
	bounds := canvas.Image.Bounds()
	sx, sy := 1.0, 1.0
	if dl.Size.Width > 0 && dl.Size.Height > 0 {
		sx = float64(bounds.Dx()) / dl.Size.Width
		sy = float64(bounds.Dy()) / dl.Size.Height
	}
	if sx == 1 && sy == 1 {
		for _, op := range dl.ops {
			op(canvas.Image)
		}
		return CompositorPlaneList{PlaneCount: 1}
	}
	layer := ebiten.NewImage(int(dl.Size.Width), int(dl.Size.Height))
	for _, op := range dl.ops {
		op(layer)
	}
	var scaleOp ebiten.DrawImageOptions
	scaleOp.GeoM.Scale(sx, sy)
	canvas.Image.DrawImage(layer, &scaleOp)
	return CompositorPlaneList{PlaneCount: 1}
}

// --- Font boundary ---

// FontWidth, FontWeight, and FontSlant are the symbolic style enums the core
// depends on when scoring typeface candidates; the glyph rasterization and
// shaping they ultimately select is entirely the host's concern.
type FontWidth int

// FontWeight follows the common 100-900 numeric scale (Thin=100 ... Black=900).
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// ExtraBlack is the slant-mismatch penalty unit referenced by ScoreFontMatch.
const ExtraBlack FontWeight = 1000

type FontSlant int

const (
	FontSlantUpright FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// TypefaceDescriptor is one candidate or desired style tuple used by
// ScoreFontMatch.
type TypefaceDescriptor struct {
	Width  FontWidth
	Weight FontWeight
	Slant  FontSlant
}

// ScoreFontMatch scores a candidate typeface against a desired style: the
// raw weight delta, plus an ±(ExtraBlack+1) penalty in the same sign direction when
// slants differ. Candidates are ranked by minimizing |score|, ties broken by
// preferring the lower (lighter) score.
func ScoreFontMatch(candidate, desired TypefaceDescriptor) int {
	score := int(candidate.Weight) - int(desired.Weight)
	if candidate.Slant != desired.Slant {
		penalty := int(ExtraBlack) + 1
		if score < 0 {
			penalty = -penalty
		}
		score += penalty
	}
	return score
}

// IFontManager looks up typefaces by family and style, falling back to a
// registry-wide search by character when the requested family lacks
// coverage for it.
type IFontManager interface {
	Lookup(family string, desired TypefaceDescriptor) (TypefaceRegistryEntry, error)
	FallbackForRune(r rune, desired TypefaceDescriptor) (TypefaceRegistryEntry, error)
}

// TypefaceRegistryEntry is the opaque result of a font lookup: enough to
// identify the selected face, not its glyph data.
type TypefaceRegistryEntry struct {
	Family string
	Style  TypefaceDescriptor
}

// TypefaceRegistry holds the known typefaces a FontManager scores against.
type TypefaceRegistry struct {
	entries map[string][]TypefaceRegistryEntry
}

// NewTypefaceRegistry returns an empty registry.
func NewTypefaceRegistry() *TypefaceRegistry {
	return &TypefaceRegistry{entries: make(map[string][]TypefaceRegistryEntry)}
}

// Register adds a typeface under the given family name.
func (r *TypefaceRegistry) Register(family string, style TypefaceDescriptor) {
	r.entries[family] = append(r.entries[family], TypefaceRegistryEntry{Family: family, Style: style})
}

// FontManager is the reference IFontManager backed by a TypefaceRegistry and
// ScoreFontMatch.
type FontManager struct {
	registry *TypefaceRegistry
}

// NewFontManager builds a font manager over the given registry.
func NewFontManager(registry *TypefaceRegistry) *FontManager {
	return &FontManager{registry: registry}
}

func (m *FontManager) Lookup(family string, desired TypefaceDescriptor) (TypefaceRegistryEntry, error) {
	candidates := m.registry.entries[family]
	if len(candidates) == 0 {
		return TypefaceRegistryEntry{}, fmt.Errorf("layerkit: no typefaces registered for family %q", family)
	}
	return bestMatch(candidates, desired), nil
}

func (m *FontManager) FallbackForRune(r rune, desired TypefaceDescriptor) (TypefaceRegistryEntry, error) {
	var all []TypefaceRegistryEntry
	for _, entries := range m.registry.entries {
		all = append(all, entries...)
	}
	if len(all) == 0 {
		return TypefaceRegistryEntry{}, fmt.Errorf("layerkit: typeface registry is empty, no fallback available for %q", r)
	}
	return bestMatch(all, desired), nil
}

func bestMatch(candidates []TypefaceRegistryEntry, desired TypefaceDescriptor) TypefaceRegistryEntry {
	best := candidates[0]
	bestScore := ScoreFontMatch(best.Style, desired)
	for _, c := range candidates[1:] {
		s := ScoreFontMatch(c.Style, desired)
		if abs(s) < abs(bestScore) || (abs(s) == abs(bestScore) && s < bestScore) {
			best = c
			bestScore = s
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
