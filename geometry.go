package layerkit

import "math"

// Scalar is a real number used throughout the runtime for coordinates,
// lengths, and angles.
type Scalar = float64

// sanitizeScalar rounds v to the nearest multiple of 1/scale, matching the
// pixel grid of a root whose device pixel ratio is scale. When scale <= 0
// this is the identity function (undefined pixel ratio means "don't snap").
func sanitizeScalar(v, scale Scalar) Scalar {
	if scale <= 0 {
		return v
	}
	return math.Round(v*scale) / scale
}

// Point is a 2D coordinate.
type Point struct {
	X, Y Scalar
}

// Size is a 2D extent.
type Size struct {
	Width, Height Scalar
}

// Vector is a 2D displacement or direction.
type Vector struct {
	DX, DY Scalar
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() Scalar {
	return math.Hypot(v.DX, v.DY)
}

// Sub returns a - b.
func (a Point) Sub(b Point) Vector {
	return Vector{DX: a.X - b.X, DY: a.Y - b.Y}
}

// Rect is an axis-aligned rectangle with independent edges, matching the
// left/top/right/bottom shape used by the layer tree's frame fields.
type Rect struct {
	Left, Top, Right, Bottom Scalar
}

// RectFromLTWH builds a Rect from a top-left origin and a size.
func RectFromLTWH(left, top, width, height Scalar) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the rectangle's width.
func (r Rect) Width() Scalar { return r.Right - r.Left }

// Height returns the rectangle's height.
func (r Rect) Height() Scalar { return r.Bottom - r.Top }

// Contains reports whether p lies within the rectangle, edges inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Inset returns a copy of r with each edge moved outward (or inward, for
// negative values) by the given amounts. Used for touchAreaExtension.
func (r Rect) Inset(left, top, right, bottom Scalar) Rect {
	return Rect{
		Left:   r.Left - left,
		Top:    r.Top - top,
		Right:  r.Right + right,
		Bottom: r.Bottom + bottom,
	}
}

// Range is an inclusive scalar interval, used for sizing constraints.
type Range struct {
	Min, Max Scalar
}

// Matrix is an affine 2D transform stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]Scalar

// IdentityMatrix is the affine identity transform.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Concat returns p * c, i.e. c applied first, then p.
func (p Matrix) Concat(c Matrix) Matrix {
	return Matrix{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Inverse returns the inverse of m, or the identity matrix if m is singular
// (determinant within 1e-12 of zero).
func (m Matrix) Inverse() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms p by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ScaleTranslateRotate builds the local affine transform for a layer from its
// translation, scale, and rotation (about the given anchor point), using a
// pivot->scale->rotate->translate composition order and no skew term, which
// layers don't expose.
//
//	Translate(-anchor) -> Scale -> Rotate -> Translate(translation + anchor)
func ScaleTranslateRotate(tx, ty, sx, sy, rotation, anchorX, anchorY Scalar) Matrix {
	sin, cos := math.Sincos(rotation)

	a := sx
	d := sy
	preTx := -anchorX * sx
	preTy := -anchorY * sy

	ra := cos * a
	rb := sin * a
	rc := -sin * d
	rd := cos * d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return Matrix{ra, rb, rc, rd, rtx + tx + anchorX, rty + ty + anchorY}
}
