// Package axial provides an algebraic treatment of axis-aligned rectangles.
//
// A Rect together with Enclose (join) and Overlap (meet) and the two
// identity elements Empty() and Plane() forms a complete lattice: for all
// rects a, b and c, join and meet are idempotent, commutative, associative,
// and satisfy the absorption law; Empty() is the least element and Plane()
// the greatest. Distributivity and modularity do NOT hold and must not be
// assumed.
//
// The package also partitions collections of rectangles into maximal sets
// of transitively overlapping rectangles (connected components under the
// overlap relation) and reduces each set to its bounding box. See
// Partitions and BoundingBoxes.
package axial

import (
	"errors"
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Coordinate positions within a Rect.
const (
	x0 = iota // left
	y0        // top
	x1        // right
	y1        // bottom
)

// ErrBox indicates that a candidate box had a length other than 0 or 4.
var ErrBox = errors.New("axial: box must contain zero or four coordinates")

// Rect is an axis-aligned rectangle stored as the quadruple (left, top,
// right, bottom), with coordinates increasing from left to right and from
// top to bottom. The zero-length Rect is the canonical empty rectangle.
//
// Rects are value types: no method mutates its receiver. A non-empty Rect
// always satisfies left <= right and top <= bottom; zero width or height is
// permitted. Coordinate accessors on the empty rectangle panic with an
// index-out-of-range error, since it carries no coordinates.
type Rect []float64

// New builds a Rect from zero or four coordinates (left, top, right,
// bottom). Zero coordinates produce the empty rectangle. Four coordinates
// with left > right or top > bottom also collapse to the empty rectangle;
// that is a normalization, not an error. Any other number of coordinates
// returns ErrBox.
func New(box ...float64) (Rect, error) {
	switch len(box) {
	case 0:
		return Empty(), nil
	case 4:
		return canon(box[x0], box[y0], box[x1], box[y1]), nil
	default:
		return nil, pfx.Err(ErrBox)
	}
}

// FromPoints builds the Rect spanning the (left, top) and (right, bottom)
// corner points.
func FromPoints(leftTop, rightBottom [2]float64) Rect {
	return canon(leftTop[0], leftTop[1], rightBottom[0], rightBottom[1])
}

// FromSize builds the Rect (0, 0, width, height).
func FromSize(width, height float64) Rect {
	return canon(0, 0, width, height)
}

// Empty returns the empty rectangle, the least element of the lattice. It
// is the identity element of Enclose and the absorbing element of Overlap.
func Empty() Rect {
	return Rect{}
}

// Plane returns the rectangle covering the whole plane, the greatest
// element of the lattice. It is the identity element of Overlap and the
// absorbing element of Enclose.
func Plane() Rect {
	inf := math.Inf(1)
	return Rect{-inf, -inf, inf, inf}
}

// canon applies the construction rule: keep a well-ordered quadruple,
// collapse an inverted one to the empty rectangle.
func canon(left, top, right, bottom float64) Rect {
	if left <= right && top <= bottom {
		return Rect{left, top, right, bottom}
	}
	return Empty()
}

// IsEmpty reports whether r is the empty rectangle.
func (r Rect) IsEmpty() bool {
	return len(r) == 0
}

// Equal reports whether r and other hold the same coordinates. A Rect
// compares equal to any zero- or four-element float sequence with matching
// values, so raw coordinate slices interoperate freely.
func (r Rect) Equal(other []float64) bool {
	if len(r) != len(other) {
		return false
	}
	for i, v := range r {
		if v != other[i] {
			return false
		}
	}
	return true
}

func (r Rect) Left() float64   { return r[x0] }
func (r Rect) Top() float64    { return r[y0] }
func (r Rect) Right() float64  { return r[x1] }
func (r Rect) Bottom() float64 { return r[y1] }

func (r Rect) LeftTop() [2]float64     { return [2]float64{r[x0], r[y0]} }
func (r Rect) RightTop() [2]float64    { return [2]float64{r[x1], r[y0]} }
func (r Rect) LeftBottom() [2]float64  { return [2]float64{r[x0], r[y1]} }
func (r Rect) RightBottom() [2]float64 { return [2]float64{r[x1], r[y1]} }

// Points returns the (left, top) and (right, bottom) corner points.
func (r Rect) Points() ([2]float64, [2]float64) {
	return r.LeftTop(), r.RightBottom()
}

// Horizontal returns the rectangle's extent along the x axis.
func (r Rect) Horizontal() (left, right float64) {
	return r[x0], r[x1]
}

// Vertical returns the rectangle's extent along the y axis.
func (r Rect) Vertical() (top, bottom float64) {
	return r[y0], r[y1]
}

func (r Rect) Width() float64  { return r[x1] - r[x0] }
func (r Rect) Height() float64 { return r[y1] - r[y0] }

// Size returns the width and height of the rectangle.
func (r Rect) Size() (width, height float64) {
	return r.Width(), r.Height()
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Mul returns the rectangle with all coordinates multiplied by scalar. A
// negative scalar inverts the coordinate order and therefore collapses any
// non-degenerate rectangle to the empty rectangle. The empty rectangle
// stays empty.
func (r Rect) Mul(scalar float64) Rect {
	if r.IsEmpty() {
		return Empty()
	}
	return canon(r[x0]*scalar, r[y0]*scalar, r[x1]*scalar, r[y1]*scalar)
}

// Move returns the rectangle translated by (dx, dy). The empty rectangle
// has no coordinates to shift and the plane's infinities absorb any finite
// offset, so both are fixed points.
func (r Rect) Move(dx, dy float64) Rect {
	if r.IsEmpty() {
		return Empty()
	}
	return Rect{r[x0] + dx, r[y0] + dy, r[x1] + dx, r[y1] + dy}
}

func (r Rect) String() string {
	if r.IsEmpty() {
		return "Rect()"
	}
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r[x0], r[y0], r[x1], r[y1])
}
