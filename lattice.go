package axial

import "math"

// Enclose returns the smallest rectangle containing every rect in rects:
// the join, least upper bound, or minimal bounding box. Empty rectangles
// are identity elements and are skipped; with no non-empty input the result
// is the empty rectangle. If any input is the plane, its infinite
// coordinates dominate the reduction and the result is the plane.
func Enclose(rects ...Rect) Rect {
	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)

	any := false
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		any = true
		left = math.Min(left, r[x0])
		top = math.Min(top, r[y0])
		right = math.Max(right, r[x1])
		bottom = math.Max(bottom, r[y1])
	}
	if !any {
		return Empty()
	}
	return canon(left, top, right, bottom)
}

// Overlap returns the largest rectangle contained in every rect in rects:
// the meet, greatest lower bound, or common intersection. The accumulator
// is seeded with the plane, the identity element, so Overlap() of nothing
// is the plane (while Enclose() of nothing is the empty rectangle; the
// asymmetry is the point, not an oversight). Any empty input makes the
// result empty, as does a set of rects with no common point.
func Overlap(rects ...Rect) Rect {
	left, top := math.Inf(-1), math.Inf(-1)
	right, bottom := math.Inf(1), math.Inf(1)

	for _, r := range rects {
		if r.IsEmpty() {
			return Empty()
		}
		left = math.Max(left, r[x0])
		top = math.Max(top, r[y0])
		right = math.Min(right, r[x1])
		bottom = math.Min(bottom, r[y1])
	}
	return canon(left, top, right, bottom)
}

// Join is the binary form of Enclose.
func (r Rect) Join(other Rect) Rect {
	return Enclose(r, other)
}

// Meet is the binary form of Overlap.
func (r Rect) Meet(other Rect) Rect {
	return Overlap(r, other)
}

// Le reports whether other contains r. It holds exactly when the meet of
// the two rectangles is r itself.
func (r Rect) Le(other Rect) bool {
	return Overlap(r, other).Equal(r)
}

// Ge reports whether r contains other. It holds exactly when the join of
// the two rectangles is r itself.
func (r Rect) Ge(other Rect) bool {
	return Enclose(r, other).Equal(r)
}

// Lt reports whether other contains, but does not equal, r.
func (r Rect) Lt(other Rect) bool {
	return !r.Equal(other) && r.Le(other)
}

// Gt reports whether r contains, but does not equal, other.
func (r Rect) Gt(other Rect) bool {
	return !r.Equal(other) && r.Ge(other)
}
