// Package interval implements an augmented red-black interval tree over
// closed float64 intervals, following the red-black tree of "Introduction
// to Algorithms" (Cormen et al, 3rd ed.), chapters 13 and 14.3. Each stored
// interval carries an opaque payload so that callers can map query hits
// back to their owning objects.
//
// A Tree is not safe for concurrent use; callers that need concurrency
// must give each goroutine its own Tree.
package interval

import "math"

// Interval is a closed interval [Begin, End]. Infinite endpoints are legal.
type Interval struct {
	Begin, End float64
}

// Overlaps reports whether ivl and other share at least one point. Both
// endpoints are inclusive, so touching intervals overlap.
func (ivl Interval) Overlaps(other Interval) bool {
	return ivl.Begin <= other.End && other.Begin <= ivl.End
}

// cmp gives -1 if ivl lies entirely left of other, 1 if entirely right,
// and 0 if the two intervals overlap.
func (ivl Interval) cmp(other Interval) int {
	if ivl.End < other.Begin {
		return -1
	}
	if ivl.Begin > other.End {
		return 1
	}
	return 0
}

// Value is an interval together with its payload.
type Value struct {
	Ivl     Interval
	Payload interface{}
}

type rbcolor int

const (
	black rbcolor = iota
	red
)

type node struct {
	val Value

	// max is the greatest End among this node and its descendants.
	max float64

	// left and right are sorted by the Begin endpoint.
	left, right *node
	parent      *node
	c           rbcolor
}

func (x *node) color() rbcolor {
	if x == nil {
		return black
	}
	return x.c
}

func (x *node) height(sentinel *node) int {
	if x == sentinel {
		return 0
	}
	ld := x.left.height(sentinel)
	rd := x.right.height(sentinel)
	if ld < rd {
		return rd + 1
	}
	return ld + 1
}

// updateMax recomputes the max endpoint for a node and its ancestors.
func (x *node) updateMax(sentinel *node) {
	for x != sentinel {
		oldmax := x.max
		max := x.val.Ivl.End
		if x.left != sentinel && x.left.max > max {
			max = x.left.max
		}
		if x.right != sentinel && x.right.max > max {
			max = x.right.max
		}
		if oldmax == max {
			break
		}
		x.max = max
		x = x.parent
	}
}

// visit calls nv on each node whose interval overlaps ivl, in ascending
// Begin order, stopping early if nv returns false.
func (x *node) visit(ivl Interval, sentinel *node, nv func(*node) bool) bool {
	if x == sentinel {
		return true
	}

	switch v := ivl.cmp(x.val.Ivl); {
	case v < 0:
		if !x.left.visit(ivl, sentinel, nv) {
			return false
		}
	case v > 0:
		// The query starts right of this node's interval, but a left or
		// right descendant may still reach it.
		maxiv := Interval{x.val.Ivl.Begin, x.max}
		if maxiv.cmp(ivl) == 0 {
			if !x.left.visit(ivl, sentinel, nv) || !x.right.visit(ivl, sentinel, nv) {
				return false
			}
		}
	default:
		if !x.left.visit(ivl, sentinel, nv) || !nv(x) || !x.right.visit(ivl, sentinel, nv) {
			return false
		}
	}
	return true
}

// Tree is an augmented red-black interval tree.
type Tree struct {
	root  *node
	count int

	// sentinel stands in for every nil leaf and for the root's parent,
	// which simplifies the boundary conditions of the CLRS algorithms.
	sentinel *node
}

// New returns a tree holding the given entries.
func New(entries ...Value) *Tree {
	sentinel := &node{c: black, max: math.Inf(-1)}
	sentinel.left = sentinel
	sentinel.right = sentinel
	t := &Tree{root: sentinel, sentinel: sentinel}
	for _, e := range entries {
		t.Insert(e.Ivl, e.Payload)
	}
	return t
}

// Len gives the number of entries in the tree.
func (t *Tree) Len() int { return t.count }

// Height is the number of levels in the tree; one node has height 1.
func (t *Tree) Height() int { return t.root.height(t.sentinel) }

// Insert adds an entry with the given interval and payload to the tree.
// Duplicate intervals are allowed.
func (t *Tree) Insert(ivl Interval, payload interface{}) {
	z := &node{
		val:    Value{ivl, payload},
		max:    ivl.End,
		c:      red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: t.sentinel,
	}

	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		if z.val.Ivl.Begin < x.val.Ivl.Begin {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if y == t.sentinel {
		t.root = z
	} else {
		if z.val.Ivl.Begin < y.val.Ivl.Begin {
			y.left = z
		} else {
			y.right = z
		}
		y.updateMax(t.sentinel)
	}

	t.insertFixup(z)
	t.count++
}

func (t *Tree) insertFixup(z *node) {
	for z.parent.color() == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color() == red {
				y.c = black
				z.parent.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			// mirror image of the branch above
			y := z.parent.parent.left
			if y.color() == red {
				y.c = black
				z.parent.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.c = black
}

// Delete removes the entry matching both the interval and the payload,
// reporting whether such an entry was found. Payloads are compared with ==.
func (t *Tree) Delete(ivl Interval, payload interface{}) bool {
	z := t.find(ivl, payload)
	if z == nil {
		return false
	}

	y := z
	yOriginalColor := y.color()

	var x *node
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
		x.parent.updateMax(t.sentinel)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
		x.parent.updateMax(t.sentinel)
	default:
		y = t.min(z.right)
		yOriginalColor = y.color()
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.c = z.color()

		// Refresh the vacated position first, then y itself: y adopted
		// z's children, and until y.max is rebuilt from them the ancestor
		// walk's early break cannot be trusted to reach it.
		x.parent.updateMax(t.sentinel)
		y.updateMax(t.sentinel)
	}

	if yOriginalColor == black {
		t.deleteFixup(x)
	}

	t.count--
	return true
}

func (t *Tree) transplant(u, v *node) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree) min(x *node) *node {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Tree) deleteFixup(x *node) {
	for x != t.root && x.color() == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color() == red {
				w.c = black
				x.parent.c = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w == t.sentinel {
				break
			}
			if w.left.color() == black && w.right.color() == black {
				w.c = red
				x = x.parent
			} else {
				if w.right.color() == black {
					w.left.c = black
					w.c = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.c = x.parent.color()
				x.parent.c = black
				w.right.c = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			// mirror image of the branch above
			w := x.parent.left
			if w.color() == red {
				w.c = black
				x.parent.c = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w == t.sentinel {
				break
			}
			if w.left.color() == black && w.right.color() == black {
				w.c = red
				x = x.parent
			} else {
				if w.left.color() == black {
					w.right.c = black
					w.c = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.c = x.parent.color()
				x.parent.c = black
				w.left.c = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.c = black
}

// rotateLeft moves x so it is left of its right child.
func (t *Tree) rotateLeft(x *node) {
	if x == t.sentinel {
		return
	}

	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	x.updateMax(t.sentinel)

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else {
		if x == x.parent.left {
			x.parent.left = y
		} else {
			x.parent.right = y
		}
		x.parent.updateMax(t.sentinel)
	}

	y.left = x
	x.parent = y
	y.updateMax(t.sentinel)
}

// rotateRight moves x so it is right of its left child.
func (t *Tree) rotateRight(x *node) {
	if x == t.sentinel {
		return
	}

	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}
	x.updateMax(t.sentinel)

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else {
		if x == x.parent.right {
			x.parent.right = y
		} else {
			x.parent.left = y
		}
		x.parent.updateMax(t.sentinel)
	}

	y.right = x
	x.parent = y
	y.updateMax(t.sentinel)
}

// find locates the node matching both interval and payload.
func (t *Tree) find(ivl Interval, payload interface{}) *node {
	var ret *node
	t.root.visit(ivl, t.sentinel, func(n *node) bool {
		if n.val.Ivl == ivl && n.val.Payload == payload {
			ret = n
			return false
		}
		return true
	})
	return ret
}

// Visit calls v on every entry whose interval overlaps ivl, in ascending
// Begin order, stopping early if v returns false.
func (t *Tree) Visit(ivl Interval, v func(Value) bool) {
	t.root.visit(ivl, t.sentinel, func(n *node) bool { return v(n.val) })
}

// Search returns all entries whose intervals overlap ivl.
func (t *Tree) Search(ivl Interval) []Value {
	if t.count == 0 {
		return nil
	}
	var out []Value
	t.Visit(ivl, func(v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Intersects reports whether any stored interval overlaps ivl.
func (t *Tree) Intersects(ivl Interval) bool {
	x := t.root
	for x != t.sentinel && ivl.cmp(x.val.Ivl) != 0 {
		if x.left != t.sentinel && x.left.max >= ivl.Begin {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x != t.sentinel
}
