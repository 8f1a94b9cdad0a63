package axial

import "testing"

// menagerie covers the lattice extremes plus overlapping, nested, disjoint,
// touching and degenerate finite rectangles.
func menagerie() []Rect {
	return []Rect{
		Empty(),
		Plane(),
		{1, 2, 3, 4},
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{3, 4, 3, 4},
		{-10, -10, 10, 10},
		{10, 10, 11, 11},
		{20, 20, 30, 30},
		{0, 0, 1, 1},
	}
}

func TestIdentityAndAbsorbingElements(t *testing.T) {
	for _, a := range menagerie() {
		if got := Enclose(a, Empty()); !got.Equal(a) {
			t.Fatalf("Enclose(%v, EMPTY) = %v, want %v", a, got, a)
		}
		if got := Overlap(a, Plane()); !got.Equal(a) {
			t.Fatalf("Overlap(%v, PLANE) = %v, want %v", a, got, a)
		}
		if got := Enclose(a, Plane()); !got.Equal(Plane()) {
			t.Fatalf("Enclose(%v, PLANE) = %v, want PLANE", a, got)
		}
		if got := Overlap(a, Empty()); !got.IsEmpty() {
			t.Fatalf("Overlap(%v, EMPTY) = %v, want EMPTY", a, got)
		}
	}
}

// Overlap of no rects is the plane while Enclose of no rects is empty: the
// two reductions have different identity elements.
func TestZeroOperandIdentities(t *testing.T) {
	if got := Enclose(); !got.IsEmpty() {
		t.Fatalf("Enclose() = %v, want EMPTY", got)
	}
	if got := Overlap(); !got.Equal(Plane()) {
		t.Fatalf("Overlap() = %v, want PLANE", got)
	}
}

func TestIdempotencyAndCommutativity(t *testing.T) {
	for _, a := range menagerie() {
		if got := Enclose(a, a); !got.Equal(a) {
			t.Fatalf("Enclose(%v, %v) = %v", a, a, got)
		}
		if got := Overlap(a, a); !got.Equal(a) {
			t.Fatalf("Overlap(%v, %v) = %v", a, a, got)
		}
		for _, b := range menagerie() {
			if x, y := Enclose(a, b), Enclose(b, a); !x.Equal(y) {
				t.Fatalf("Enclose(%v, %v) = %v but Enclose(%v, %v) = %v", a, b, x, b, a, y)
			}
			if x, y := Overlap(a, b), Overlap(b, a); !x.Equal(y) {
				t.Fatalf("Overlap(%v, %v) = %v but Overlap(%v, %v) = %v", a, b, x, b, a, y)
			}
		}
	}
}

func TestAssociativityAndAbsorption(t *testing.T) {
	for _, a := range menagerie() {
		for _, b := range menagerie() {
			if got := Enclose(a, Overlap(a, b)); !got.Equal(a) {
				t.Fatalf("Enclose(%v, Overlap(%v, %v)) = %v, want %v", a, a, b, got, a)
			}
			if got := Overlap(a, Enclose(a, b)); !got.Equal(a) {
				t.Fatalf("Overlap(%v, Enclose(%v, %v)) = %v, want %v", a, a, b, got, a)
			}
			for _, c := range menagerie() {
				if x, y := Enclose(Enclose(a, b), c), Enclose(a, Enclose(b, c)); !x.Equal(y) {
					t.Fatalf("Enclose not associative on %v %v %v: %v vs %v", a, b, c, x, y)
				}
				if x, y := Overlap(Overlap(a, b), c), Overlap(a, Overlap(b, c)); !x.Equal(y) {
					t.Fatalf("Overlap not associative on %v %v %v: %v vs %v", a, b, c, x, y)
				}
			}
		}
	}
}

func TestOrdering(t *testing.T) {
	all := menagerie()

	for _, a := range all {
		if !Empty().Le(a) {
			t.Fatalf("EMPTY is not <= %v", a)
		}
		if !a.Le(Plane()) {
			t.Fatalf("%v is not <= PLANE", a)
		}
		if !a.Le(a) || !a.Ge(a) {
			t.Fatalf("ordering is not reflexive on %v", a)
		}
		if a.Lt(a) || a.Gt(a) {
			t.Fatalf("strict ordering is not irreflexive on %v", a)
		}
	}

	// Antisymmetry.
	for _, a := range all {
		for _, b := range all {
			if a.Le(b) && b.Le(a) && !a.Equal(b) {
				t.Fatalf("antisymmetry violated by %v and %v", a, b)
			}
			if a.Equal(b) && !(a.Le(b) && b.Le(a)) {
				t.Fatalf("equal rects %v and %v do not order both ways", a, b)
			}
			if a.Lt(b) != (a.Le(b) && !a.Equal(b)) {
				t.Fatalf("Lt disagrees with Le on %v and %v", a, b)
			}
			if a.Gt(b) != (a.Ge(b) && !a.Equal(b)) {
				t.Fatalf("Gt disagrees with Ge on %v and %v", a, b)
			}
		}
	}

	// Transitivity.
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				if a.Le(b) && b.Le(c) && !a.Le(c) {
					t.Fatalf("transitivity violated: %v <= %v <= %v but not %v <= %v", a, b, c, a, c)
				}
			}
		}
	}
}

func TestMonotonicity(t *testing.T) {
	all := menagerie()

	for _, a1 := range all {
		for _, a2 := range all {
			if !a1.Le(a2) {
				continue
			}
			for _, b1 := range all {
				for _, b2 := range all {
					if !b1.Le(b2) {
						continue
					}
					if !Enclose(a1, b1).Le(Enclose(a2, b2)) {
						t.Fatalf("Enclose not monotone: %v %v %v %v", a1, a2, b1, b2)
					}
					if !Overlap(a1, b1).Le(Overlap(a2, b2)) {
						t.Fatalf("Overlap not monotone: %v %v %v %v", a1, a2, b1, b2)
					}
				}
			}
		}
	}
}

// Only the semidistributive inequalities hold; the full distributive laws
// fail for rectangles.
func TestSemidistributivity(t *testing.T) {
	all := menagerie()

	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				if !Enclose(Overlap(a, b), Overlap(a, c)).Le(Overlap(a, Enclose(b, c))) {
					t.Fatalf("join-semidistributivity violated on %v %v %v", a, b, c)
				}
				if !Enclose(a, Overlap(b, c)).Le(Overlap(Enclose(a, b), Enclose(a, c))) {
					t.Fatalf("meet-semidistributivity violated on %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestJoinMeetBinaryForms(t *testing.T) {
	a := Rect{1, 2, 3, 4}
	b := Rect{2, 3, 4, 5}

	if got := a.Join(b); !got.Equal(Rect{1, 2, 4, 5}) {
		t.Fatalf("%v.Join(%v) = %v", a, b, got)
	}
	if got := a.Meet(b); !got.Equal(Rect{2, 3, 3, 4}) {
		t.Fatalf("%v.Meet(%v) = %v", a, b, got)
	}

	// A raw coordinate slice works as the second operand.
	if got := a.Join([]float64{2, 3, 4, 5}); !got.Equal(Rect{1, 2, 4, 5}) {
		t.Fatalf("Join against a raw slice = %v", got)
	}
}

func TestEncloseOverlapScenario(t *testing.T) {
	rects := []Rect{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}}

	if got := Enclose(rects...); !got.Equal(Rect{1, 2, 5, 6}) {
		t.Fatalf("Enclose = %v, want Rect(1, 2, 5, 6)", got)
	}
	if got := Overlap(rects...); !got.Equal(Rect{3, 4, 3, 4}) {
		t.Fatalf("Overlap = %v, want Rect(3, 4, 3, 4)", got)
	}

	// Mixing the identity elements in does not change the outcomes.
	if got := Enclose(append([]Rect{Empty()}, rects...)...); !got.Equal(Rect{1, 2, 5, 6}) {
		t.Fatalf("Enclose with EMPTY = %v", got)
	}
	if got := Overlap(append([]Rect{Plane()}, rects...)...); !got.Equal(Rect{3, 4, 3, 4}) {
		t.Fatalf("Overlap with PLANE = %v", got)
	}
}

// Two disjoint rects have an empty meet, and two touching rects meet in a
// degenerate, but not empty, rectangle.
func TestOverlapDisjointAndTouching(t *testing.T) {
	if got := Overlap(Rect{0, 0, 1, 1}, Rect{5, 5, 6, 6}); !got.IsEmpty() {
		t.Fatalf("Overlap of disjoint rects = %v, want EMPTY", got)
	}
	if got := Overlap(Rect{0, 0, 1, 1}, Rect{1, 0, 2, 1}); !got.Equal(Rect{1, 0, 1, 1}) {
		t.Fatalf("Overlap of edge-touching rects = %v, want Rect(1, 0, 1, 1)", got)
	}
	if got := Overlap(Rect{0, 0, 1, 1}, Rect{1, 1, 2, 2}); !got.Equal(Rect{1, 1, 1, 1}) {
		t.Fatalf("Overlap of corner-touching rects = %v, want Rect(1, 1, 1, 1)", got)
	}
}
