package axial

import "github.com/carbocation/axial/interval"

// Partitions splits rects into maximal sets of transitively overlapping
// rectangles. Two rectangles belong to the same partition if they overlap,
// or if a chain of pairwise-overlapping rectangles connects them; touching
// edges or corners count as overlap. Empty rectangles carry no area and are
// always discarded, and identical rectangles collapse into a single node.
//
// Adjacency is found by projecting every rectangle onto the two axes and
// intersecting overlap queries against a horizontal and a vertical interval
// tree, so the whole partitioning runs in O(n log n + k) for n distinct
// rectangles with k overlapping pairs. The order of the partitions, and of
// the rectangles within each partition, is unspecified.
func Partitions(rects []Rect) [][]Rect {
	nodes := dedup(rects)
	if len(nodes) == 0 {
		return nil
	}

	htree := interval.New()
	vtree := interval.New()
	for i, r := range nodes {
		left, right := r.Horizontal()
		htree.Insert(interval.Interval{Begin: left, End: right}, i)
		top, bottom := r.Vertical()
		vtree.Insert(interval.Interval{Begin: top, End: bottom}, i)
	}

	// Two rects overlap iff both their horizontal and their vertical
	// extents do, so each node's neighbors are the intersection of its two
	// per-axis query results.
	neighbors := make([][]int, len(nodes))
	horizontal := make([]bool, len(nodes))
	for i, r := range nodes {
		left, right := r.Horizontal()
		hits := htree.Search(interval.Interval{Begin: left, End: right})
		for _, hit := range hits {
			horizontal[hit.Payload.(int)] = true
		}

		top, bottom := r.Vertical()
		for _, hit := range vtree.Search(interval.Interval{Begin: top, End: bottom}) {
			j := hit.Payload.(int)
			if j != i && horizontal[j] {
				neighbors[i] = append(neighbors[i], j)
			}
		}

		for _, hit := range hits {
			horizontal[hit.Payload.(int)] = false
		}
	}

	// Walk the adjacency relation as an undirected graph with an explicit
	// worklist, assigning every node to exactly one component.
	seen := make([]bool, len(nodes))
	var components [][]Rect
	for start := range nodes {
		if seen[start] {
			continue
		}

		var members []Rect
		todo := []int{start}
		seen[start] = true
		for len(todo) > 0 {
			n := todo[len(todo)-1]
			todo = todo[:len(todo)-1]
			members = append(members, nodes[n])
			for _, m := range neighbors[n] {
				if !seen[m] {
					seen[m] = true
					todo = append(todo, m)
				}
			}
		}
		components = append(components, members)
	}

	return components
}

// BoundingBoxes reduces each partition of rects to its bounding box, so the
// result holds exactly one rectangle per set of transitively overlapping
// input rectangles.
func BoundingBoxes(rects []Rect) []Rect {
	partitions := Partitions(rects)
	out := make([]Rect, 0, len(partitions))
	for _, members := range partitions {
		out = append(out, Enclose(members...))
	}
	return out
}

// dedup drops empty rectangles and collapses duplicates, preserving first
// appearance order.
func dedup(rects []Rect) []Rect {
	type quad [4]float64

	nodes := make([]Rect, 0, len(rects))
	known := make(map[quad]struct{}, len(rects))
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		k := quad{r[x0], r[y0], r[x1], r[y1]}
		if _, dup := known[k]; dup {
			continue
		}
		known[k] = struct{}{}
		nodes = append(nodes, r)
	}
	return nodes
}
