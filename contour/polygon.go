package contour

// signedArea returns the signed area of a closed ring: positive when
// the ring winds counterclockwise in the y-up world frame. Tracing
// keeps above-level values on the left, so a closed ring is
// counterclockwise exactly when it encloses the high side.
// Complexity: O(len(ring)).
func signedArea(ring []Point) float64 {
	var s float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}

	return s / 2
}

// pointInRing reports whether p lies inside the closed ring under the
// even-odd rule (odd number of edge crossings on a horizontal ray).
// Points exactly on an edge land on either side; callers only probe
// points safely away from ring edges. Complexity: O(len(ring)).
func pointInRing(p Point, ring []Point) bool {
	in := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if p.X < x {
			in = !in
		}
	}

	return in
}

// ringContainsRing reports whether every vertex of inner lies inside
// outer. Marching-squares rings never cross, so vertex containment
// decides full containment. Complexity: O(len(inner)×len(outer)).
func ringContainsRing(outer, inner []Point) bool {
	if len(outer) < 3 || len(inner) == 0 {
		return false
	}
	for _, p := range inner {
		if !pointInRing(p, outer) {
			return false
		}
	}

	return true
}

// reverseRing returns a reversed copy of ring. Hole rings are stored
// wound opposite to their outer ring, which keeps nonzero-winding
// consumers agreeing with the even-odd rule.
func reverseRing(ring []Point) []Point {
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}

	return out
}

// Contains reports whether p lies inside the contour's filled area
// under the even-odd rule: inside the outer path and outside an even
// number of holes. Complexity: O(total vertices).
func (c *Contour) Contains(p Point) bool {
	in := pointInRing(p, c.Points)
	for _, h := range c.Holes {
		if pointInRing(p, h) {
			in = !in
		}
	}

	return in
}

// ContainsContour reports whether every vertex of o's outer path lies
// inside c's filled area. Complexity: O(len(o.Points)×total vertices).
func (c *Contour) ContainsContour(o *Contour) bool {
	if o == nil || len(o.Points) == 0 || len(c.Points) < 3 {
		return false
	}
	for _, p := range o.Points {
		if !c.Contains(p) {
			return false
		}
	}

	return true
}
