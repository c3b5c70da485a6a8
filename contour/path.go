package contour

import (
	"math"

	"github.com/isofield/isofield/field"
)

// worldX returns the X coordinate of data column col under the grid's
// linear lattice mapping. Complexity: O(1).
func worldX(g field.Grid, col int) float64 {
	return g.X0() + float64(col)*(g.X1()-g.X0())/float64(g.Cols()-1)
}

// worldY returns the Y coordinate of data row row. Complexity: O(1).
func worldY(g field.Grid, row int) float64 {
	return g.Y0() + float64(row)*(g.Y1()-g.Y0())/float64(g.Rows()-1)
}

// edgeCorners returns the data coordinates of the two corners bounding
// edge e of cell (row, col), in a fixed per-edge order.
func edgeCorners(row, col int, e edge) (r1, c1, r2, c2 int) {
	switch e {
	case edgeTop:
		return row + 1, col, row + 1, col + 1
	case edgeBottom:
		return row, col, row, col + 1
	case edgeLeft:
		return row, col, row + 1, col
	case edgeRight:
		return row, col + 1, row + 1, col + 1
	}

	return row, col, row, col
}

// crossingPoint computes where the path at level index li crosses edge
// e of cell (row, col), by linear interpolation between the corner
// values. On the NaN pseudo-level one corner is undefined and
// interpolation is meaningless; the point sits nanInset into the edge
// from the defined corner instead. Complexity: O(1).
func crossingPoint(g field.Grid, levels []float64, li, row, col int, e edge) Point {
	r1, c1, r2, c2 := edgeCorners(row, col, e)
	z1, z2 := g.Z(r1, c1), g.Z(r2, c2)

	var t float64
	if li < len(levels) {
		t = (levels[li] - z1) / (z2 - z1)
	} else {
		switch {
		case math.IsNaN(z2):
			t = nanInset
		case math.IsNaN(z1):
			t = 1 - nanInset
		default:
			t = 0.5
		}
	}

	x1, y1 := worldX(g, c1), worldY(g, r1)
	x2, y2 := worldX(g, c2), worldY(g, r2)

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}
}

// buildPath converts a traced line into its ordered world-coordinate
// points: one crossing per entered edge, plus the final exit crossing
// for open paths. Closed paths omit the duplicate closing point.
//
// Open real-level paths that terminate against undefined data are
// extended into the terminal cell so they meet the NaN boundary path
// instead of stopping one crossing short. Complexity: O(path length).
func buildPath(g field.Grid, levels []float64, line isoLine) []Point {
	pts := make([]Point, 0, len(line.steps)+3)
	for _, s := range line.steps {
		pts = append(pts, crossingPoint(g, levels, line.levelIdx, s.row, s.col, s.in))
	}
	if !line.closed {
		last := line.steps[len(line.steps)-1]
		pts = append(pts, crossingPoint(g, levels, line.levelIdx, last.row, last.col, line.lastExit))
	}

	if line.levelIdx < len(levels) && len(pts) >= 2 {
		if line.startNaN != nil {
			if ext, ok := extendInto(g, levels, *line.startNaN, pts[0], pts[1]); ok {
				pts = append([]Point{ext}, pts...)
			}
		}
		if line.endNaN != nil {
			n := len(pts)
			if ext, ok := extendInto(g, levels, *line.endNaN, pts[n-1], pts[n-2]); ok {
				pts = append(pts, ext)
			}
		}
	}

	return pts
}

// extendInto continues the terminal path segment (prev→from) beyond
// from, into the undefined-data cell at p, and returns where it meets
// that cell's NaN boundary chord. When the straight continuation
// misses the chord (the one-NaN-corner geometry makes it short), the
// nearest cell edge serves as the stop instead. Complexity: O(1).
func extendInto(g field.Grid, levels []float64, p pos, from, prev Point) (Point, bool) {
	dir := Point{X: from.X - prev.X, Y: from.Y - prev.Y}
	if dir.X == 0 && dir.Y == 0 {
		return Point{}, false
	}

	// 1) Try the NaN boundary chords of the terminal cell: segments
	//    between its inset crossing points (a saddle mask has two).
	tl, tr, br, bl := cornerValues(g, p.row, p.col)
	mask := definedMask(tl, tr, br, bl)
	switch mask {
	case 5:
		mask = 16
	case 10:
		mask = 17
	}
	best := math.Inf(1)
	for _, pair := range caseEdges[mask] {
		a := crossingPoint(g, levels, len(levels), p.row, p.col, pair.in)
		b := crossingPoint(g, levels, len(levels), p.row, p.col, pair.out)
		if s, ok := raySegment(from, dir, a, b); ok && s < best {
			best = s
		}
	}
	if !math.IsInf(best, 1) {
		return Point{X: from.X + best*dir.X, Y: from.Y + best*dir.Y}, true
	}

	// 2) Fall back to the nearest edge of the cell itself.
	x0, x1 := worldX(g, p.col), worldX(g, p.col+1)
	y0, y1 := worldY(g, p.row), worldY(g, p.row+1)
	corners := [4]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		if s, ok := raySegment(from, dir, a, b); ok && s < best {
			best = s
		}
	}
	if !math.IsInf(best, 1) {
		return Point{X: from.X + best*dir.X, Y: from.Y + best*dir.Y}, true
	}

	return Point{}, false
}

// raySegment intersects the ray origin+s·dir (s > 0) with the segment
// a→b and returns the smallest valid s. Complexity: O(1).
func raySegment(origin, dir, a, b Point) (float64, bool) {
	const eps = 1e-12
	ex, ey := b.X-a.X, b.Y-a.Y
	det := ex*dir.Y - ey*dir.X
	if math.Abs(det) < eps {
		return 0, false
	}
	wx, wy := a.X-origin.X, a.Y-origin.Y
	s := (ex*wy - ey*wx) / det
	u := (dir.X*wy - dir.Y*wx) / det
	if s <= eps || u < 0 || u > 1 {
		return 0, false
	}

	return s, true
}
