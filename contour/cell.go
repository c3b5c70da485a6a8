package contour

import (
	"math"

	"github.com/isofield/isofield/field"
)

// edge identifies one side of a contour cell. The top edge borders the
// higher-numbered row, matching the row→Y lattice mapping.
type edge uint8

const (
	edgeNone edge = iota
	edgeTop
	edgeRight
	edgeBottom
	edgeLeft
)

// opposite returns the facing edge: crossing out of a cell through e
// enters the neighbor through opposite(e). Complexity: O(1).
func (e edge) opposite() edge {
	switch e {
	case edgeTop:
		return edgeBottom
	case edgeBottom:
		return edgeTop
	case edgeLeft:
		return edgeRight
	case edgeRight:
		return edgeLeft
	}

	return edgeNone
}

// Corner bit weights for the marching-squares case index. A bit is set
// iff the corner value exceeds the contour level.
const (
	bitTL uint8 = 8
	bitTR uint8 = 4
	bitBR uint8 = 2
	bitBL uint8 = 1
)

// edgePair is one directed crossing through a cell. Travel keeps
// above-level values on the left, which makes closed loops around high
// regions run counterclockwise.
type edgePair struct {
	in, out edge
}

// caseEdges maps each case index to its directed crossings.
// Cases 0 and 15 carry none; plain cases carry one; saddles 5/10
// (center above level) and 16/17 (center below level) carry two,
// selected at trace time by the matching entrance or exit edge.
var caseEdges = [18][]edgePair{
	0:  nil,
	1:  {{edgeBottom, edgeLeft}},
	2:  {{edgeRight, edgeBottom}},
	3:  {{edgeRight, edgeLeft}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeLeft}, {edgeBottom, edgeRight}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeLeft, edgeTop}},
	9:  {{edgeBottom, edgeTop}},
	10: {{edgeRight, edgeTop}, {edgeLeft, edgeBottom}},
	11: {{edgeRight, edgeTop}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
	16: {{edgeTop, edgeRight}, {edgeBottom, edgeLeft}},
	17: {{edgeLeft, edgeTop}, {edgeRight, edgeBottom}},
}

// isSaddleCase reports whether a case index carries two crossings.
func isSaddleCase(c uint8) bool {
	return c == 5 || c == 10 || c == 16 || c == 17
}

// exitFor returns the exit edge of the crossing entered through in,
// or edgeNone if the case has no crossing with that entrance.
// Saddle pairs have distinct entrances, so the lookup never forks.
// Complexity: O(1).
func exitFor(c uint8, in edge) edge {
	for _, p := range caseEdges[c] {
		if p.in == in {
			return p.out
		}
	}

	return edgeNone
}

// entranceFor returns the entrance edge of the crossing that exits
// through out, or edgeNone. Used by the backward scan, which walks
// crossings against their direction. Complexity: O(1).
func entranceFor(c uint8, out edge) edge {
	for _, p := range caseEdges[c] {
		if p.out == out {
			return p.in
		}
	}

	return edgeNone
}

// firstEntrance returns the entrance edge of the case's only crossing.
// Valid for non-saddle, non-trivial cases (the seed constraint).
func firstEntrance(c uint8) edge {
	if len(caseEdges[c]) == 0 {
		return edgeNone
	}

	return caseEdges[c][0].in
}

// cornerValues reads the four corners of contour cell (row, col).
// The cell spans data rows row..row+1 and columns col..col+1.
func cornerValues(g field.Grid, row, col int) (tl, tr, br, bl float64) {
	tl = g.Z(row+1, col)
	tr = g.Z(row+1, col+1)
	br = g.Z(row, col+1)
	bl = g.Z(row, col)

	return tl, tr, br, bl
}

// definedMask returns the corner bitmask of well-defined (non-NaN)
// values, using the same bit weights as the case index.
func definedMask(tl, tr, br, bl float64) uint8 {
	var m uint8
	if !math.IsNaN(tl) {
		m |= bitTL
	}
	if !math.IsNaN(tr) {
		m |= bitTR
	}
	if !math.IsNaN(br) {
		m |= bitBR
	}
	if !math.IsNaN(bl) {
		m |= bitBL
	}

	return m
}

// nanBoundaryAt reports whether cell (row, col) has 1-3 NaN corners:
// the only cells where a real-level path may legally terminate inside
// the grid. Reads the grid directly, so it holds for cells that were
// never classified or already exhausted. Complexity: O(1).
func nanBoundaryAt(g field.Grid, row, col int) bool {
	m := definedMask(cornerValues(g, row, col))

	return m != 0 && m != 15
}

// cell is the classification state of one contour cell: a case index
// and a visit counter per level, plus one trailing slot for the NaN
// boundary pseudo-level.
type cell struct {
	row, col int
	cases    []uint8
	visits   []uint8
	defined  uint8
}

// classifyCell builds the cell at (row, col) for the given levels, or
// returns nil when the cell is trivial (carries no crossing at any
// level, including the NaN pseudo-level) and can stay out of the
// active set. Complexity: O(L).
func classifyCell(g field.Grid, row, col int, levels []float64) *cell {
	tl, tr, br, bl := cornerValues(g, row, col)
	defined := definedMask(tl, tr, br, bl)
	if defined == 0 {
		// All four corners undefined: the cell carries no data at all.
		return nil
	}

	n := len(levels)
	cases := make([]uint8, n+1)

	if defined != 15 {
		// 1-3 NaN corners: no real-level crossing is defined here; the
		// NaN pseudo-level case is the mask of defined corners (NaN
		// sorts below every level). Masks 5/10 are saddles whose
		// center average, with NaN as -Inf, is always below.
		switch defined {
		case 5:
			cases[n] = 16
		case 10:
			cases[n] = 17
		default:
			cases[n] = defined
		}
	} else {
		cases[n] = 15
		lowest := math.Min(math.Min(tl, tr), math.Min(br, bl))
		highest := math.Max(math.Max(tl, tr), math.Max(br, bl))
		switch {
		case n > 0 && highest <= levels[0]:
			// Uniformly at or below the lowest level: every case is 0.
		case n > 0 && lowest > levels[n-1]:
			// Uniformly above the highest level: every case is 15.
			for li := 0; li < n; li++ {
				cases[li] = 15
			}
		default:
			avg := (tl + tr + br + bl) / 4
			for li, level := range levels {
				var c uint8
				if tl > level {
					c |= bitTL
				}
				if tr > level {
					c |= bitTR
				}
				if br > level {
					c |= bitBR
				}
				if bl > level {
					c |= bitBL
				}
				if avg < level {
					// Center below level: the diagonal high corners
					// are separate, not a connected ridge.
					if c == 5 {
						c = 16
					} else if c == 10 {
						c = 17
					}
				}
				cases[li] = c
			}
		}
	}

	// Keep the cell only if some level carries a crossing.
	trivial := true
	for _, c := range cases {
		if c != 0 && c != 15 {
			trivial = false
			break
		}
	}
	if trivial {
		return nil
	}

	return &cell{
		row:     row,
		col:     col,
		cases:   cases,
		visits:  make([]uint8, n+1),
		defined: defined,
	}
}

// caseFor returns the case index at level index li (the trailing index
// addresses the NaN pseudo-level).
func (c *cell) caseFor(li int) uint8 { return c.cases[li] }

// isSaddleFor reports whether level index li is a saddle in this cell.
func (c *cell) isSaddleFor(li int) bool { return isSaddleCase(c.cases[li]) }

// requiredVisits returns how many times level li must be traced before
// the cell is exhausted at that level: two for saddles, one for plain
// crossings, zero for trivial cases.
func (c *cell) requiredVisits(li int) uint8 {
	cs := c.cases[li]
	if cs == 0 || cs == 15 {
		return 0
	}
	if isSaddleCase(cs) {
		return 2
	}

	return 1
}

// markVisited records one traversal of level li through this cell.
func (c *cell) markVisited(li int) { c.visits[li]++ }

// hasNoContourFor reports whether level li has no crossing left to
// trace in this cell.
func (c *cell) hasNoContourFor(li int) bool {
	return c.visits[li] >= c.requiredVisits(li)
}

// hasNoContours reports whether every level, including the NaN
// pseudo-level, is exhausted; the cell can then leave the active set.
func (c *cell) hasNoContours() bool {
	for li := range c.cases {
		if !c.hasNoContourFor(li) {
			return false
		}
	}

	return true
}
