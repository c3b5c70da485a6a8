package contour

import (
	"fmt"
	"sort"

	"github.com/isofield/isofield/field"
)

// pos identifies one contour cell by its (row, col) in the cell grid.
type pos struct {
	row, col int
}

// traceStep records one forward traversal step: the cell visited and
// the edge the path entered it through.
type traceStep struct {
	row, col int
	in       edge
}

// isoLine is one continuously traced path at a single level index
// (len(levels) addresses the NaN pseudo-level). Steps run in trace
// order; lastExit is the exit edge of the final step for open paths.
// startNaN/endNaN name the undefined-data cells bounding an unclosed
// end, when the path terminates inside the grid rather than at its edge.
type isoLine struct {
	levelIdx int
	steps    []traceStep
	closed   bool
	lastExit edge
	startNaN *pos
	endNaN   *pos
}

// tracer drives one tracing pass: an active map of non-trivial cells,
// consumed seed by seed until no traceable crossing remains.
//
// The map is keyed by the flattened row-major cell index and holds only
// cells that carry at least one crossing; exhausted cells are removed
// explicitly, so memory stays proportional to the contour-bearing
// subset of the grid.
type tracer struct {
	g        field.Grid
	levels   []float64
	cellRows int // N-1
	cellCols int // M-1
	active   map[int]*cell
	budget   int
}

// newTracer classifies every cell of g against levels and indexes the
// non-trivial ones. Complexity: O(N×M×L) time, O(K×L) memory for K
// non-trivial cells.
func newTracer(g field.Grid, levels []float64) *tracer {
	t := &tracer{
		g:        g,
		levels:   levels,
		cellRows: g.Rows() - 1,
		cellCols: g.Cols() - 1,
		active:   make(map[int]*cell),
	}
	for r := 0; r < t.cellRows; r++ {
		for c := 0; c < t.cellCols; c++ {
			if cl := classifyCell(g, r, c, levels); cl != nil {
				t.active[t.key(r, c)] = cl
			}
		}
	}
	// Step budget per traced path: a path crosses each cell at most
	// twice (saddles), so anything longer is a table bug.
	t.budget = 2*len(t.active) + 4

	return t
}

// key maps cell (row, col) to its flattened row-major index.
// Complexity: O(1).
func (t *tracer) key(row, col int) int {
	return row*t.cellCols + col
}

// inBounds reports whether (row, col) lies within the cell grid.
// Complexity: O(1).
func (t *tracer) inBounds(row, col int) bool {
	return row >= 0 && row < t.cellRows && col >= 0 && col < t.cellCols
}

// neighbor returns the cell reached by crossing out of (row, col)
// through e. Complexity: O(1).
func neighbor(row, col int, e edge) (int, int) {
	switch e {
	case edgeTop:
		return row + 1, col
	case edgeBottom:
		return row - 1, col
	case edgeLeft:
		return row, col - 1
	case edgeRight:
		return row, col + 1
	}

	return row, col
}

// nanIdx returns the level index of the NaN boundary pseudo-level.
func (t *tracer) nanIdx() int { return len(t.levels) }

// run traces every crossing in the active set and returns the lines in
// deterministic order. Leftover cells whose only remaining crossings
// are saddles cannot seed a path and are discarded, matching the
// established behavior for that rare topology.
func (t *tracer) run() ([]isoLine, error) {
	// 1) Snapshot the keys in ascending order: map iteration order is
	//    randomized, and seeds must be deterministic for fixed input.
	keys := make([]int, 0, len(t.active))
	for k := range t.active {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	// 2) Consume seeds in (cell, level) order. Tracing only ever
	//    exhausts crossings, so one ascending sweep finds every path.
	var lines []isoLine
	for _, k := range keys {
		cl, ok := t.active[k]
		if !ok {
			continue
		}
		for li := 0; li <= t.nanIdx(); li++ {
			if cl.hasNoContourFor(li) || cl.isSaddleFor(li) {
				continue
			}
			line, err := t.traceFrom(cl, li)
			if err != nil {
				return nil, err
			}
			if !cl.hasNoContourFor(li) {
				return nil, fmt.Errorf("seed (%d,%d) level %d not consumed by its own trace: %w",
					cl.row, cl.col, li, ErrTraceInvariant)
			}
			lines = append(lines, line)
		}
	}

	// 3) Anything still in the map holds saddle-only leftovers; drop
	//    them rather than guess at a pairing no seed can anchor.
	for k := range t.active {
		delete(t.active, k)
	}

	return lines, nil
}

// traceFrom walks the path through seed at level li: first a clockwise
// scan against the travel direction to the true start, then the
// counterclockwise forward trace that records steps, marks visits, and
// retires exhausted cells. Complexity: O(path length), bounded by the
// step budget.
func (t *tracer) traceFrom(seed *cell, li int) (isoLine, error) {
	line := isoLine{levelIdx: li}

	// 1) Scan back. Stepping across the entrance edge of each cell
	//    leads to the previous cell on the path; its exit edge faces
	//    the one just crossed.
	cur, curEnt := seed, firstEntrance(seed.caseFor(li))
	closed := false
	steps := t.budget
	for {
		steps--
		if steps < 0 {
			return line, fmt.Errorf("scan-back exceeded step budget at level %d: %w", li, ErrTraceInvariant)
		}
		pr, pc := neighbor(cur.row, cur.col, curEnt)
		if !t.inBounds(pr, pc) {
			break // open path starting at the grid edge
		}
		if pr == seed.row && pc == seed.col {
			closed = true // walked the full loop back to the seed
			break
		}
		prev, ok := t.active[t.key(pr, pc)]
		if !ok || prev.hasNoContourFor(li) {
			if li < t.nanIdx() && nanBoundaryAt(t.g, pr, pc) {
				line.startNaN = &pos{pr, pc}
				break // open path starting against an NaN boundary
			}

			return line, fmt.Errorf("scan-back from (%d,%d) hit cell (%d,%d) without level %d: %w",
				cur.row, cur.col, pr, pc, li, ErrTraceInvariant)
		}
		prevEnt := entranceFor(prev.caseFor(li), curEnt.opposite())
		if prevEnt == edgeNone {
			return line, fmt.Errorf("no crossing exits cell (%d,%d) toward (%d,%d) at level %d: %w",
				pr, pc, cur.row, cur.col, li, ErrTraceInvariant)
		}
		cur, curEnt = prev, prevEnt
	}
	if closed {
		cur, curEnt = seed, firstEntrance(seed.caseFor(li))
	}
	startRow, startCol, startEnt := cur.row, cur.col, curEnt

	// 2) Forward trace from the true start.
	steps = t.budget
	for {
		steps--
		if steps < 0 {
			return line, fmt.Errorf("trace exceeded step budget at level %d: %w", li, ErrTraceInvariant)
		}
		line.steps = append(line.steps, traceStep{row: cur.row, col: cur.col, in: curEnt})
		out := exitFor(cur.caseFor(li), curEnt)
		if out == edgeNone {
			return line, fmt.Errorf("no crossing enters cell (%d,%d) through edge %d at level %d: %w",
				cur.row, cur.col, curEnt, li, ErrTraceInvariant)
		}
		cur.markVisited(li)
		if cur.hasNoContours() {
			delete(t.active, t.key(cur.row, cur.col))
		}

		nr, nc := neighbor(cur.row, cur.col, out)
		if !t.inBounds(nr, nc) {
			line.lastExit = out // open path ending at the grid edge
			break
		}
		if closed && nr == startRow && nc == startCol && out.opposite() == startEnt {
			line.closed = true
			break
		}
		next, ok := t.active[t.key(nr, nc)]
		if !ok || next.hasNoContourFor(li) {
			if li < t.nanIdx() && nanBoundaryAt(t.g, nr, nc) {
				line.lastExit = out
				line.endNaN = &pos{nr, nc}
				break // open path ending against an NaN boundary
			}

			return line, fmt.Errorf("trace from (%d,%d) hit cell (%d,%d) without level %d: %w",
				cur.row, cur.col, nr, nc, li, ErrTraceInvariant)
		}
		cur, curEnt = next, out.opposite()
	}

	return line, nil
}
