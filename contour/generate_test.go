package contour_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isofield/isofield/contour"
	"github.com/isofield/isofield/field"
)

// mustDense builds a grid or fails the test.
func mustDense(t *testing.T, values [][]float64, x0, x1, y0, y1 float64) *field.Dense {
	t.Helper()

	g, err := field.NewDense(values, x0, x1, y0, y1)
	require.NoError(t, err)

	return g
}

// holedWaveGrid samples the standing wave 50·(sin(2πx/100)+cos(2πy/100))
// on a 100x100 lattice over [-100,100]² and blanks a 5x5 sample block
// (rows 48-52, columns 54-58) to NaN.
func holedWaveGrid() (*field.Dense, error) {
	const rows, cols = 100, 100
	values := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]float64, cols)
		y := -100 + float64(r)*200/float64(rows-1)
		for c := 0; c < cols; c++ {
			x := -100 + float64(c)*200/float64(cols-1)
			values[r][c] = 50 * (math.Sin(2*math.Pi*x/100) + math.Cos(2*math.Pi*y/100))
		}
	}
	for r := 48; r <= 52; r++ {
		for c := 54; c <= 58; c++ {
			values[r][c] = math.NaN()
		}
	}

	return field.NewDense(values, -100, 100, -100, 100)
}

// ringBounds returns the axis-aligned bounding box of a point sequence.
func ringBounds(pts []contour.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return minX, minY, maxX, maxY
}

// ringArea is the shoelace area of a closed ring, positive for
// counterclockwise winding.
func ringArea(pts []contour.Point) float64 {
	var s float64
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}

	return s / 2
}

// diffContours compares contour slices with NaN-tolerant, approximate
// float comparison.
func diffContours(want, got []contour.Contour) string {
	return cmp.Diff(want, got, cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-9))
}

// TestGenerate_NilGrid verifies the nil-grid sentinel.
func TestGenerate_NilGrid(t *testing.T) {
	_, err := contour.Generate(nil, contour.DefaultOptions())
	assert.ErrorIs(t, err, contour.ErrNilGrid)
}

// TestGenerate_DegenerateInputs verifies that undersized or flat grids
// produce an empty result and no error, even when the caller's level
// list would not validate.
func TestGenerate_DegenerateInputs(t *testing.T) {
	single := mustDense(t, [][]float64{{1, 2, 3}}, 0, 2, 0, 0)
	out, err := contour.Generate(single, contour.DefaultOptions())
	assert.NoError(t, err)
	assert.Empty(t, out, "one data row cannot form a cell")

	flat := mustDense(t, [][]float64{{7, 7}, {7, 7}}, 0, 1, 0, 1)
	out, err = contour.Generate(flat, contour.DefaultOptions())
	assert.NoError(t, err)
	assert.Empty(t, out, "zero data range carries no contour")

	// Degenerate grids short-circuit before level validation.
	out, err = contour.Generate(flat, contour.Options{Levels: []float64{99}})
	assert.NoError(t, err)
	assert.Empty(t, out)

	nan := math.NaN()
	blank := mustDense(t, [][]float64{{nan, nan}, {nan, nan}}, 0, 1, 0, 1)
	out, err = contour.Generate(blank, contour.DefaultOptions())
	assert.NoError(t, err)
	assert.Empty(t, out, "fully undefined grid has no data range")
}

// TestGenerate_LevelValidation verifies the sentinel for each way a
// caller level list can be malformed.
func TestGenerate_LevelValidation(t *testing.T) {
	g := mustDense(t, [][]float64{{0, 10}, {0, 10}}, 0, 1, 0, 1)

	tooMany := make([]float64, contour.MaxLevels+1)
	for i := range tooMany {
		tooMany[i] = 0.1 + float64(i)*0.4
	}
	_, err := contour.Generate(g, contour.Options{Levels: tooMany})
	assert.ErrorIs(t, err, contour.ErrTooManyLevels)

	_, err = contour.Generate(g, contour.Options{Levels: []float64{7, 3}})
	assert.ErrorIs(t, err, contour.ErrLevelOrder, "descending levels")

	_, err = contour.Generate(g, contour.Options{Levels: []float64{5, 5}})
	assert.ErrorIs(t, err, contour.ErrLevelOrder, "duplicate level")

	_, err = contour.Generate(g, contour.Options{Levels: []float64{11}})
	assert.ErrorIs(t, err, contour.ErrLevelRange, "level above the data range")

	_, err = contour.Generate(g, contour.Options{Levels: []float64{-1, 5}})
	assert.ErrorIs(t, err, contour.ErrLevelRange, "level below the data range")

	_, err = contour.Generate(g, contour.Options{Levels: []float64{math.NaN()}})
	assert.ErrorIs(t, err, contour.ErrLevelRange, "NaN level")
}

// TestGenerate_OpenLine verifies the smallest non-trivial input: a
// single cell with a horizontal gradient yields one open iso-line.
func TestGenerate_OpenLine(t *testing.T) {
	g := mustDense(t, [][]float64{{0, 0}, {1, 1}}, 0, 1, 0, 1)

	out, err := contour.Generate(g, contour.Options{Levels: []float64{0.5}})
	require.NoError(t, err)

	want := []contour.Contour{{
		Points: []contour.Point{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}},
		Level:  0.5,
		Fill:   false,
		Closed: false,
	}}
	if diff := diffContours(want, out); diff != "" {
		t.Errorf("contours mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerate_ClosedLoop verifies a closed counterclockwise ring
// around an interior peak.
func TestGenerate_ClosedLoop(t *testing.T) {
	g := mustDense(t, [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	}, 0, 2, 0, 2)

	out, err := contour.Generate(g, contour.Options{Levels: []float64{5}})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0]
	assert.True(t, c.Closed)
	assert.Equal(t, 5.0, c.Level)
	want := []contour.Point{{X: 0.5, Y: 1}, {X: 1, Y: 0.5}, {X: 1.5, Y: 1}, {X: 1, Y: 1.5}}
	if diff := cmp.Diff(want, c.Points, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
	assert.Positive(t, ringArea(c.Points), "ring around a peak runs counterclockwise")
}

// TestGenerate_SaddleRidge verifies the diagonal tie-break when the
// center average sits at or above the level: the high corners join
// into a ridge and the two lines pass on its flanks.
func TestGenerate_SaddleRidge(t *testing.T) {
	g := mustDense(t, [][]float64{
		{0, 10, 0, 0},
		{0, 0, 10, 0},
	}, 0, 3, 0, 1)

	// Center average is 5, equal to the level: the ridge holds.
	out, err := contour.Generate(g, contour.Options{Levels: []float64{5}})
	require.NoError(t, err)

	want := []contour.Contour{
		{Points: []contour.Point{{X: 1.5, Y: 1}, {X: 1, Y: 0.5}, {X: 0.5, Y: 0}}, Level: 5},
		{Points: []contour.Point{{X: 1.5, Y: 0}, {X: 2, Y: 0.5}, {X: 2.5, Y: 1}}, Level: 5},
	}
	if diff := diffContours(want, out); diff != "" {
		t.Errorf("ridge contours mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerate_SaddleValley verifies the opposite tie-break on the same
// grid: one level higher the center average falls below, the diagonal
// splits, and each line hugs its own high corner.
func TestGenerate_SaddleValley(t *testing.T) {
	g := mustDense(t, [][]float64{
		{0, 10, 0, 0},
		{0, 0, 10, 0},
	}, 0, 3, 0, 1)

	out, err := contour.Generate(g, contour.Options{Levels: []float64{6}})
	require.NoError(t, err)

	want := []contour.Contour{
		{Points: []contour.Point{{X: 1.4, Y: 0}, {X: 1, Y: 0.4}, {X: 0.6, Y: 0}}, Level: 6},
		{Points: []contour.Point{{X: 1.6, Y: 1}, {X: 2, Y: 0.6}, {X: 2.4, Y: 1}}, Level: 6},
	}
	if diff := diffContours(want, out); diff != "" {
		t.Errorf("valley contours mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerate_LoneSaddleCell verifies the 2x2 grid whose only cell is
// a saddle with the average exactly at the level: nothing can seed a
// trace, so the result is empty and error-free.
func TestGenerate_LoneSaddleCell(t *testing.T) {
	g := mustDense(t, [][]float64{{0, 1}, {1, 0}}, 0, 1, 0, 1)

	out, err := contour.Generate(g, contour.Options{Levels: []float64{0.5}})
	assert.NoError(t, err)
	assert.Empty(t, out)
}

// TestGenerate_CheckerboardDropped verifies the all-saddle pathology:
// every cell is ambiguous, nothing seeds, nothing errors.
func TestGenerate_CheckerboardDropped(t *testing.T) {
	g := mustDense(t, [][]float64{
		{10, 0, 10},
		{0, 10, 0},
		{10, 0, 10},
	}, 0, 2, 0, 2)

	out, err := contour.Generate(g, contour.Options{Levels: []float64{5}})
	assert.NoError(t, err)
	assert.Empty(t, out)
}

// TestGenerate_MonotoneLevelsDoNotCross verifies that a strictly
// monotone field yields one straight iso-line per level, each pinned
// to its own vertical, so no two contours can intersect.
func TestGenerate_MonotoneLevelsDoNotCross(t *testing.T) {
	values := make([][]float64, 3)
	for r := range values {
		values[r] = make([]float64, 21)
		for c := range values[r] {
			values[r][c] = float64(c)
		}
	}
	g := mustDense(t, values, 0, 20, 0, 2)
	levels := []float64{3.5, 10.5, 17.5}

	out, err := contour.Generate(g, contour.Options{Levels: levels})
	require.NoError(t, err)
	require.Len(t, out, len(levels))

	for i, c := range out {
		assert.Equal(t, levels[i], c.Level)
		assert.False(t, c.Closed)
		require.Len(t, c.Points, 3, "level %v spans two cells plus the exit", levels[i])
		for _, p := range c.Points {
			assert.InDelta(t, levels[i], p.X, 1e-9, "iso-line of f(x,y)=x is the vertical x=level")
		}
	}
}

// TestGenerate_SweepField covers the first reference scenario: a
// smooth sign-changing field on a 100x100 lattice with nine explicit
// levels, every one of which must come back as stroked lines.
func TestGenerate_SweepField(t *testing.T) {
	f := func(x, y float64) float64 {
		return x * math.Sin(math.Pi*y/50)
	}
	g, err := field.Sample(f, 100, 100, -100, 100, -100, 100)
	require.NoError(t, err)

	levels := []float64{-80, -60, -40, -20, 0, 20, 40, 60, 80}
	out, err := contour.Generate(g, contour.Options{Levels: levels})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	seen := make(map[float64]int)
	for _, c := range out {
		assert.False(t, c.Fill, "stroke-only options emit no fills")
		assert.False(t, math.IsNaN(c.Level), "fully defined grid emits no NaN paths")
		require.GreaterOrEqual(t, len(c.Points), 2)
		seen[c.Level]++
		for _, p := range c.Points {
			assert.GreaterOrEqual(t, p.X, -100.0)
			assert.LessOrEqual(t, p.X, 100.0)
			assert.GreaterOrEqual(t, p.Y, -100.0)
			assert.LessOrEqual(t, p.Y, 100.0)
		}
	}
	for _, lvl := range levels {
		assert.Positive(t, seen[lvl], "level %v missing from output", lvl)
	}
}

// TestGenerate_AutoLevels verifies level selection kicks in when the
// caller supplies none: every emitted level lies strictly inside the
// data range and respects the cap.
func TestGenerate_AutoLevels(t *testing.T) {
	g, err := field.Sample(func(x, y float64) float64 {
		return 50 * (math.Sin(2*math.Pi*x/100) + math.Cos(2*math.Pi*y/100))
	}, 60, 60, -100, 100, -100, 100)
	require.NoError(t, err)

	out, err := contour.Generate(g, contour.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	distinct := make(map[float64]bool)
	for _, c := range out {
		assert.Greater(t, c.Level, g.MinZ())
		assert.Less(t, c.Level, g.MaxZ())
		distinct[c.Level] = true
	}
	assert.LessOrEqual(t, len(distinct), contour.MaxLevels)
}

// TestGenerate_Deterministic verifies byte-for-byte reproducibility of
// a full fill-mode pass over the holed wave grid.
func TestGenerate_Deterministic(t *testing.T) {
	g, err := holedWaveGrid()
	require.NoError(t, err)
	opts := contour.Options{FillRegions: true}

	first, err := contour.Generate(g, opts)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := contour.Generate(g, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("two identical passes diverged (-first +second):\n%s", diff)
	}
}
