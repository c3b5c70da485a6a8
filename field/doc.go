// Package field provides read-only rectangular scalar grids: the data
// source side of contour generation.
//
// What:
//
//   - Grid is the minimal capability a contour pass needs: dimensions,
//     the X/Y domain extents, the well-defined Z range, and point-wise
//     Z lookup.
//   - Dense wraps a [][]float64 sample matrix with a linearly mapped
//     [X0,X1]×[Y0,Y1] domain. Inputs are deep-copied, so a Dense never
//     observes later mutation of the caller's slices.
//   - Sample builds a Dense by evaluating a function on the lattice.
//
// Why:
//
//   - Measurement grids: elevation, temperature, pressure fields with
//     gaps (NaN samples are legal and expected).
//   - Synthetic fields: closed-form functions sampled for plotting.
//
// Conventions:
//
//   - values[row][col], row-major; row maps to Y, col maps to X.
//   - X0 may exceed X1 (reversed axis); the same holds for Y0/Y1.
//   - MinZ/MaxZ summarize well-defined samples only; an all-NaN grid
//     reports NaN for both.
//   - Z panics on an out-of-range index: that is a programming error,
//     not a data condition.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRagged: rows have differing lengths.
package field
