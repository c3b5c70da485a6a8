// Package isofield turns rectangular scalar grids into contour geometry —
// iso-lines, filled level bands, and undefined-region boundaries, ready
// for any renderer.
//
// 🚀 What is isofield?
//
//	A small, deterministic marching-squares engine that brings together:
//		• Grid adapters: wrap [][]float64 data or sample analytic surfaces
//		• Iso-lines: open and closed level curves with disambiguated saddles
//		• Filled bands: containment-ordered, painter-ready level regions
//		• Missing data: NaN holes traced as boundaries, painted or excised
//		• Level selection: sensible automatic thresholds from the data range
//		• Rasterization: even-odd fills, strokes and labels onto image.RGBA
//
// ✨ Why choose isofield?
//
//   - Predictable – same grid, same options, byte-identical output
//   - Honest errors – sentinel errors for bad input, defined empty results
//     for degenerate grids, never a partial contour list
//   - Renderer-agnostic – the engine emits geometry; render/ is optional
//   - Pure data in, pure data out – no global state, calls are independent
//
// Everything is organized under three subpackages:
//
//	field/   — the Grid interface, Dense grids, analytic sampling
//	contour/ — level selection, tracing, fill assembly: the engine
//	render/  — optional rasterizer for contour lists
//
// Quick ASCII example:
//
//	    0───0───0
//	    │ ╱───╲ │
//	    0─│ 10│─0        one level at 5 yields a closed diamond
//	    │ ╲───╱ │        iso-line around the peak
//	    0───0───0
//
// Dive into the package docs of contour/ for the tracing rules, fill
// ordering and the NaN-region contract.
//
//	go get github.com/isofield/isofield
package isofield
