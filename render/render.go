package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/isofield/isofield/contour"
)

// Options configure rasterization of a contour list.
type Options struct {
	Width       int         // output width in pixels
	Height      int         // output height in pixels
	Background  color.Color // canvas color under all contours
	Palette     Palette     // level→color ramp for filled regions
	StrokeColor color.Color // iso-line color
	StrokeWidth float64     // iso-line width in pixels
	NaNColor    color.Color // fill color for undefined regions
	Labels      bool        // annotate iso-lines with their level
	LabelColor  color.Color // annotation color
}

// DefaultOptions returns the rendering defaults: an 800×600 white
// canvas, the default palette, thin black iso-lines, gray undefined
// regions, labels off.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Background:  color.White,
		Palette:     DefaultPalette(),
		StrokeColor: color.RGBA{A: 255},
		StrokeWidth: 1.5,
		NaNColor:    color.RGBA{R: 190, G: 190, B: 190, A: 255},
		Labels:      false,
		LabelColor:  color.RGBA{R: 60, G: 60, B: 60, A: 255},
	}
}

// Draw rasterizes contours onto a fresh image.
//
// The contour list is painted in order: fills first as they arrive
// (Generate emits them container-first, so later regions land on top),
// each as its outer ring plus hole rings under the even-odd rule, then
// strokes, then optional level labels. The world window [x0,x1]×[y0,y1]
// maps onto the full image; either axis may be reversed (x0 > x1). A
// degenerate window or non-positive dimensions fall back to defaults
// where possible, or to a plain background image.
// Complexity: O(P) path construction plus raster cost.
func Draw(cs []contour.Contour, x0, x1, y0, y1 float64, opts Options) *image.RGBA {
	if opts.Width < 1 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Height < 1 {
		opts.Height = DefaultOptions().Height
	}
	if opts.Background == nil {
		opts.Background = DefaultOptions().Background
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if x1 == x0 || y1 == y0 {
		return img
	}

	// World→pixel transform. Raster y grows downward, world y upward,
	// hence the flip; a reversed world axis only changes the sign of
	// the scale.
	sx := float64(opts.Width) / (x1 - x0)
	sy := float64(opts.Height) / (y1 - y0)
	toPx := func(p contour.Point) (float64, float64) {
		return (p.X - x0) * sx, float64(opts.Height) - (p.Y-y0)*sy
	}

	lo, hi := levelRange(cs)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	gc.SetLineWidth(opts.StrokeWidth)
	gc.SetStrokeColor(opts.StrokeColor)

	tracePath := func(pts []contour.Point, closed bool) {
		px, py := toPx(pts[0])
		gc.MoveTo(px, py)
		for _, p := range pts[1:] {
			px, py = toPx(p)
			gc.LineTo(px, py)
		}
		if closed {
			gc.Close()
		}
	}

	for _, c := range cs {
		if len(c.Points) == 0 {
			continue
		}
		if c.Fill {
			fillColor := color.Color(opts.NaNColor)
			if !math.IsNaN(c.Level) {
				fillColor = opts.Palette.Color(c.Level, lo, hi)
			}
			gc.SetFillColor(fillColor)
			gc.BeginPath()
			tracePath(c.Points, true)
			for _, h := range c.Holes {
				tracePath(h, true)
			}
			gc.Fill()

			continue
		}
		gc.BeginPath()
		tracePath(c.Points, c.Closed)
		gc.Stroke()
	}

	if opts.Labels {
		drawLabels(img, cs, toPx, opts.LabelColor)
	}

	return img
}

// levelRange scans the contour list for the extent of well-defined
// levels, anchoring the palette ramp. Complexity: O(len(cs)).
func levelRange(cs []contour.Contour) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range cs {
		if math.IsNaN(c.Level) {
			continue
		}
		lo = math.Min(lo, c.Level)
		hi = math.Max(hi, c.Level)
	}
	if lo > hi {
		return 0, 0
	}

	return lo, hi
}

// drawLabels annotates each leveled iso-line at one of its interior
// vertices. Undefined-region boundaries carry no number.
func drawLabels(img *image.RGBA, cs []contour.Contour,
	toPx func(contour.Point) (float64, float64), col color.Color) {
	src := image.NewUniform(col)
	for _, c := range cs {
		if c.Fill || math.IsNaN(c.Level) || len(c.Points) == 0 {
			continue
		}
		px, py := toPx(c.Points[len(c.Points)/2])
		d := &font.Drawer{
			Dst:  img,
			Src:  src,
			Face: basicfont.Face7x13,
			Dot:  fixed.Point26_6{X: fixed.I(int(px)), Y: fixed.I(int(py))},
		}
		d.DrawString(fmt.Sprintf("%.3g", c.Level))
	}
}
