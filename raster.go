package polynest

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/jbeda/geom"
)

// worldView is the fixed world-space view box. The outermost polygon has
// radius 1, so a small margin keeps its stroke inside the image.
var worldView = geom.Rect{
	Min: geom.Coord{X: -1.1, Y: -1.1},
	Max: geom.Coord{X: 1.1, Y: 1.1},
}

// Canvas rasterizes polygons into a CPU image. It needs no GPU or window,
// which is what makes headless export possible. A Canvas is not safe for
// concurrent use; the exporter gives each worker its own.
type Canvas struct {
	img  *image.NRGBA
	view geom.Rect

	// scratch buffer for scanline intersections
	xs []float64
}

// NewCanvas creates a canvas of the given pixel size mapping the world view
// box onto it. Y is flipped so world +Y points up.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:  image.NewNRGBA(image.Rect(0, 0, w, h)),
		view: worldView,
	}
}

// Image returns the backing image. The canvas keeps ownership; callers that
// retain frames across renders must copy it.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Clear fills the whole canvas with the given color, discarding alpha
// blending (the background is opaque by definition).
func (c *Canvas) Clear(bg Color) {
	px := bg.NRGBA()
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = px.R
			row[i+1] = px.G
			row[i+2] = px.B
			row[i+3] = px.A
		}
	}
}

// project maps a world coordinate to pixel space.
func (c *Canvas) project(p geom.Coord) (float64, float64) {
	b := c.img.Bounds()
	x := (p.X - c.view.Min.X) / c.view.Width() * float64(b.Dx())
	y := (c.view.Max.Y - p.Y) / c.view.Height() * float64(b.Dy())
	return x, y
}

// RenderFrame draws one frame: white background, every active polygon filled
// with its level color and outlined in the boundary color. Inactive slots
// have no pixels to clear on a freshly-cleared canvas.
func (c *Canvas) RenderFrame(fr FrameResult, cfg Config) {
	c.Clear(ColorWhite)
	for _, poly := range fr.Polygons {
		c.FillPolygon(poly.Points, cfg.LevelColor(poly.Level))
		c.StrokePolygon(poly.Points, ColorBlack)
	}
}

// FillPolygon scanline-fills a closed convex vertex loop. Points containing
// NaN are skipped entirely, matching the convention that NaN geometry is
// invisible.
func (c *Canvas) FillPolygon(pts []geom.Coord, fill Color) {
	if len(pts) < 3 {
		return
	}

	n := len(pts)
	sx := make([]float64, n)
	sy := make([]float64, n)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range pts {
		x, y := c.project(p)
		if math.IsNaN(x) || math.IsNaN(y) {
			return
		}
		sx[i], sy[i] = x, y
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	b := c.img.Bounds()
	px := fill.NRGBA()
	y0 := int(math.Max(math.Floor(minY), float64(b.Min.Y)))
	y1 := int(math.Min(math.Ceil(maxY), float64(b.Max.Y-1)))

	for y := y0; y <= y1; y++ {
		cy := float64(y) + 0.5
		c.xs = c.xs[:0]
		for i := 0; i < n-1; i++ {
			ya, yb := sy[i], sy[i+1]
			if ya == yb {
				continue
			}
			// Half-open span so shared vertices count once.
			if (cy >= ya && cy < yb) || (cy >= yb && cy < ya) {
				t := (cy - ya) / (yb - ya)
				c.xs = append(c.xs, sx[i]+t*(sx[i+1]-sx[i]))
			}
		}
		sort.Float64s(c.xs)
		for i := 0; i+1 < len(c.xs); i += 2 {
			x0 := int(math.Max(math.Ceil(c.xs[i]-0.5), float64(b.Min.X)))
			x1 := int(math.Min(math.Floor(c.xs[i+1]-0.5), float64(b.Max.X-1)))
			for x := x0; x <= x1; x++ {
				c.blend(x, y, px)
			}
		}
	}
}

// StrokePolygon draws the 1px outline of a closed vertex loop.
func (c *Canvas) StrokePolygon(pts []geom.Coord, stroke Color) {
	if len(pts) < 2 {
		return
	}
	px := stroke.NRGBA()
	for i := 0; i < len(pts)-1; i++ {
		x0, y0 := c.project(pts[i])
		x1, y1 := c.project(pts[i+1])
		if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
			return
		}
		c.line(x0, y0, x1, y1, px)
	}
}

// line draws a DDA line in pixel space.
func (c *Canvas) line(x0, y0, x1, y1 float64, px color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.blend(int(x0+dx*t), int(y0+dy*t), px)
	}
}

// blend composites a straight-alpha pixel over the canvas (source-over).
func (c *Canvas) blend(x, y int, px color.NRGBA) {
	b := c.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := c.img.PixOffset(x, y)
	if px.A == 0xff {
		c.img.Pix[i] = px.R
		c.img.Pix[i+1] = px.G
		c.img.Pix[i+2] = px.B
		c.img.Pix[i+3] = 0xff
		return
	}

	sa := float64(px.A) / 255
	da := float64(c.img.Pix[i+3]) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3] = 0, 0, 0, 0
		return
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	c.img.Pix[i] = mix(px.R, c.img.Pix[i])
	c.img.Pix[i+1] = mix(px.G, c.img.Pix[i+1])
	c.img.Pix[i+2] = mix(px.B, c.img.Pix[i+2])
	c.img.Pix[i+3] = uint8(oa*255 + 0.5)
}
