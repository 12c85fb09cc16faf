package polynest

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jbeda/geom"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Untextured polygon meshes sample it; color comes from the vertices.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// meshSlot is one nesting level's persistent drawable: a fan-triangulated
// fill mesh plus a ribbon mesh for the outline. Buffers grow to a high-water
// mark and are reused across frames; an inactive slot has empty buffers.
type meshSlot struct {
	fillVerts []ebiten.Vertex
	fillInds  []uint16
	edgeVerts []ebiten.Vertex
	edgeInds  []uint16
	color     Color
}

// Renderer draws FrameResults onto an ebiten screen. It holds one mesh slot
// per allowed nesting level, mirroring the persistent-handle model: applying
// a frame rewrites the active slots and collapses the inactive tail, so a
// stale deep polygon from a previous frame can never linger.
type Renderer struct {
	cfg  Config
	w, h int
	view geom.Rect

	slots []meshSlot

	// Background fills the screen before the stack is drawn. Default white.
	Background Color

	// EdgeColor and EdgeWidth style the polygon outlines. Defaults: black, 1px.
	EdgeColor Color
	EdgeWidth float64

	ptsBuf []geom.Coord // projected screen-space points, reused per polygon
}

// NewRenderer creates a renderer for a validated config targeting a w x h
// pixel screen. Slot fill colors are fixed for the whole run: the two
// configured colors alternate by level and the deepest slot is the boundary
// color.
func NewRenderer(cfg Config, w, h int) *Renderer {
	slots := make([]meshSlot, cfg.MaxPolygons)
	for i := range slots {
		slots[i].color = cfg.LevelColor(i)
	}
	return &Renderer{
		cfg:        cfg,
		w:          w,
		h:          h,
		view:       worldView,
		slots:      slots,
		Background: ColorWhite,
		EdgeColor:  ColorBlack,
		EdgeWidth:  1,
	}
}

// project maps a world coordinate to screen pixels.
func (r *Renderer) project(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: (p.X - r.view.Min.X) / r.view.Width() * float64(r.w),
		Y: (r.view.Max.Y - p.Y) / r.view.Height() * float64(r.h),
	}
}

// ApplyFrame rebuilds the slot meshes for one frame. Safe to call every tick;
// buffers are reused in place.
func (r *Renderer) ApplyFrame(fr FrameResult) {
	for i := range r.slots {
		s := &r.slots[i]
		if i < len(fr.Polygons) {
			r.buildSlot(s, fr.Polygons[i].Points)
		} else {
			s.fillVerts = s.fillVerts[:0]
			s.fillInds = s.fillInds[:0]
			s.edgeVerts = s.edgeVerts[:0]
			s.edgeInds = s.edgeInds[:0]
		}
	}
}

// Draw renders the current slot meshes. Slots draw in nesting order, each
// fill followed by its outline, so inner polygons cover outer ones the way
// the stack nests.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.Background.NRGBA())
	white := ensureWhitePixel()
	var op ebiten.DrawTrianglesOptions
	for i := range r.slots {
		s := &r.slots[i]
		if len(s.fillInds) > 0 {
			screen.DrawTriangles(s.fillVerts, s.fillInds, white, &op)
		}
		if len(s.edgeInds) > 0 {
			screen.DrawTriangles(s.edgeVerts, s.edgeInds, white, &op)
		}
	}
}

// buildSlot projects a closed vertex loop to screen space and regenerates the
// slot's fill fan and outline ribbon. Loops containing NaN collapse the slot.
func (r *Renderer) buildSlot(s *meshSlot, pts []geom.Coord) {
	n := len(pts) - 1 // distinct vertices; pts repeats the first at the end
	if n < 3 {
		s.fillVerts, s.fillInds = s.fillVerts[:0], s.fillInds[:0]
		s.edgeVerts, s.edgeInds = s.edgeVerts[:0], s.edgeInds[:0]
		return
	}

	if cap(r.ptsBuf) < n {
		r.ptsBuf = make([]geom.Coord, n)
	}
	r.ptsBuf = r.ptsBuf[:n]
	for i := 0; i < n; i++ {
		p := r.project(pts[i])
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			s.fillVerts, s.fillInds = s.fillVerts[:0], s.fillInds[:0]
			s.edgeVerts, s.edgeInds = s.edgeVerts[:0], s.edgeInds[:0]
			return
		}
		r.ptsBuf[i] = p
	}

	s.buildFill(r.ptsBuf)
	s.buildEdge(r.ptsBuf, r.EdgeColor, r.EdgeWidth)
}

// buildFill fan-triangulates the convex screen-space loop: N vertices,
// 3*(N-2) indices, vertex 0 as the hub. Colors are premultiplied at
// submission.
func (s *meshSlot) buildFill(pts []geom.Coord) {
	n := len(pts)
	numInds := (n - 2) * 3

	if cap(s.fillVerts) < n {
		s.fillVerts = make([]ebiten.Vertex, n)
	}
	s.fillVerts = s.fillVerts[:n]
	if cap(s.fillInds) < numInds {
		s.fillInds = make([]uint16, numInds)
	}
	s.fillInds = s.fillInds[:numInds]

	ca := float32(s.color.A)
	cr := float32(s.color.R) * ca
	cg := float32(s.color.G) * ca
	cb := float32(s.color.B) * ca

	for i, p := range pts {
		s.fillVerts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	for i := 0; i < n-2; i++ {
		s.fillInds[i*3+0] = 0
		s.fillInds[i*3+1] = uint16(i + 1)
		s.fillInds[i*3+2] = uint16(i + 2)
	}
}

// buildEdge generates a closed ribbon along the loop: two vertices per point
// offset along the averaged perpendicular of the adjacent segments, with the
// first pair repeated to close the ring. N+1 vertex pairs, 6*N indices.
func (s *meshSlot) buildEdge(pts []geom.Coord, edge Color, width float64) {
	n := len(pts)
	numVerts := (n + 1) * 2
	numInds := n * 6

	if cap(s.edgeVerts) < numVerts {
		s.edgeVerts = make([]ebiten.Vertex, numVerts)
	}
	s.edgeVerts = s.edgeVerts[:numVerts]
	if cap(s.edgeInds) < numInds {
		s.edgeInds = make([]uint16, numInds)
	}
	s.edgeInds = s.edgeInds[:numInds]

	ca := float32(edge.A)
	cr := float32(edge.R) * ca
	cg := float32(edge.G) * ca
	cb := float32(edge.B) * ca
	halfW := width / 2

	for i := 0; i <= n; i++ {
		j := i % n
		prev := pts[(j+n-1)%n]
		cur := pts[j]
		next := pts[(j+1)%n]

		nx0, ny0 := perpendicular(prev, cur)
		nx1, ny1 := perpendicular(cur, next)
		nx, ny := nx0+nx1, ny0+ny1
		ln := math.Sqrt(nx*nx + ny*ny)
		if ln > 1e-10 {
			nx /= ln
			ny /= ln
		}

		vi := i * 2
		s.edgeVerts[vi] = ebiten.Vertex{
			DstX: float32(cur.X + nx*halfW), DstY: float32(cur.Y + ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		s.edgeVerts[vi+1] = ebiten.Vertex{
			DstX: float32(cur.X - nx*halfW), DstY: float32(cur.Y - ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	for i := 0; i < n; i++ {
		ii := i * 6
		v := uint16(i * 2)
		s.edgeInds[ii+0] = v
		s.edgeInds[ii+1] = v + 1
		s.edgeInds[ii+2] = v + 2
		s.edgeInds[ii+3] = v + 1
		s.edgeInds[ii+4] = v + 3
		s.edgeInds[ii+5] = v + 2
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b geom.Coord) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
