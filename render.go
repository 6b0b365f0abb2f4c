package stickr

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// quadIndices splits a quad indexed by PointKind into two triangles.
var quadIndices = []uint16{
	uint16(TopLeft), uint16(TopRight), uint16(BottomLeft),
	uint16(TopRight), uint16(BottomRight), uint16(BottomLeft),
}

// Renderer draws the element image stretched over the engine's quad, the
// same single-cell mesh the corner handles deform.
type Renderer struct {
	Image *ebiten.Image

	// Alpha multiplies the image. Zero is treated as fully opaque.
	Alpha float32

	// HandleColor is used by DrawHandles; nil selects a translucent white.
	HandleColor color.Color

	verts [numPointKinds]ebiten.Vertex
}

// NewRenderer creates a renderer for img.
func NewRenderer(img *ebiten.Image) *Renderer {
	return &Renderer{Image: img}
}

// Draw renders the image onto dst with its corners at q.
func (r *Renderer) Draw(dst *ebiten.Image, q Quad) {
	if r.Image == nil {
		return
	}
	fillQuadVertices(r.verts[:], q, r.Image.Bounds(), r.alpha())
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	dst.DrawTriangles(r.verts[:], quadIndices, r.Image, op)
}

// DrawHandles renders a dot for each handle.
func (r *Renderer) DrawHandles(dst *ebiten.Image, handles []*Handle) {
	clr := r.HandleColor
	if clr == nil {
		clr = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	}
	for _, h := range handles {
		radius := float32(h.Radius / 3)
		if h.Active() {
			radius = float32(h.Radius / 2)
		}
		vector.DrawFilledCircle(dst, float32(h.Pos.X), float32(h.Pos.Y), radius, clr, true)
	}
}

func (r *Renderer) alpha() float32 {
	if r.Alpha == 0 {
		return 1
	}
	return r.Alpha
}

// fillQuadVertices writes the four corner vertices of q into dst, mapping
// each corner to the matching corner of the source rectangle. Colors are
// premultiplied by alpha.
func fillQuadVertices(dst []ebiten.Vertex, q Quad, src image.Rectangle, alpha float32) {
	x0, y0 := float32(src.Min.X), float32(src.Min.Y)
	x1, y1 := float32(src.Max.X), float32(src.Max.Y)
	corners := [numPointKinds][2]float32{
		TopLeft:     {x0, y0},
		TopRight:    {x1, y0},
		BottomLeft:  {x0, y1},
		BottomRight: {x1, y1},
	}
	for k := range dst[:numPointKinds] {
		dst[k] = ebiten.Vertex{
			DstX:   float32(q[k].X),
			DstY:   float32(q[k].Y),
			SrcX:   corners[k][0],
			SrcY:   corners[k][1],
			ColorR: alpha,
			ColorG: alpha,
			ColorB: alpha,
			ColorA: alpha,
		}
	}
}
