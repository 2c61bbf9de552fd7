package scribe

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a shared 1x1 white image for untextured ribbon triangles.
// Created lazily so importing the package never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// toRGBA converts a Color to ebiten's vertex color range helper type.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

type colorRGBA struct{ R, G, B, A uint8 }

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101,
		uint32(c.B) * 0x101, uint32(c.A) * 0x101
}

// Ribbon converts a stroke into a screen-space triangle ribbon: each stroke
// point becomes a vertex pair offset along the projected polyline's
// perpendicular, with the pair's separation driven by the stroke's width
// profile and perspective scale. Buffers grow to a high-water mark and are
// reused across frames.
type Ribbon struct {
	verts  []ebiten.Vertex
	inds   []uint16
	cumLen []float64 // cumulative 3D arc length, for width lookups
	px     []Vec3    // projected points: X, Y screen, Z carries the scale
}

// NewRibbon creates an empty ribbon builder.
func NewRibbon() *Ribbon {
	return &Ribbon{}
}

// Vertices returns the vertex buffer filled by the last Build call.
func (r *Ribbon) Vertices() []ebiten.Vertex {
	return r.verts
}

// Indices returns the index buffer filled by the last Build call.
func (r *Ribbon) Indices() []uint16 {
	return r.inds
}

// Build projects the stroke through cam and rebuilds the ribbon geometry.
// Reports false (empty buffers) when the stroke has fewer than two points or
// any point falls behind the near plane — a degenerate stroke must not
// render as a visible segment.
func (r *Ribbon) Build(st *Stroke, cam *Camera) bool {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	pts := st.Points
	n := len(pts)
	if n < 2 {
		return false
	}

	if cap(r.px) < n {
		r.px = make([]Vec3, n)
	}
	r.px = r.px[:n]
	for i, p := range pts {
		sx, sy, scale, visible := cam.WorldToScreen(p)
		if !visible {
			return false
		}
		r.px[i] = Vec3{X: sx, Y: sy, Z: scale}
	}

	// Cumulative 3D arc length parameterizes the width profile.
	if cap(r.cumLen) < n {
		r.cumLen = make([]float64, n)
	}
	r.cumLen = r.cumLen[:n]
	r.cumLen[0] = 0
	for i := 1; i < n; i++ {
		r.cumLen[i] = r.cumLen[i-1] + pts[i].Distance(pts[i-1])
	}
	total := r.cumLen[n-1]
	if total <= 0 {
		return false
	}

	numVerts := n * 2
	numInds := (n - 1) * 6
	if cap(r.verts) < numVerts {
		r.verts = make([]ebiten.Vertex, numVerts)
	}
	r.verts = r.verts[:numVerts]
	if cap(r.inds) < numInds {
		r.inds = make([]uint16, numInds)
	}
	r.inds = r.inds[:numInds]

	cr := float32(clamp01(st.Color.R))
	cg := float32(clamp01(st.Color.G))
	cb := float32(clamp01(st.Color.B))
	ca := float32(clamp01(st.Color.A))

	for i := 0; i < n; i++ {
		// Screen-space perpendicular normal, averaged at interior joints.
		var nx, ny float64
		if i == 0 {
			nx, ny = screenPerp(r.px[0], r.px[1])
		} else if i == n-1 {
			nx, ny = screenPerp(r.px[n-2], r.px[n-1])
		} else {
			nx0, ny0 := screenPerp(r.px[i-1], r.px[i])
			nx1, ny1 := screenPerp(r.px[i], r.px[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
		}

		// World width at this arc-length fraction, scaled into pixels by
		// the point's perspective scale.
		halfW := st.WidthAt(r.cumLen[i]/total) * r.px[i].Z / 2

		vi := i * 2
		r.verts[vi] = ebiten.Vertex{
			DstX:   float32(r.px[i].X + nx*halfW),
			DstY:   float32(r.px[i].Y + ny*halfW),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		r.verts[vi+1] = ebiten.Vertex{
			DstX:   float32(r.px[i].X - nx*halfW),
			DstY:   float32(r.px[i].Y - ny*halfW),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		r.inds[ii+0] = v
		r.inds[ii+1] = v + 1
		r.inds[ii+2] = v + 2
		r.inds[ii+3] = v + 1
		r.inds[ii+4] = v + 3
		r.inds[ii+5] = v + 2
	}

	return true
}

// Draw submits the ribbon's triangles to dst. No-op when the last Build
// produced no geometry.
func (r *Ribbon) Draw(dst *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), nil)
}

// screenPerp returns the unit left-perpendicular of the projected segment
// from a to b (screen-space X/Y only).
func screenPerp(a, b Vec3) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
