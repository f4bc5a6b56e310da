package softgl

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall describes one mesh submission.
type DrawCall struct {
	ModelView mgl32.Mat4
	Mesh      *Mesh

	// Texture is sampled when Textured is set and the texture is not blank.
	// Otherwise the primitive is filled with Tint.
	Texture  *Texture
	Textured bool

	// Tint modulates texels, or is the flat color of untextured primitives.
	Tint color.RGBA
}

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	ClearColor color.RGBA
	Depth      bool
	Projection mgl32.Mat4

	depthBuf []float32
	w, h     int
	scratch  []screenVertex
}

// NewRenderer creates a depth-tested renderer for a target of w×h pixels
// using DefaultProjection.
func NewRenderer(w, h int) *Renderer {
	r := &Renderer{
		ClearColor: Black,
		Depth:      true,
		Projection: DefaultProjection(),
	}
	r.resize(w, h)
	return r
}

func (r *Renderer) resize(w, h int) {
	r.w, r.h = w, h
	if !r.Depth || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// Begin clears the target and the depth buffer.
func (r *Renderer) Begin(t Target) {
	if r == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w != r.w || h != r.h || (r.Depth && len(r.depthBuf) != w*h) {
		r.resize(w, h)
	}
	t.Clear(r.ClearColor)
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Free releases the depth buffer.
func (r *Renderer) Free() {
	r.depthBuf = nil
	r.scratch = nil
	r.w, r.h = 0, 0
}

// Draw rasterizes dc into t. Begin must have been called for t.
func (r *Renderer) Draw(t Target, dc *DrawCall) {
	if r == nil || t == nil || dc == nil || dc.Mesh == nil || r.w <= 0 || r.h <= 0 {
		return
	}
	mvp := r.Projection.Mul4(dc.ModelView)
	tex := dc.Texture
	if !dc.Textured || tex.Blank() {
		tex = nil
	}
	for i := range dc.Mesh.Strips {
		s := &dc.Mesh.Strips[i]
		r.scratch = r.scratch[:0]
		for _, v := range s.Vertices {
			r.scratch = append(r.scratch, r.project(mvp, v))
		}
		sv := r.scratch
		switch s.Prim {
		case PrimQuadStrip:
			for k := 0; k+3 < len(sv); k += 2 {
				r.fillTriangle(t, &sv[k], &sv[k+1], &sv[k+2], tex, dc.Tint)
				r.fillTriangle(t, &sv[k+1], &sv[k+3], &sv[k+2], tex, dc.Tint)
			}
		case PrimLineLoop:
			for k := range sv {
				r.drawLine(t, &sv[k], &sv[(k+1)%len(sv)], dc.Tint)
			}
		}
	}
}

type screenVertex struct {
	x, y, z float32
	invW    float32
	// Texture coordinates, raw and divided by w.
	u, v   float32
	uw, vw float32
	ok     bool
}

// Vertices whose screen position lands this many viewport-halves away
// from the center are dropped with their primitive.
const guardBand = 16

// project maps v to screen space. There is no near/far plane clipping: a
// vertex outside the depth range is marked invalid and every triangle or
// line segment using it is dropped whole, so a body the camera zooms into
// disappears rather than being cut at the near plane.
func (r *Renderer) project(mvp mgl32.Mat4, v Vertex) screenVertex {
	p := mvp.Mul4x1(v.Pos.Vec4(1))
	w := p.W()
	// Trivial clip: anything on or behind the eye plane is dropped.
	if w <= 1e-6 {
		return screenVertex{}
	}
	iw := 1 / w
	nx, ny, nz := p.X()*iw, p.Y()*iw, p.Z()*iw
	if nz < -1 || nz > 1 || abs32(nx) > guardBand || abs32(ny) > guardBand {
		return screenVertex{}
	}
	return screenVertex{
		x:    (nx*0.5 + 0.5) * float32(r.w),
		y:    (1 - (ny*0.5 + 0.5)) * float32(r.h),
		z:    nz,
		invW: iw,
		u:    v.UV.X(),
		v:    v.UV.Y(),
		uw:   v.UV.X() * iw,
		vw:   v.UV.Y() * iw,
		ok:   true,
	}
}

func (r *Renderer) depthTest(x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*r.w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) fillTriangle(t Target, a, b, c *screenVertex, tex *Texture, tint color.RGBA) {
	if !a.ok || !b.ok || !c.ok {
		return
	}
	area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}
	minX := max(0, int(math.Floor(float64(min(a.x, b.x, c.x)))))
	minY := max(0, int(math.Floor(float64(min(a.y, b.y, c.y)))))
	maxX := min(r.w-1, int(math.Ceil(float64(max(a.x, b.x, c.x)))))
	maxY := min(r.h-1, int(math.Ceil(float64(max(a.y, b.y, c.y)))))
	if minX > maxX || minY > maxY {
		return
	}

	level := 0
	if tex != nil {
		level = mipLevel(a, b, c, area, tex)
	}
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFn(b.x, b.y, c.x, c.y, px, py)
			w1 := edgeFn(c.x, c.y, a.x, a.y, px, py)
			w2 := edgeFn(a.x, a.y, b.x, b.y, px, py)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			l0, l1, l2 := w0*invArea, w1*invArea, w2*invArea
			z := l0*a.z + l1*b.z + l2*c.z
			if !r.depthTest(x, y, z) {
				continue
			}
			if tex == nil {
				t.SetPixel(x, y, tint)
				continue
			}
			iw := l0*a.invW + l1*b.invW + l2*c.invW
			u := (l0*a.uw + l1*b.uw + l2*c.uw) / iw
			v := (l0*a.vw + l1*b.vw + l2*c.vw) / iw
			t.SetPixel(x, y, Modulate(tex.Sample(u, v, level), tint))
		}
	}
}

// mipLevel picks the level whose texel density best matches the
// triangle's footprint on screen.
func mipLevel(a, b, c *screenVertex, area float32, tex *Texture) int {
	tw, th := tex.Size(0)
	du1, dv1 := (b.u-a.u)*float32(tw), (b.v-a.v)*float32(th)
	du2, dv2 := (c.u-a.u)*float32(tw), (c.v-a.v)*float32(th)
	texels := abs32(du1*dv2 - du2*dv1)
	pixels := abs32(area)
	if texels <= pixels || pixels == 0 {
		return 0
	}
	lod := 0.5 * math.Log2(float64(texels/pixels))
	return min(int(lod), tex.Levels()-1)
}

func (r *Renderer) drawLine(t Target, a, b *screenVertex, c color.RGBA) {
	if !a.ok || !b.ok {
		return
	}
	x0, y0 := int(a.x), int(a.y)
	x1, y1 := int(b.x), int(b.y)
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	err := dx + dy
	for i := 0; ; i++ {
		if x0 >= 0 && y0 >= 0 && x0 < r.w && y0 < r.h {
			z := a.z
			if steps > 0 {
				f := float32(i) / float32(steps)
				z = a.z + (b.z-a.z)*f
			}
			if r.depthTest(x0, y0, z) {
				t.SetPixel(x0, y0, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y float32) float32 {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
