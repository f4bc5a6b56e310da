package softgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh vertex: a 2D texture coordinate and a 3D position.
type Vertex struct {
	UV  mgl32.Vec2
	Pos mgl32.Vec3
}

// Primitive selects how a Strip's vertices are assembled.
type Primitive uint8

const (
	// PrimQuadStrip assembles vertex pairs into quads:
	// (v0, v1, v3, v2), (v2, v3, v5, v4), ...
	PrimQuadStrip Primitive = iota
	// PrimLineLoop connects consecutive vertices and closes the loop.
	PrimLineLoop
)

// Strip is a run of vertices drawn as a single primitive.
type Strip struct {
	Prim     Primitive
	Vertices []Vertex
}

// Mesh is a list of strips in object space.
type Mesh struct {
	Strips []Strip
}

// Vertices returns the total number of vertices in m.
func (m *Mesh) Vertices() int {
	if m == nil {
		return 0
	}
	n := 0
	for i := range m.Strips {
		n += len(m.Strips[i].Vertices)
	}
	return n
}

// Sphere builds a UV sphere of the given radius centered at the origin.
//
// latitude is the number of quad strips from pole to pole and longitude the
// number of quads around each strip. Texture coordinates span [0,1] in both
// directions, u along longitude and v from the north pole (+Y) downward.
// Non-positive counts yield an empty mesh.
func Sphere(radius float32, longitude, latitude int) *Mesh {
	m := &Mesh{}
	if longitude <= 0 || latitude <= 0 {
		return m
	}
	m.Strips = make([]Strip, 0, latitude)
	for i := 0; i < latitude; i++ {
		theta1 := float64(i) / float64(latitude) * math.Pi
		theta2 := float64(i+1) / float64(latitude) * math.Pi
		v1 := float32(i) / float32(latitude)
		v2 := float32(i+1) / float32(latitude)

		vs := make([]Vertex, 0, 2*(longitude+1))
		for j := 0; j <= longitude; j++ {
			phi := float64(j) / float64(longitude) * 2 * math.Pi
			u := float32(j) / float32(longitude)
			vs = append(vs,
				Vertex{UV: mgl32.Vec2{u, v1}, Pos: spherePoint(radius, theta1, phi)},
				Vertex{UV: mgl32.Vec2{u, v2}, Pos: spherePoint(radius, theta2, phi)},
			)
		}
		m.Strips = append(m.Strips, Strip{Prim: PrimQuadStrip, Vertices: vs})
	}
	return m
}

func spherePoint(radius float32, theta, phi float64) mgl32.Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return mgl32.Vec3{
		radius * float32(st*cp),
		radius * float32(ct),
		radius * float32(st*sp),
	}
}

// Circle builds a line loop of the given radius in the XZ plane.
// segments below 3 yield an empty mesh.
func Circle(radius float32, segments int) *Mesh {
	m := &Mesh{}
	if segments < 3 {
		return m
	}
	vs := make([]Vertex, 0, segments)
	for i := 0; i < segments; i++ {
		s, c := math.Sincos(float64(i) / float64(segments) * 2 * math.Pi)
		vs = append(vs, Vertex{Pos: mgl32.Vec3{radius * float32(c), 0, radius * float32(s)}})
	}
	m.Strips = []Strip{{Prim: PrimLineLoop, Vertices: vs}}
	return m
}
