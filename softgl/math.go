package softgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Axes used by the scene.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
)

// NormDeg reduces an angle in degrees into the open interval (-360, 360).
// The sign of deg is kept.
func NormDeg(deg float64) float64 { return math.Mod(deg, 360) }

// Radians converts deg to float32 radians after reducing it modulo 360.
func Radians(deg float64) float32 {
	return float32(NormDeg(deg) * math.Pi / 180)
}

// Rotate returns a rotation of deg degrees about axis.
// Positive angles rotate counter-clockwise when looking down the axis.
func Rotate(deg float64, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(Radians(deg), axis.Normalize())
}

// RotateX returns a rotation of deg degrees about the X axis.
func RotateX(deg float64) mgl32.Mat4 { return mgl32.HomogRotate3DX(Radians(deg)) }

// RotateY returns a rotation of deg degrees about the Y axis.
func RotateY(deg float64) mgl32.Mat4 { return mgl32.HomogRotate3DY(Radians(deg)) }

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) mgl32.Mat4 {
	return mgl32.Translate3D(float32(x), float32(y), float32(z))
}

// Perspective returns a perspective projection with a vertical field of
// view of fovDeg degrees.
func Perspective(fovDeg, aspect, near, far float64) mgl32.Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return mgl32.Perspective(Radians(fovDeg), float32(aspect), float32(near), float32(far))
}

// Projection constants of the viewer.
const (
	FOVDeg = 45.0
	Aspect = 800.0 / 600.0
	ZNear  = 0.1
	ZFar   = 100.0
)

// DefaultProjection returns the fixed projection used by the viewer.
func DefaultProjection() mgl32.Mat4 { return Perspective(FOVDeg, Aspect, ZNear, ZFar) }

// Stack is a transform stack in the style of a fixed-function matrix stack.
//
// Compose operations post-multiply the top matrix, so the transform issued
// last is applied first to local geometry.
type Stack struct {
	s []mgl32.Mat4
}

// NewStack returns a stack whose only element is base.
func NewStack(base mgl32.Mat4) *Stack {
	return &Stack{s: []mgl32.Mat4{base}}
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 { return s.s[len(s.s)-1] }

func (s *Stack) depth() int { return len(s.s) }

// Push duplicates the top matrix.
func (s *Stack) Push() { s.s = append(s.s, s.Top()) }

// Pop discards the top matrix. The bottom element is never removed.
func (s *Stack) Pop() {
	if len(s.s) > 1 {
		s.s = s.s[:len(s.s)-1]
	}
}

// Mul sets the top matrix to top ⋅ m.
func (s *Stack) Mul(m mgl32.Mat4) {
	i := len(s.s) - 1
	s.s[i] = s.s[i].Mul4(m)
}

// Translate composes a translation onto the top matrix.
func (s *Stack) Translate(x, y, z float64) { s.Mul(Translate(x, y, z)) }

// Rotate composes a rotation of deg degrees about axis onto the top matrix.
func (s *Stack) Rotate(deg float64, axis mgl32.Vec3) { s.Mul(Rotate(deg, axis)) }
