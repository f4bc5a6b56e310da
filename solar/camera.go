package solar

import (
	"github.com/go-gl/mathgl/mgl32"

	"orrery/softgl"
)

// Camera constants.
const (
	InitialZoom = -25.0

	KeyStep    = 0.5
	ScrollStep = 1.0

	// Fixed downward tilt, in degrees.
	TiltDeg = 20.0

	// Global scene spin as a fraction of the orbit clock.
	SceneSpinRate = 0.1
)

// Camera is the user-controlled view state. Zoom and pan are unbounded.
type Camera struct {
	Zoom float64
	PanX float64
}

// NewCamera returns the initial camera.
func NewCamera() Camera { return Camera{Zoom: InitialZoom} }

// Keys is the arrow-key state sampled once per frame.
type Keys struct {
	Up, Down, Left, Right bool
}

// Scroll applies one discrete scroll event. Only the sign of dy matters.
func (c *Camera) Scroll(dy float64) {
	switch {
	case dy > 0:
		c.Zoom += ScrollStep
	case dy < 0:
		c.Zoom -= ScrollStep
	}
}

// Keys applies one frame's worth of held keys.
// Up uses the same sign as a positive scroll.
func (c *Camera) Keys(k Keys) {
	if k.Up {
		c.Zoom += KeyStep
	}
	if k.Down {
		c.Zoom -= KeyStep
	}
	if k.Left {
		c.PanX -= KeyStep
	}
	if k.Right {
		c.PanX += KeyStep
	}
}

// CameraTransform returns the view transform applied to the whole scene:
//
//	Translate(PanX, 0, Zoom) ⋅ RotateX(TiltDeg) ⋅ RotateY(orbitRotation ⋅ SceneSpinRate)
func CameraTransform(c Camera, orbitRotation float64) mgl32.Mat4 {
	st := softgl.NewStack(mgl32.Ident4())
	st.Translate(c.PanX, 0, c.Zoom)
	st.Rotate(TiltDeg, softgl.AxisX)
	st.Rotate(orbitRotation*SceneSpinRate, softgl.AxisY)
	return st.Top()
}
