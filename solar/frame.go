package solar

import (
	"github.com/go-gl/mathgl/mgl32"

	"orrery/softgl"
)

// DrawKind distinguishes body spheres from orbit paths.
type DrawKind uint8

const (
	DrawBody DrawKind = iota
	DrawOrbit
)

func (k DrawKind) String() string {
	switch k {
	case DrawBody:
		return "body"
	case DrawOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// SunSlot is the Slot of the Sun. Planet i uses slot i+1.
const SunSlot = 0

// Draw is one entry of the frame's draw list.
type Draw struct {
	Kind DrawKind
	Slot int
	Body Body

	// ModelView is the camera transform composed with the body placement.
	// Orbit paths are centered on the Sun, so theirs is the camera
	// transform alone.
	ModelView mgl32.Mat4
}

// Frame is the retained draw list for one animation step.
type Frame struct {
	Seq   uint64
	View  mgl32.Mat4
	Draws []Draw
}

// Frame builds the draw list for the current clock. The Sun comes first;
// each planet follows its orbit path.
func (s *SceneState) Frame() Frame {
	view := CameraTransform(s.Camera, s.Clock.OrbitRotation())
	f := Frame{
		Seq:   s.Clock.Frames(),
		View:  view,
		Draws: make([]Draw, 0, 1+2*len(s.Planets)),
	}

	// The Sun is static: its model-view is the camera transform.
	st := softgl.NewStack(view)
	f.Draws = append(f.Draws, Draw{Kind: DrawBody, Slot: SunSlot, Body: s.Sun, ModelView: st.Top()})

	for i, p := range s.Planets {
		slot := i + 1
		f.Draws = append(f.Draws, Draw{Kind: DrawOrbit, Slot: slot, Body: p, ModelView: st.Top()})

		st.Push()
		st.Rotate(OrbitAngle(s.Clock, p), softgl.AxisY)
		st.Translate(p.OrbitRadius, 0, 0)
		st.Rotate(SpinAngle(s.Clock, p), softgl.AxisY)
		f.Draws = append(f.Draws, Draw{Kind: DrawBody, Slot: slot, Body: p, ModelView: st.Top()})
		st.Pop()
	}
	return f
}
