package solar

// Per-frame clock increments, in degrees.
const (
	PlanetStep = 0.5
	OrbitStep  = 0.1
)

// Clock is the animation clock.
//
// It counts completed frames and derives both rotation angles from that
// count, so after N frames the angles are exactly PlanetStep*N and
// OrbitStep*N. The angles grow without bound; rotation primitives reduce
// them.
type Clock struct {
	frames uint64
}

// Frames returns the number of completed frames.
func (c Clock) Frames() uint64 { return c.frames }

// PlanetRotation returns the axial spin clock.
func (c Clock) PlanetRotation() float64 { return PlanetStep * float64(c.frames) }

// OrbitRotation returns the orbit clock.
func (c Clock) OrbitRotation() float64 { return OrbitStep * float64(c.frames) }

// Advance moves the clock forward by one frame.
func (c *Clock) Advance() { c.frames++ }
