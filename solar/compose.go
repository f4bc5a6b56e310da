package solar

import (
	"github.com/go-gl/mathgl/mgl32"

	"orrery/softgl"
)

// OrbitAngle returns the angle in degrees of b along its orbit.
func OrbitAngle(c Clock, b Body) float64 {
	if b.IsSun() {
		return 0
	}
	return c.OrbitRotation() / b.OrbitPeriod
}

// SpinAngle returns the angle in degrees of b about its own axis.
func SpinAngle(c Clock, b Body) float64 {
	if b.IsSun() {
		return 0
	}
	return c.PlanetRotation() * b.RotationRate
}

// BodyTransform returns the placement of b relative to the scene origin:
//
//	RotateY(orbit angle) ⋅ Translate(orbit radius, 0, 0) ⋅ RotateY(spin angle)
//
// The orbit rotation comes first so the translation runs along the rotated
// axis, and the spin comes last so the body turns about its own center.
// The Sun is static and gets the identity.
func BodyTransform(c Clock, b Body) mgl32.Mat4 {
	if b.IsSun() {
		return mgl32.Ident4()
	}
	m := softgl.RotateY(OrbitAngle(c, b))
	m = m.Mul4(softgl.Translate(b.OrbitRadius, 0, 0))
	return m.Mul4(softgl.RotateY(SpinAngle(c, b)))
}
