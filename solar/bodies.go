package solar

import (
	"fmt"
	"image/color"
)

// Body describes one celestial body's static parameters.
type Body struct {
	Name string

	// Distance from the Sun. Zero for the Sun.
	OrbitRadius float64
	Radius      float64

	// Orbital period in years. Divides the orbit clock, so outer
	// planets revolve more slowly. Zero for the Sun.
	OrbitPeriod float64

	// Relative axial spin speed. Negative rates spin retrograde.
	RotationRate float64

	// Sphere tessellation.
	Longitude int
	Latitude  int

	// Texture file name, relative to the texture directory.
	Texture string

	// Tint modulates the texture.
	Tint color.RGBA
}

// IsSun reports whether b is the static central body.
func (b Body) IsSun() bool { return b.OrbitRadius == 0 && b.OrbitPeriod == 0 }

// Tessellation used for every body.
const (
	Longitude = 40
	Latitude  = 40
)

// NumPlanets is the number of orbiting bodies.
const NumPlanets = 8

var (
	white  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	yellow = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
)

var sun = Body{
	Name:      "Sun",
	Radius:    1.0,
	Longitude: Longitude,
	Latitude:  Latitude,
	Texture:   "8k_sun.jpg",
	Tint:      yellow,
}

var planets = [NumPlanets]Body{
	{Name: "Mercury", OrbitRadius: 2.0, Radius: 0.2, OrbitPeriod: 0.24, RotationRate: 58.6, Texture: "2k_mercury.jpg"},
	{Name: "Venus", OrbitRadius: 3.0, Radius: 0.3, OrbitPeriod: 0.62, RotationRate: -243.0, Texture: "2k_venus.jpg"},
	{Name: "Earth", OrbitRadius: 4.0, Radius: 0.4, OrbitPeriod: 1.0, RotationRate: 1.0, Texture: "earth2k.jpg"},
	{Name: "Mars", OrbitRadius: 5.0, Radius: 0.3, OrbitPeriod: 1.88, RotationRate: 1.03, Texture: "2k_mars.jpg"},
	{Name: "Jupiter", OrbitRadius: 6.5, Radius: 0.7, OrbitPeriod: 11.86, RotationRate: 0.41, Texture: "2k_jupiter.jpg"},
	{Name: "Saturn", OrbitRadius: 8.0, Radius: 0.6, OrbitPeriod: 29.46, RotationRate: 0.45, Texture: "2k_saturn.jpg"},
	{Name: "Uranus", OrbitRadius: 9.5, Radius: 0.5, OrbitPeriod: 84.01, RotationRate: -0.72, Texture: "2k_uranus.jpg"},
	{Name: "Neptune", OrbitRadius: 11.0, Radius: 0.5, OrbitPeriod: 164.8, RotationRate: 0.67, Texture: "2k_neptune.jpg"},
}

func init() {
	for i := range planets {
		planets[i].Longitude = Longitude
		planets[i].Latitude = Latitude
		planets[i].Tint = white
	}
}

// Sun returns the central body.
func Sun() Body { return sun }

// Planets returns a copy of the planets, Mercury through Neptune.
func Planets() []Body {
	p := make([]Body, NumPlanets)
	copy(p, planets[:])
	return p
}

// Planet returns the i-th planet (0 is Mercury).
func Planet(i int) (Body, bool) {
	if i < 0 || i >= NumPlanets {
		return Body{}, false
	}
	return planets[i], true
}

// Validate checks the bodies for values that would break the animation:
// a central body that orbits, non-positive periods or radii on planets, and
// non-positive tessellation on any body.
func Validate(sun Body, planets []Body) error {
	if !sun.IsSun() {
		return fmt.Errorf("body %s: central body must have zero orbit radius and period", sun.Name)
	}
	if err := validTessellation(sun); err != nil {
		return err
	}
	if sun.Radius <= 0 {
		return fmt.Errorf("body %s: radius %v must be positive", sun.Name, sun.Radius)
	}
	for _, p := range planets {
		if err := validTessellation(p); err != nil {
			return err
		}
		if p.OrbitPeriod <= 0 {
			return fmt.Errorf("body %s: orbit period %v must be positive", p.Name, p.OrbitPeriod)
		}
		if p.Radius <= 0 {
			return fmt.Errorf("body %s: radius %v must be positive", p.Name, p.Radius)
		}
	}
	return nil
}

func validTessellation(b Body) error {
	if b.Longitude <= 0 || b.Latitude <= 0 {
		return fmt.Errorf("body %s: tessellation %dx%d must be positive", b.Name, b.Longitude, b.Latitude)
	}
	return nil
}
