package solar

import (
	"strings"
	"testing"
)

func TestPlanetsTable(t *testing.T) {
	want := []struct {
		name                          string
		orbit, radius, period, rotate float64
		texture                       string
	}{
		{"Mercury", 2.0, 0.2, 0.24, 58.6, "2k_mercury.jpg"},
		{"Venus", 3.0, 0.3, 0.62, -243.0, "2k_venus.jpg"},
		{"Earth", 4.0, 0.4, 1.0, 1.0, "earth2k.jpg"},
		{"Mars", 5.0, 0.3, 1.88, 1.03, "2k_mars.jpg"},
		{"Jupiter", 6.5, 0.7, 11.86, 0.41, "2k_jupiter.jpg"},
		{"Saturn", 8.0, 0.6, 29.46, 0.45, "2k_saturn.jpg"},
		{"Uranus", 9.5, 0.5, 84.01, -0.72, "2k_uranus.jpg"},
		{"Neptune", 11.0, 0.5, 164.8, 0.67, "2k_neptune.jpg"},
	}

	got := Planets()
	if len(got) != len(want) {
		t.Fatalf("len(Planets()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.Name != w.name || p.OrbitRadius != w.orbit || p.Radius != w.radius ||
			p.OrbitPeriod != w.period || p.RotationRate != w.rotate || p.Texture != w.texture {
			t.Fatalf("planet %d\nhave %+v\nwant %+v", i, p, w)
		}
		if p.Longitude != 40 || p.Latitude != 40 {
			t.Fatalf("%s tessellation = %dx%d, want 40x40", p.Name, p.Longitude, p.Latitude)
		}
		if p.Tint != white {
			t.Fatalf("%s tint = %v, want white", p.Name, p.Tint)
		}
		if p.IsSun() {
			t.Fatalf("%s reported as the Sun", p.Name)
		}
	}
}

func TestSun(t *testing.T) {
	s := Sun()
	if !s.IsSun() {
		t.Fatal("Sun().IsSun() = false")
	}
	if s.Radius != 1.0 || s.Longitude != 40 || s.Latitude != 40 {
		t.Fatalf("unexpected sun %+v", s)
	}
	if s.Texture != "8k_sun.jpg" {
		t.Fatalf("sun texture = %q", s.Texture)
	}
	if s.Tint != yellow {
		t.Fatalf("sun tint = %v, want %v", s.Tint, yellow)
	}
}

func TestPlanetsReturnsCopy(t *testing.T) {
	p := Planets()
	p[0].OrbitRadius = 100
	p[0].Name = "Vulcan"

	again, ok := Planet(0)
	if !ok {
		t.Fatal("Planet(0) ok = false")
	}
	if again.Name != "Mercury" || again.OrbitRadius != 2.0 {
		t.Fatalf("table mutated through Planets(): %+v", again)
	}
}

func TestPlanetIndex(t *testing.T) {
	for _, tc := range []struct {
		i    int
		ok   bool
		name string
	}{
		{-1, false, ""},
		{0, true, "Mercury"},
		{2, true, "Earth"},
		{7, true, "Neptune"},
		{8, false, ""},
	} {
		p, ok := Planet(tc.i)
		if ok != tc.ok || p.Name != tc.name {
			t.Fatalf("Planet(%d) = (%q, %v), want (%q, %v)", tc.i, p.Name, ok, tc.name, tc.ok)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Sun(), Planets()); err != nil {
		t.Fatalf("Validate(default) = %v", err)
	}

	for _, tc := range []struct {
		name   string
		mutate func(sun *Body, planets []Body)
		body   string
	}{
		{"zero period", func(_ *Body, p []Body) { p[3].OrbitPeriod = 0 }, "Mars"},
		{"negative period", func(_ *Body, p []Body) { p[4].OrbitPeriod = -1 }, "Jupiter"},
		{"zero radius", func(_ *Body, p []Body) { p[0].Radius = 0 }, "Mercury"},
		{"zero longitude", func(_ *Body, p []Body) { p[7].Longitude = 0 }, "Neptune"},
		{"sun latitude", func(s *Body, _ []Body) { s.Latitude = -4 }, "Sun"},
		{"sun radius", func(s *Body, _ []Body) { s.Radius = 0 }, "Sun"},
		{"orbiting sun", func(s *Body, _ []Body) { s.OrbitRadius = 1 }, "Sun"},
		{"sun with period", func(s *Body, _ []Body) { s.OrbitPeriod = 2 }, "Sun"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, p := Sun(), Planets()
			tc.mutate(&s, p)
			err := Validate(s, p)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.body) {
				t.Fatalf("error %q does not name %s", err, tc.body)
			}
		})
	}
}
