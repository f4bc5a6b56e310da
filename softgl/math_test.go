package softgl

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormDeg(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{720, 0},
		{370, 10},
		{-30, -30},
		{-2430, -270},
	} {
		if got := NormDeg(tc.in); got != tc.want {
			t.Fatalf("NormDeg(%v)\nhave %v\nwant %v", tc.in, got, tc.want)
		}
	}
}

func TestRotateLargeAngles(t *testing.T) {
	const eps = 1e-5
	if !near(RotateY(-2430), RotateY(90), eps) {
		t.Fatalf("RotateY(-2430) should equal RotateY(90)\nhave %v\nwant %v", RotateY(-2430), RotateY(90))
	}
	if !near(RotateY(-2430), RotateY(-270), eps) {
		t.Fatal("RotateY(-2430) should equal RotateY(-270)")
	}
	if !near(RotateY(360*1e9+45), RotateY(45), eps) {
		t.Fatal("RotateY should reduce huge angles before converting to float32")
	}
	if !near(RotateX(20), Rotate(20, AxisX), eps) {
		t.Fatal("RotateX and Rotate(AxisX) mismatch")
	}
}

func TestStack(t *testing.T) {
	s := NewStack(mgl32.Ident4())
	s.Push()
	s.Translate(1, 2, 3)
	if s.depth() != 2 {
		t.Fatalf("Stack.depth\nhave %d\nwant 2", s.depth())
	}
	if s.Top() != mgl32.Translate3D(1, 2, 3) {
		t.Fatalf("Stack.Translate\nhave %v\nwant %v", s.Top(), mgl32.Translate3D(1, 2, 3))
	}
	s.Pop()
	if s.Top() != mgl32.Ident4() {
		t.Fatal("Stack.Pop should restore the previous matrix")
	}
	s.Pop()
	if s.depth() != 1 {
		t.Fatal("Stack.Pop should never remove the bottom element")
	}
}

func TestStackComposeOrder(t *testing.T) {
	// Rotate then translate: the translation moves along the rotated axis.
	s := NewStack(mgl32.Ident4())
	s.Rotate(90, AxisY)
	s.Translate(2, 0, 0)
	p := s.Top().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !nearV4(p, mgl32.Vec4{0, 0, -2, 1}, 1e-5) {
		t.Fatalf("R*T*origin\nhave %v\nwant [0 0 -2 1]", p)
	}

	// Translate then rotate: the rotation happens about the local center.
	s = NewStack(mgl32.Ident4())
	s.Translate(2, 0, 0)
	s.Rotate(90, AxisY)
	p = s.Top().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !nearV4(p, mgl32.Vec4{2, 0, 0, 1}, 1e-5) {
		t.Fatalf("T*R*origin\nhave %v\nwant [2 0 0 1]", p)
	}
}

func TestDefaultProjection(t *testing.T) {
	m := DefaultProjection()
	if m == mgl32.Ident4() {
		t.Fatal("DefaultProjection unexpectedly identity")
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	if !near(m, want, 1e-5) {
		t.Fatalf("DefaultProjection\nhave %v\nwant %v", m, want)
	}
}

// near compares matrices element-wise with an absolute tolerance.
func near(a, b mgl32.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func nearV4(a, b mgl32.Vec4, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}
