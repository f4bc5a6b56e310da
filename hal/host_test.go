package hal

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHostConfigDefaults(t *testing.T) {
	c := HostConfig{}.withDefaults()
	if c.Width != 800 || c.Height != 600 || c.WindowWidth != 800 || c.WindowHeight != 600 {
		t.Fatalf("defaults = %+v", c)
	}
	if c.Title == "" {
		t.Fatal("default title is empty")
	}

	c = HostConfig{Width: 320, Height: 200, WindowWidth: 1910, WindowHeight: 1200, Title: "x"}.withDefaults()
	if c.Width != 320 || c.WindowWidth != 1910 || c.Title != "x" {
		t.Fatalf("explicit config overridden: %+v", c)
	}
}

func TestHostKeyboard(t *testing.T) {
	h := newHostHAL(HostConfig{})
	kbd := h.Input().Keyboard()

	if kbd.Pressed(KeyUp) {
		t.Fatal("KeyUp pressed before any input")
	}
	h.kbd.set(KeyUp, true)
	h.kbd.set(KeyLeft, true)
	if !kbd.Pressed(KeyUp) || !kbd.Pressed(KeyLeft) || kbd.Pressed(KeyDown) {
		t.Fatal("unexpected key state after press")
	}
	h.kbd.set(KeyUp, false)
	if kbd.Pressed(KeyUp) {
		t.Fatal("KeyUp still pressed after release")
	}
	if kbd.Pressed(KeyCode(999)) {
		t.Fatal("out of range key reported pressed")
	}
}

func TestHostScrollDropsWhenFull(t *testing.T) {
	s := newHostScroll(2)
	if !s.push(ScrollEvent{DY: 1}) || !s.push(ScrollEvent{DY: -1}) {
		t.Fatal("push() = false before buffer is full")
	}
	if s.push(ScrollEvent{DY: 3}) {
		t.Fatal("push() = true on full buffer")
	}

	if ev := <-s.Events(); ev.DY != 1 {
		t.Fatalf("first event DY = %v, want 1", ev.DY)
	}
	if ev := <-s.Events(); ev.DY != -1 {
		t.Fatalf("second event DY = %v, want -1", ev.DY)
	}
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHostFramebufferPresent(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	if fb.Width() != 4 || fb.Height() != 2 {
		t.Fatalf("size = %dx%d", fb.Width(), fb.Height())
	}

	red := color.RGBA{R: 0xFF, A: 0xFF}
	fb.Image().SetRGBA(1, 1, red)

	dst := make([]byte, len(fb.front.Pix))
	if n := fb.snapshot(dst); n != 0 {
		t.Fatalf("frames = %d before Present", n)
	}
	if dst[fb.front.PixOffset(1, 1)] != 0 {
		t.Fatal("unpresented pixel visible")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if n := fb.snapshot(dst); n != 1 {
		t.Fatalf("frames = %d, want 1", n)
	}
	if dst[fb.front.PixOffset(1, 1)] != 0xFF {
		t.Fatal("presented pixel missing")
	}
}

func TestHostImages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")

	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{G: 0x80, A: 0xFF})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := hostImages{}.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	if _, g, _, _ := img.At(2, 1).RGBA(); g>>8 != 0x80 {
		t.Fatalf("pixel green = %#x, want 0x80", g>>8)
	}

	if _, err := (hostImages{}).LoadImage(filepath.Join(dir, "missing.jpg")); err == nil {
		t.Fatal("LoadImage(missing) = nil error")
	}

	bad := filepath.Join(dir, "bad.jpg")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (hostImages{}).LoadImage(bad); err == nil {
		t.Fatal("LoadImage(garbage) = nil error")
	}
}

func TestKeyCodeString(t *testing.T) {
	if KeyUp.String() != "Up" || KeyEscape.String() != "Escape" || KeyCode(77).String() != "Unknown" {
		t.Fatal("unexpected key names")
	}
}

func TestHostScrollOfferLogsDrops(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	s := newHostScroll(1)
	for i := 0; i < 5; i++ {
		s.offer(ScrollEvent{DY: 1}, log)
	}
	if got := s.dropped.Load(); got != 4 {
		t.Fatalf("dropped = %d, want 4", got)
	}
	// Drops within one second are reported once.
	if n := strings.Count(buf.String(), "scroll events dropped"); n != 1 {
		t.Fatalf("logged %d drop warnings, want 1\n%s", n, buf.String())
	}
}

func TestWheelEvents(t *testing.T) {
	for _, tc := range []struct {
		dx, dy float64
		want   []float64
	}{
		{0, 0, nil},
		{0, 1, []float64{1}},
		{0, -1, []float64{-1}},
		{0, 3, []float64{1, 1, 1}},
		{0, -2, []float64{-1, -1}},
		{0, 0.25, []float64{0.25}},
		{0, -2.4, []float64{-1.2, -1.2}},
		{1, 0, []float64{0}},
	} {
		evs := wheelEvents(tc.dx, tc.dy)
		if len(evs) != len(tc.want) {
			t.Fatalf("wheelEvents(%v, %v) = %d events, want %d", tc.dx, tc.dy, len(evs), len(tc.want))
		}
		var dx float64
		for i, ev := range evs {
			if math.Abs(ev.DY-tc.want[i]) > 1e-12 {
				t.Fatalf("wheelEvents(%v, %v)[%d].DY = %v, want %v", tc.dx, tc.dy, i, ev.DY, tc.want[i])
			}
			dx += ev.DX
		}
		if dx != tc.dx {
			t.Fatalf("wheelEvents(%v, %v) DX sum = %v", tc.dx, tc.dy, dx)
		}
	}
}
