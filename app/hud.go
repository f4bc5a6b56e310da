package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"orrery/softgl"
	"orrery/solar"
)

var hudColor = color.RGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}

// hudCanvas lets tinyfont draw into a softgl target.
type hudCanvas struct {
	t softgl.Target
}

var _ drivers.Displayer = hudCanvas{}

func (c hudCanvas) Size() (x, y int16) {
	if c.t == nil {
		return 0, 0
	}
	w, h := c.t.Size()
	return int16(w), int16(h)
}

func (c hudCanvas) SetPixel(x, y int16, col color.RGBA) {
	if c.t == nil {
		return
	}
	w, h := c.t.Size()
	if x < 0 || y < 0 || int(x) >= w || int(y) >= h {
		return
	}
	c.t.SetPixel(int(x), int(y), col)
}

func (hudCanvas) Display() error { return nil }

type hud struct {
	canvas hudCanvas
	font   tinyfont.Fonter
	title  string
	line   int16
}

func newHUD(t softgl.Target, title string) *hud {
	font := &proggy.TinySZ8pt7b
	return &hud{
		canvas: hudCanvas{t: t},
		font:   font,
		title:  title,
		line:   int16(font.GetYAdvance()),
	}
}

func (h *hud) lines(seq uint64, cam solar.Camera) []string {
	out := make([]string, 0, 3)
	if h.title != "" {
		out = append(out, h.title)
	}
	out = append(out,
		fmt.Sprintf("frame %d", seq),
		fmt.Sprintf("zoom %.1f  pan %.1f", cam.Zoom, cam.PanX),
	)
	return out
}

func (h *hud) draw(seq uint64, cam solar.Camera) {
	// tinyfont positions text by baseline.
	y := h.line
	for _, s := range h.lines(seq, cam) {
		tinyfont.WriteLine(h.canvas, h.font, 4, y, s, hudColor)
		y += h.line
	}
}
