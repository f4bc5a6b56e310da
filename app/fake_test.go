package app

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"orrery/hal"
)

type fakeFramebuffer struct {
	img      *image.RGBA
	presents int
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *fakeFramebuffer) Width() int         { return f.img.Bounds().Dx() }
func (f *fakeFramebuffer) Height() int        { return f.img.Bounds().Dy() }
func (f *fakeFramebuffer) Image() *image.RGBA { return f.img }
func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeKeyboard map[hal.KeyCode]bool

func (k fakeKeyboard) Pressed(c hal.KeyCode) bool { return k[c] }

type fakeScroll struct{ ch chan hal.ScrollEvent }

func (s fakeScroll) Events() <-chan hal.ScrollEvent { return s.ch }

type fakeInput struct {
	kbd    fakeKeyboard
	scroll fakeScroll
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }
func (in fakeInput) Scroll() hal.Scroll     { return in.scroll }

// fakeImages serves solid images by file name. Unknown names fail.
type fakeImages map[string]color.RGBA

func (m fakeImages) LoadImage(path string) (image.Image, error) {
	c, ok := m[filepath.Base(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: errors.New("no such file or directory")}
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img, nil
}

type fakeHAL struct {
	logs   bytes.Buffer
	fb     *fakeFramebuffer
	kbd    fakeKeyboard
	scroll fakeScroll
	images fakeImages
	noFB   bool
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:     newFakeFramebuffer(w, h),
		kbd:    fakeKeyboard{},
		scroll: fakeScroll{ch: make(chan hal.ScrollEvent, 16)},
		images: fakeImages{},
	}
}

func (h *fakeHAL) Logger() zerolog.Logger { return zerolog.New(&h.logs) }

func (h *fakeHAL) Display() hal.Display {
	if h.noFB {
		return fakeDisplay{}
	}
	return fakeDisplay{fb: h.fb}
}

func (h *fakeHAL) Input() hal.Input     { return fakeInput{kbd: h.kbd, scroll: h.scroll} }
func (h *fakeHAL) Images() hal.Images   { return h.images }
func (h *fakeHAL) center() color.RGBA   { return h.fb.img.RGBAAt(h.fb.Width()/2, h.fb.Height()/2) }
func (h *fakeHAL) logged(s string) bool { return bytes.Contains(h.logs.Bytes(), []byte(s)) }
