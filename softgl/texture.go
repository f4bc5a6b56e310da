package softgl

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

var errTexSize = errors.New("softgl: texture pixel data does not match its size")

// Texture is an RGBA texture with a full mipmap chain.
//
// The zero Texture is blank: it has no levels, and draws that reference it
// fall back to the draw's tint.
type Texture struct {
	levels []*image.RGBA
}

// NewTexture creates a texture from tightly packed RGBA8 pixels
// and generates its mipmaps.
func NewTexture(pix []byte, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, errTexSize
	}
	base := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(base.Pix, pix)
	t := &Texture{}
	t.generateMipmaps(base)
	return t, nil
}

// TextureFromImage converts img to RGBA and creates a texture from it.
// An empty image yields a blank texture.
func TextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return &Texture{}
	}
	base, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) || base.Stride != 4*b.Dx() {
		base = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(base, base.Bounds(), img, b.Min, draw.Src)
	}
	t, err := NewTexture(base.Pix[:4*b.Dx()*b.Dy()], b.Dx(), b.Dy())
	if err != nil {
		return &Texture{}
	}
	return t
}

// generateMipmaps sets base as level 0 and halves it with a bilinear
// filter until a 1x1 level is produced.
func (t *Texture) generateMipmaps(base *image.RGBA) {
	t.levels = append(t.levels[:0], base)
	cur := base
	for {
		w, h := cur.Bounds().Dx(), cur.Bounds().Dy()
		if w == 1 && h == 1 {
			return
		}
		next := image.NewRGBA(image.Rect(0, 0, max(w/2, 1), max(h/2, 1)))
		draw.ApproxBiLinear.Scale(next, next.Bounds(), cur, cur.Bounds(), draw.Src, nil)
		t.levels = append(t.levels, next)
		cur = next
	}
}

// Blank reports whether t has no pixel data.
func (t *Texture) Blank() bool { return t == nil || len(t.levels) == 0 }

// Levels returns the number of mipmap levels.
func (t *Texture) Levels() int {
	if t == nil {
		return 0
	}
	return len(t.levels)
}

// Size returns the dimensions of a mipmap level.
func (t *Texture) Size(level int) (w, h int) {
	if t.Blank() || level < 0 || level >= len(t.levels) {
		return 0, 0
	}
	b := t.levels[level].Bounds()
	return b.Dx(), b.Dy()
}

// Sample returns the texel nearest to (u, v) in the given level.
// Coordinates wrap (repeat); the level is clamped to the chain.
func (t *Texture) Sample(u, v float32, level int) color.RGBA {
	if t.Blank() {
		return White
	}
	level = max(0, min(level, len(t.levels)-1))
	img := t.levels[level]
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	x := wrap(int(math.Floor(float64(u*float32(w)))), w)
	y := wrap(int(math.Floor(float64(v*float32(h)))), h)
	off := img.PixOffset(x, y)
	p := img.Pix[off : off+4 : off+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Free releases the pixel data. t becomes blank.
func (t *Texture) Free() {
	if t != nil {
		t.levels = nil
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
