package hal

import (
	"image"
	"sync"
)

// hostFramebuffer is double buffered: the app draws into back, Present
// copies it to front, and the window reads front.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	back   *image.RGBA
	front  *image.RGBA
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	r := image.Rect(0, 0, width, height)
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   image.NewRGBA(r),
		front:  image.NewRGBA(r),
	}
}

func (f *hostFramebuffer) Width() int         { return f.width }
func (f *hostFramebuffer) Height() int        { return f.height }
func (f *hostFramebuffer) Image() *image.RGBA { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front.Pix, f.back.Pix)
	f.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns the number
// of frames presented so far.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front.Pix)
	return f.frames
}
