// Package hal is the only contact point between the viewer and the outside
// world: the window, the input devices and the image decoders.
package hal

import (
	"image"

	"github.com/rs/zerolog"
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape

	numKeys
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Keyboard reports the held state of keys. The state changes only between
// app steps, so every query within one step sees the same sample.
type Keyboard interface {
	Pressed(k KeyCode) bool
}

// ScrollEvent is one scroll wheel notification.
type ScrollEvent struct {
	DX, DY float64
}

// Scroll delivers scroll events. Events arrive independently of the frame
// step and are dropped when the consumer falls behind.
type Scroll interface {
	Events() <-chan ScrollEvent
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Scroll() Scroll
}

// Framebuffer is an RGBA pixel buffer plus a "present" hook.
//
// The app draws into Image and calls Present once the frame is complete;
// the host only ever shows presented frames.
type Framebuffer interface {
	Width() int
	Height() int
	Image() *image.RGBA
	Present() error
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Images decodes image files.
type Images interface {
	LoadImage(path string) (image.Image, error)
}

// HAL bundles the host collaborators handed to the app.
type HAL interface {
	Logger() zerolog.Logger
	Display() Display
	Input() Input
	Images() Images
}

// App is driven by a host runner, one Step per frame.
type App interface {
	Step() error
	Close()
}

// NewAppFunc creates the app once the host is ready.
type NewAppFunc func(HAL) (App, error)
