package hal

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// HostConfig sizes the host window and framebuffer.
type HostConfig struct {
	Title string

	WindowWidth  int
	WindowHeight int

	// Framebuffer size. The window scales it to fit.
	Width  int
	Height int

	Logger zerolog.Logger
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = 800, 600
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		c.WindowWidth, c.WindowHeight = c.Width, c.Height
	}
	if c.Title == "" {
		c.Title = "Solar System 3D"
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger zerolog.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	scroll *hostScroll
	images hostImages
}

func newHostHAL(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: cfg.Logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    &hostKeyboard{},
		scroll: newHostScroll(64),
	}
}

func (h *hostHAL) Logger() zerolog.Logger { return h.logger }
func (h *hostHAL) Display() Display       { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input           { return hostInput{kbd: h.kbd, scroll: h.scroll} }
func (h *hostHAL) Images() Images         { return h.images }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd    *hostKeyboard
	scroll *hostScroll
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Scroll() Scroll     { return in.scroll }

type hostKeyboard struct {
	mu      sync.Mutex
	pressed [numKeys]bool
}

func (k *hostKeyboard) Pressed(code KeyCode) bool {
	if code >= numKeys {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[code]
}

func (k *hostKeyboard) set(code KeyCode, down bool) {
	if code >= numKeys {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[code] = down
}

type hostScroll struct {
	ch      chan ScrollEvent
	dropped atomic.Uint64
	warn    rate.Sometimes
}

func newHostScroll(buf int) *hostScroll {
	return &hostScroll{
		ch:   make(chan ScrollEvent, buf),
		warn: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

func (s *hostScroll) Events() <-chan ScrollEvent { return s.ch }

// push queues ev without blocking. It reports false if the event was
// dropped.
func (s *hostScroll) push(ev ScrollEvent) bool {
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// offer queues ev and reports drops to log at most once per second.
func (s *hostScroll) offer(ev ScrollEvent, log zerolog.Logger) {
	if s.push(ev) {
		return
	}
	n := s.dropped.Add(1)
	s.warn.Do(func() {
		log.Warn().Uint64("dropped", n).Msg("scroll events dropped")
	})
}

// wheelEvents splits one tick's accumulated wheel offset into per-notch
// events. A notch is one unit of dy; fractional offsets from smooth
// scrolling still count as one event. Opposite notches within one tick
// have already cancelled and are lost.
func wheelEvents(dx, dy float64) []ScrollEvent {
	if dx == 0 && dy == 0 {
		return nil
	}
	n := int(math.Round(math.Abs(dy)))
	if n < 1 {
		return []ScrollEvent{{DX: dx, DY: dy}}
	}
	evs := make([]ScrollEvent, n)
	for i := range evs {
		evs[i].DY = dy / float64(n)
	}
	evs[0].DX = dx
	return evs
}
