package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"orrery/hal"
	"orrery/internal/monitor"
	"orrery/softgl"
	"orrery/solar"
)

// State is the lifecycle state of a Driver.
type State uint8

const (
	Uninitialized State = iota
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ErrNotRunning is returned by Step outside the Running state.
var ErrNotRunning = errors.New("app: driver not running")

// OrbitSegments is the number of line segments in an orbit path.
const OrbitSegments = 360

const numSlots = 1 + solar.NumPlanets

// Options configures a Driver.
type Options struct {
	// TextureDir holds the body textures.
	TextureDir string

	// HUD draws a text overlay with the frame number and camera state.
	HUD   bool
	Title string

	// Metrics may be nil.
	Metrics *monitor.Metrics

	// Scene replaces the built-in scene when set.
	Scene *solar.SceneState
}

// Driver runs the per-frame loop: input, transforms, draws, present, clock.
type Driver struct {
	log     zerolog.Logger
	opts    Options
	state   State
	metrics *monitor.Metrics

	kbd    hal.Keyboard
	scroll hal.Scroll
	fb     hal.Framebuffer
	target *softgl.ImageTarget

	scene    *solar.SceneState
	renderer *softgl.Renderer
	textures [numSlots]*softgl.Texture
	spheres  [numSlots]*softgl.Mesh
	orbits   [numSlots]*softgl.Mesh
	hud      *hud

	pending []float64

	// onFrame, if set, sees every frame after it is rendered.
	onFrame func(solar.Frame)
}

// New sets up the scene and loads the textures.
//
// A body table that fails validation or a host without a framebuffer is an
// error, and the returned Driver is Terminated. Missing textures are not:
// the failure is logged and the body is drawn in its tint.
func New(h hal.HAL, opts Options) (*Driver, error) {
	d := &Driver{
		log:     h.Logger(),
		opts:    opts,
		metrics: opts.Metrics,
		scene:   opts.Scene,
	}
	if d.scene == nil {
		d.scene = solar.NewSceneState()
	}

	if err := d.init(h); err != nil {
		d.state = Terminated
		d.log.Error().Err(err).Msg("environment init failed")
		return d, err
	}
	d.state = Running
	d.log.Info().
		Int("width", d.fb.Width()).
		Int("height", d.fb.Height()).
		Bool("hud", opts.HUD).
		Msg("scene ready")
	return d, nil
}

func (d *Driver) init(h hal.HAL) error {
	if err := solar.Validate(d.scene.Sun, d.scene.Planets); err != nil {
		return fmt.Errorf("validate bodies: %w", err)
	}
	if len(d.scene.Planets) >= numSlots {
		return fmt.Errorf("validate bodies: %d planets, at most %d supported", len(d.scene.Planets), numSlots-1)
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return errors.New("open display: no framebuffer")
	}
	d.fb = disp.Framebuffer()
	d.target = softgl.NewImageTarget(d.fb.Image())
	d.renderer = softgl.NewRenderer(d.fb.Width(), d.fb.Height())

	if in := h.Input(); in != nil {
		d.kbd = in.Keyboard()
		d.scroll = in.Scroll()
	}

	d.loadBodies(h.Images())

	if d.opts.HUD {
		d.hud = newHUD(d.target, d.opts.Title)
	}
	return nil
}

func (d *Driver) loadBodies(images hal.Images) {
	bodies := append([]solar.Body{d.scene.Sun}, d.scene.Planets...)
	for slot, b := range bodies {
		d.spheres[slot] = softgl.Sphere(float32(b.Radius), b.Longitude, b.Latitude)
		if slot != solar.SunSlot {
			d.orbits[slot] = softgl.Circle(float32(b.OrbitRadius), OrbitSegments)
		}
		d.textures[slot] = d.loadTexture(images, b)
		d.log.Debug().Str("body", b.Name).Int("vertices", d.spheres[slot].Vertices()).Msg("mesh built")
	}
}

func (d *Driver) loadTexture(images hal.Images, b solar.Body) *softgl.Texture {
	path := filepath.Join(d.opts.TextureDir, b.Texture)
	if images == nil {
		d.textureFailed(b, path, errors.New("no image decoder"))
		return &softgl.Texture{}
	}
	img, err := images.LoadImage(path)
	if err != nil {
		d.textureFailed(b, path, err)
		return &softgl.Texture{}
	}
	tex := softgl.TextureFromImage(img)
	w, h := tex.Size(0)
	d.log.Debug().
		Str("body", b.Name).
		Str("path", path).
		Int("width", w).
		Int("height", h).
		Int("levels", tex.Levels()).
		Msg("texture loaded")
	return tex
}

func (d *Driver) textureFailed(b solar.Body, path string, err error) {
	d.log.Error().Err(err).Str("body", b.Name).Str("path", path).Msg("texture load failed")
	d.metrics.TextureFailed(context.Background(), b.Name)
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Scene returns the animated scene.
func (d *Driver) Scene() *solar.SceneState { return d.scene }

// Texture returns the texture of the body in slot, or nil.
func (d *Driver) Texture(slot int) *softgl.Texture {
	if slot < 0 || slot >= numSlots {
		return nil
	}
	return d.textures[slot]
}

// Step renders one frame. The clock advances only after the frame is
// presented, so the first frame shows the scene at time zero.
func (d *Driver) Step() error {
	if d.state != Running {
		return ErrNotRunning
	}
	start := time.Now()

	d.scene.Input(d.drainScroll(), d.sampleKeys())
	f := d.scene.Frame()
	d.render(f)
	if d.onFrame != nil {
		d.onFrame(f)
	}
	if d.hud != nil {
		d.hud.draw(f.Seq, d.scene.Camera)
	}
	if err := d.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	d.scene.Advance()

	d.metrics.FrameDone(context.Background(), time.Since(start))
	return nil
}

func (d *Driver) drainScroll() []float64 {
	d.pending = d.pending[:0]
	if d.scroll == nil {
		return d.pending
	}
	ch := d.scroll.Events()
	for {
		select {
		case ev := <-ch:
			d.pending = append(d.pending, ev.DY)
		default:
			return d.pending
		}
	}
}

func (d *Driver) sampleKeys() solar.Keys {
	if d.kbd == nil {
		return solar.Keys{}
	}
	return solar.Keys{
		Up:    d.kbd.Pressed(hal.KeyUp),
		Down:  d.kbd.Pressed(hal.KeyDown),
		Left:  d.kbd.Pressed(hal.KeyLeft),
		Right: d.kbd.Pressed(hal.KeyRight),
	}
}

func (d *Driver) render(f solar.Frame) {
	d.renderer.Begin(d.target)
	for i := range f.Draws {
		dr := &f.Draws[i]
		if dr.Slot < 0 || dr.Slot >= numSlots {
			continue
		}
		dc := softgl.DrawCall{ModelView: dr.ModelView}
		switch dr.Kind {
		case solar.DrawBody:
			dc.Mesh = d.spheres[dr.Slot]
			dc.Texture = d.textures[dr.Slot]
			dc.Textured = true
			dc.Tint = dr.Body.Tint
		case solar.DrawOrbit:
			dc.Mesh = d.orbits[dr.Slot]
			dc.Tint = softgl.White
		}
		d.renderer.Draw(d.target, &dc)
	}
}

// Close releases textures and buffers. It is safe to call more than once.
func (d *Driver) Close() {
	if d.state == Terminated && d.renderer == nil {
		return
	}
	for i, t := range d.textures {
		t.Free()
		d.textures[i] = nil
	}
	if d.renderer != nil {
		d.renderer.Free()
		d.renderer = nil
	}
	if d.state == Running {
		d.log.Info().Uint64("frames", d.scene.Clock.Frames()).Msg("scene closed")
	}
	d.state = Terminated
}
