//go:build cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard and scroll input. It blocks until the window closes or
// Escape is pressed.
func RunWindow(cfg HostConfig, newApp NewAppFunc) error {
	h := newHostHAL(cfg)
	app, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer app.Close()

	g := &hostGame{h: h, app: app}
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.WindowWidth, h.cfg.WindowHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	app     App
	fbImg   *ebiten.Image
	scratch []byte
	shown   uint64
}

var keyMap = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEscape},
}

func (g *hostGame) poll() {
	for _, m := range keyMap {
		g.h.kbd.set(m.code, ebiten.IsKeyPressed(m.key))
	}
	for _, ev := range wheelEvents(ebiten.Wheel()) {
		g.h.scroll.offer(ev, g.h.logger)
	}
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.poll()
	if err := g.app.Step(); err != nil {
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.front.Pix))
	}

	if n := fb.snapshot(g.scratch); n != g.shown {
		g.fbImg.WritePixels(g.scratch)
		g.shown = n
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
