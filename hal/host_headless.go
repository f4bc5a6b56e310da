package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int

	// Frames stops the run after that many steps. Zero runs until the
	// context ends.
	Frames uint64

	// Snapshot, if set, is a PNG path the last presented frame is written
	// to when the run ends.
	Snapshot string
}

// RunHeadless drives the app from a ticker without opening a window.
// No input is delivered.
func RunHeadless(ctx context.Context, cfg HostConfig, hc HeadlessConfig, newApp NewAppFunc) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}

	h := newHostHAL(cfg)
	app, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer app.Close()

	err = runTicks(ctx, app, d, hc.Frames)
	if hc.Snapshot != "" {
		if serr := writeSnapshot(h.fb, hc.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func runTicks(ctx context.Context, app App, d time.Duration, frames uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Step(); err != nil {
				return err
			}
			tick++
			if frames > 0 && tick >= frames {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	img := newHostFramebuffer(fb.width, fb.height).front
	fb.snapshot(img.Pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return f.Close()
}
