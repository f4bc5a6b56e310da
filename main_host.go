package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/config"
	"orrery/internal/logging"
	"orrery/internal/monitor"
)

func main() {
	var (
		hc         hal.HeadlessConfig
		configPath string
		textures   string
		hud        bool
	)
	flag.StringVar(&configPath, "config", "", "Config file (default: ./orrery.* if present).")
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hc.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&hc.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&textures, "textures", "", "Texture directory (overrides config).")
	flag.BoolVar(&hud, "hud", false, "Draw the frame and camera overlay.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	if textures != "" {
		cfg.Textures = textures
	}
	cfg.HUD = cfg.HUD || hud

	log := logging.New(os.Stderr, cfg.LogLevel)
	log.Info().Str("version", buildinfo.Short()).Str("textures", cfg.Textures).Msg("starting")

	metrics, err := monitor.Default()
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}

	hostCfg := hal.HostConfig{
		Title:        buildinfo.Title(cfg.Window.Title),
		WindowWidth:  cfg.Window.Width,
		WindowHeight: cfg.Window.Height,
		Width:        cfg.Render.Width,
		Height:       cfg.Render.Height,
		Logger:       log,
	}
	newApp := func(h hal.HAL) (hal.App, error) {
		return app.New(h, app.Options{
			TextureDir: cfg.Textures,
			HUD:        cfg.HUD,
			Title:      cfg.Window.Title,
			Metrics:    metrics,
		})
	}

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hostCfg, hc, newApp)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hostCfg, newApp)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(-1)
	}
	log.Info().Msg("done")
}
