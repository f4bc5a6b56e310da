package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Name is the config file base name searched in the working directory.
const Name = "orrery"

// Window is the host window geometry.
type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Render is the size of the framebuffer the scene is rasterized into.
type Render struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config holds everything the viewer can be told from outside.
type Config struct {
	Window   Window `mapstructure:"window"`
	Render   Render `mapstructure:"render"`
	Textures string `mapstructure:"textures"`
	LogLevel string `mapstructure:"logLevel"`
	HUD      bool   `mapstructure:"hud"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1910)
	v.SetDefault("window.height", 1200)
	v.SetDefault("window.title", "Solar System 3D")

	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 600)

	v.SetDefault("textures", "resources/planets")
	v.SetDefault("logLevel", "info")
	v.SetDefault("hud", false)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults alone always decode.
	_ = v.Unmarshal(&c)
	return c
}

// Load reads the configuration.
//
// With an explicit path the file must exist. Without one, an "orrery" file
// of any supported type in the working directory is used if present and the
// defaults otherwise. Environment variables override both; nested keys use
// underscores, as in ORRERY_WINDOW_WIDTH.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("orrery")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects sizes that cannot back a window or framebuffer.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size %dx%d must be positive", c.Render.Width, c.Render.Height)
	}
	return nil
}
