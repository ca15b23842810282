// Package config loads render settings from defaults, an optional TOML
// file and MANDEL_ environment variables, in that order.
//
// Settings live under the [mandel] table:
//
//	[mandel]
//	precision = 512
//	max_iter = 1000
//	palette = "ultrafractal"
//	region = "seahorse-valley"
//
//	[mandel.server]
//	addr = ":8080"
//
// Environment variables use "__" for nesting, e.g. MANDEL_SERVER__ADDR.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/palette"
)

const (
	root      = "mandel"
	envPrefix = "MANDEL_"
)

var ErrInvalid = errors.New("config: invalid setting")

type Config struct {
	Precision  uint   `koanf:"precision"`
	MaxIter    int    `koanf:"max_iter"`
	ZoomFactor int    `koanf:"zoom_factor"`
	Palette    string `koanf:"palette"`
	Workers    int    `koanf:"workers"`
	Width      int    `koanf:"width"`
	Height     int    `koanf:"height"`
	Region     string `koanf:"region"`
	CenterX    string `koanf:"center_x"`
	CenterY    string `koanf:"center_y"`
	Server     Server `koanf:"server"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		root + ".precision":   apfloat.DefaultPrec,
		root + ".max_iter":    1000,
		root + ".zoom_factor": 50,
		root + ".palette":     palette.Default,
		root + ".workers":     0,
		root + ".width":       640,
		root + ".height":      480,
		root + ".region":      "full",
		root + ".center_x":    mandel.NoCenter,
		root + ".center_y":    mandel.NoCenter,
		root + ".server.addr": ":8080",
	}
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config file %q: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	var c Config
	if err := k.Unmarshal(root, &c); err != nil {
		return Config{}, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// envKey turns MANDEL_SERVER__ADDR into mandel.server.addr.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return root + "." + strings.ReplaceAll(s, "__", ".")
}

func (c Config) Validate() error {
	if err := (apfloat.Context{Prec: c.Precision}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: max_iter %d", ErrInvalid, c.MaxIter)
	}
	if c.ZoomFactor <= 0 || c.ZoomFactor >= 100 {
		return fmt.Errorf("%w: zoom_factor %d is not in (0, 100)", ErrInvalid, c.ZoomFactor)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := palette.ByName(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := mandel.Landmark(c.Region); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineOptions translates the engine settings into Setup options.
func (c Config) EngineOptions(logger *log.Logger) ([]mandel.Option, error) {
	pal, err := palette.ByName(c.Palette)
	if err != nil {
		return nil, err
	}
	opts := []mandel.Option{
		mandel.WithPrecision(c.Precision),
		mandel.WithWorkers(c.Workers),
		mandel.WithPalette(pal),
	}
	if logger != nil {
		opts = append(opts, mandel.WithLogger(logger))
	}
	return opts, nil
}

// Apply initializes e to the configured region and centre.
func (c Config) Apply(e *mandel.Engine) error {
	r, err := mandel.Landmark(c.Region)
	if err != nil {
		return err
	}
	return e.Initialize(r.Xs, r.Xe, r.Ys, r.Ye, c.CenterX, c.CenterY)
}
