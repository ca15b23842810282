// zoomseq renders a zoom sequence on the local machine.
// It writes one numbered PNG per zoom level until the frame limit is reached
// or the frames stop carrying detail.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/deepzoom_mandel/config"
	"github.com/marben/deepzoom_mandel/imgout"
	"github.com/pkg/profile"
)

type args struct {
	Config      string `arg:"-c,--config" help:"TOML configuration file"`
	Dir         string `arg:"-d,--dir" default:"images" help:"output directory"`
	Frames      int    `arg:"-n,--frames" default:"100" help:"stop after this many frames"`
	Width       int    `arg:"--width" help:"frame width, overrides width"`
	Height      int    `arg:"--height" help:"frame height, overrides height"`
	MaxIter     int    `arg:"-i,--max-iter" help:"iteration cap, overrides max_iter"`
	Factor      int    `arg:"-f,--factor" help:"percent kept per zoom, overrides zoom_factor"`
	Region      string `arg:"-r,--region" help:"landmark to start from, overrides region"`
	Real        string `arg:"--real" help:"real part of the zoom centre"`
	Imag        string `arg:"--imag" help:"imaginary part of the zoom centre"`
	Supersample int    `arg:"-s,--supersample" default:"1" help:"render at this multiple of the frame size and downscale"`
	Profile     string `arg:"--profile" help:"write a cpu, mem or trace profile"`
}

func (args) Description() string {
	return "renders a deep zoom into numbered PNG frames"
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var a args
	arg.MustParse(&a)

	switch a.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile %q", a.Profile)
	}

	cfg, err := config.Load(a.Config)
	if err != nil {
		return err
	}
	a.override(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.EngineOptions(log.Default())
	if err != nil {
		return err
	}
	e, err := mandel.Setup(opts...)
	if err != nil {
		return err
	}
	defer e.Teardown()
	if err := cfg.Apply(e); err != nil {
		return err
	}

	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return err
	}

	seq := sequence{
		Dir:         a.Dir,
		Frames:      a.Frames,
		Width:       cfg.Width,
		Height:      cfg.Height,
		MaxIter:     cfg.MaxIter,
		Factor:      cfg.ZoomFactor,
		Supersample: a.Supersample,
	}
	n, err := seq.render(e)
	if err != nil {
		return err
	}
	log.Printf("wrote %d frames to %q", n, a.Dir)
	return nil
}

func (a args) override(cfg *config.Config) {
	if a.Width > 0 {
		cfg.Width = a.Width
	}
	if a.Height > 0 {
		cfg.Height = a.Height
	}
	if a.MaxIter > 0 {
		cfg.MaxIter = a.MaxIter
	}
	if a.Factor > 0 {
		cfg.ZoomFactor = a.Factor
	}
	if a.Region != "" {
		cfg.Region = a.Region
	}
	if a.Real != "" && a.Imag != "" {
		cfg.CenterX, cfg.CenterY = a.Real, a.Imag
	}
}

// sequence is one zoom run. Frame 0 is the starting viewport, every
// later frame is one zoom-in deeper.
type sequence struct {
	Dir         string
	Frames      int
	Width       int
	Height      int
	MaxIter     int
	Factor      int
	Supersample int
}

// render writes frames until Frames are done, the precision runs out, or
// a frame comes out a single color. It returns the number written.
func (s sequence) render(e mandel.Session) (int, error) {
	ss := max(s.Supersample, 1)
	w, h := s.Width*ss, s.Height*ss

	for n := 0; n < s.Frames; n++ {
		if n > 0 {
			err := e.ZoomIn(w, h, s.Factor)
			if errors.Is(err, mandel.ErrPrecisionExhausted) {
				log.Printf("frame %d: %v", n, err)
				return n, nil
			}
			if err != nil {
				return n, err
			}
		}

		rgb, err := e.Compute(w, h, s.MaxIter)
		if err != nil {
			return n, err
		}
		img, err := imgout.ToRGBA(w, h, rgb)
		if err != nil {
			return n, err
		}
		if err := imgout.WritePNG(imgout.FrameName(s.Dir, n), imgout.Downscale(img, s.Width, s.Height)); err != nil {
			return n, err
		}

		if n > 0 && imgout.Uniform(rgb) {
			log.Printf("frame %d bottomed out at zoom level %d", n, e.ZoomLevel())
			return n + 1, nil
		}
	}
	return s.Frames, nil
}
