package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	mandel "github.com/marben/deepzoom_mandel"
	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/config"
	"github.com/marben/deepzoom_mandel/imgout"
)

func TestSequenceWritesFrames(t *testing.T) {
	e, err := mandel.Setup(mandel.WithPrecision(128))
	if err != nil {
		t.Fatal(err)
	}
	defer e.Teardown()
	if err := e.InitializeRegion(mandel.SeahorseValley); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	seq := sequence{Dir: dir, Frames: 3, Width: 12, Height: 9, MaxIter: 200, Factor: 50, Supersample: 2}
	n, err := seq.render(e)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || e.ZoomLevel() != 2 {
		t.Fatalf("wrote %d frames, zoom level %d", n, e.ZoomLevel())
	}

	for i := 0; i < 3; i++ {
		f, err := os.Open(imgout.FrameName(dir, i))
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Width != 12 || cfg.Height != 9 {
			t.Errorf("frame %d is %dx%d", i, cfg.Width, cfg.Height)
		}
	}
	if _, err := os.Stat(imgout.FrameName(dir, 3)); !os.IsNotExist(err) {
		t.Errorf("frame 3 exists: %v", err)
	}
}

// deepSession runs out of precision after limit zoom-ins and never
// renders a uniform frame.
type deepSession struct {
	mandel.Session
	level, limit int
}

func (d *deepSession) ZoomIn(w, h, factor int) error {
	if d.level == d.limit {
		return fmt.Errorf("zoom: %w", mandel.ErrPrecisionExhausted)
	}
	d.level++
	return nil
}

func (d *deepSession) Compute(w, h, maxIter int) ([]byte, error) {
	rgb := make([]byte, w*h*3)
	for i := range rgb {
		rgb[i] = byte(i + d.level)
	}
	return rgb, nil
}

func (d *deepSession) ZoomLevel() int { return d.level }

func TestSequenceStopsWhenPrecisionRunsOut(t *testing.T) {
	dir := t.TempDir()
	seq := sequence{Dir: dir, Frames: 1000, Width: 4, Height: 4, MaxIter: 30, Factor: 1}
	n, err := seq.render(&deepSession{limit: 4})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("wrote %d frames, want 5", n)
	}
	files, err := filepath.Glob(filepath.Join(dir, "image*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != n {
		t.Fatalf("%d files for %d frames", len(files), n)
	}
}

func TestSequenceStopsOnError(t *testing.T) {
	e, err := mandel.Setup(mandel.WithPrecision(apfloat.MinPrec))
	if err != nil {
		t.Fatal(err)
	}
	e.Teardown()

	seq := sequence{Dir: t.TempDir(), Frames: 3, Width: 4, Height: 4, MaxIter: 10, Factor: 50}
	if _, err := seq.render(e); !errors.Is(err, mandel.ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestSequenceStopsOnUniformFrame(t *testing.T) {
	e, err := mandel.Setup(mandel.WithPrecision(128))
	if err != nil {
		t.Fatal(err)
	}
	defer e.Teardown()
	// a fixed centre inside the main cardioid: every zoomed frame is black
	if err := e.Initialize("-1", "0", "-0.5", "0.5", "-0.25", "0"); err != nil {
		t.Fatal(err)
	}

	seq := sequence{Dir: t.TempDir(), Frames: 50, Width: 6, Height: 6, MaxIter: 50, Factor: 10}
	n, err := seq.render(e)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("wrote %d frames, want 2", n)
	}
}

func TestOverride(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	a := args{Width: 100, Factor: 80, Region: "triple-spiral", Real: "-0.7465", Imag: "0.0965"}
	a.override(&cfg)
	if cfg.Width != 100 || cfg.Height != 480 || cfg.ZoomFactor != 80 {
		t.Errorf("sizes: %+v", cfg)
	}
	if cfg.Region != "triple-spiral" || cfg.CenterX != "-0.7465" || cfg.CenterY != "0.0965" {
		t.Errorf("region: %+v", cfg)
	}

	// a centre needs both parts
	cfg2, _ := config.Load("")
	args{Real: "-0.5"}.override(&cfg2)
	if cfg2.CenterX != mandel.NoCenter {
		t.Errorf("half a centre was applied: %q", cfg2.CenterX)
	}
}
