package mandel

import (
	"bytes"
	"errors"
	"math"
	"runtime"
	"sync"
	"testing"

	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/palette"
	"github.com/marben/deepzoom_mandel/wire"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := Setup(append([]Option{WithPrecision(128)}, opts...)...)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(e.Teardown)
	return e
}

func TestSetupDefaults(t *testing.T) {
	e, err := Setup()
	if err != nil {
		t.Fatal(err)
	}
	defer e.Teardown()

	if e.Precision() != apfloat.DefaultPrec {
		t.Errorf("Precision() = %d", e.Precision())
	}
	if e.Cores() != runtime.NumCPU() || e.Workers() != e.Cores() {
		t.Errorf("Cores() = %d, Workers() = %d", e.Cores(), e.Workers())
	}
	xs, xe, ys, ye := e.Bounds()
	if xs != "-2" || xe != "1" || ys != "-1.5" || ye != "1.5" {
		t.Errorf("Bounds() = %s %s %s %s", xs, xe, ys, ye)
	}
}

func TestSetupRejectsLowPrecision(t *testing.T) {
	if _, err := Setup(WithPrecision(32)); !errors.Is(err, apfloat.ErrPrecision) {
		t.Fatalf("got %v, want ErrPrecision", err)
	}
}

func TestComputeFullDomain(t *testing.T) {
	e := newEngine(t)
	if err := e.Initialize("-2.0", "1.0", "-1.5", "1.5", NoCenter, NoCenter); err != nil {
		t.Fatal(err)
	}
	buf, err := e.Compute(32, 32, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 3072 {
		t.Fatalf("len = %d, want 3072", len(buf))
	}

	isBlack := func(px, py int) bool {
		i := (py*32 + px) * 3
		return buf[i] == 0 && buf[i+1] == 0 && buf[i+2] == 0
	}
	for _, p := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}} {
		if isBlack(p[0], p[1]) {
			t.Errorf("corner %v did not escape", p)
		}
	}
	// pixel (16, 16) is -0.5+0i, inside the main cardioid
	if !isBlack(16, 16) {
		t.Errorf("(-0.5, 0) escaped")
	}

	top, axis := 0, 0
	for px := 0; px < 32; px++ {
		if isBlack(px, 0) {
			top++
		}
		if isBlack(px, 16) {
			axis++
		}
	}
	if top != 0 || axis < 8 {
		t.Errorf("inside pixels: top row %d, real axis %d", top, axis)
	}
}

func TestZoomThenCompute(t *testing.T) {
	e := newEngine(t)
	if err := e.ZoomInViaCursor(16, 16, 32, 32, 50); err != nil {
		t.Fatal(err)
	}
	buf, err := e.Compute(32, 32, 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 32*32*3 {
		t.Fatalf("len = %d", len(buf))
	}
	if e.ZoomLevel() != 1 {
		t.Fatalf("ZoomLevel() = %d", e.ZoomLevel())
	}
	xs, xe, ys, ye := e.Bounds()
	if xs != "-1.25" || xe != "0.25" || ys != "-0.75" || ye != "0.75" {
		t.Fatalf("Bounds() = %s %s %s %s", xs, xe, ys, ye)
	}
}

func TestRejectedRequestsChangeNothing(t *testing.T) {
	e := newEngine(t)
	if err := e.ZoomIn(10, 10, 50); err != nil {
		t.Fatal(err)
	}
	xs, _, _, _ := e.Bounds()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"zero width", func() error { _, err := e.Compute(0, 4, 10); return err }, ErrInvalidSize},
		{"negative height", func() error { _, err := e.Compute(4, -4, 10); return err }, ErrInvalidSize},
		{"zero max iterations", func() error { _, err := e.Compute(4, 4, 0); return err }, ErrInvalidMaxIter},
		{"slice count", func() error { _, err := e.ComputeSlice(4, 4, 5, 0, 10); return err }, ErrInvalidSlice},
		{"slice index", func() error { _, err := e.ComputeSlice(4, 4, 2, 2, 10); return err }, ErrInvalidSlice},
		{"zoom in by 0", func() error { return e.ZoomIn(4, 4, 0) }, ErrInvalidFactor},
		{"zoom in by 100", func() error { return e.ZoomIn(4, 4, 100) }, ErrInvalidFactor},
		{"cursor zoom size", func() error { return e.ZoomInViaCursor(1, 1, 0, 4, 50) }, ErrInvalidSize},
		{"NaN cursor", func() error { return e.ZoomInViaCursor(math.NaN(), 1, 32, 32, 50) }, ErrInvalidCursor},
		{"infinite cursor", func() error { return e.ZoomInViaCursor(math.Inf(1), 1, 32, 32, 50) }, ErrInvalidCursor},
		{"negative infinite cursor", func() error { return e.ZoomInViaCursor(1, math.Inf(-1), 32, 32, 50) }, ErrInvalidCursor},
		{"zoom out by -1", func() error { return e.ZoomOut(-1) }, ErrInvalidFactor},
	}
	for _, tc := range tests {
		if err := tc.call(); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
	if got, _, _, _ := e.Bounds(); got != xs || e.ZoomLevel() != 1 {
		t.Fatalf("rejected calls moved the viewport: %s -> %s", xs, got)
	}
}

func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	var want []byte
	for _, n := range []int{1, 2, 7} {
		e := newEngine(t, WithWorkers(n), WithPalette(palette.Smooth))
		if err := e.InitializeRegion(SeahorseValley); err != nil {
			t.Fatal(err)
		}
		got, err := e.Compute(20, 15, 100)
		if err != nil {
			t.Fatal(err)
		}
		if want == nil {
			want = got
			continue
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%d workers differ from 1 worker", n)
		}
	}
}

func TestComputeSlices(t *testing.T) {
	e := newEngine(t, WithWorkers(3))
	full, err := e.Compute(8, 9, 50)
	if err != nil {
		t.Fatal(err)
	}
	var joined []byte
	for i := 0; i < 4; i++ {
		part, err := e.ComputeSlice(8, 9, 4, i, 50)
		if err != nil {
			t.Fatal(err)
		}
		joined = append(joined, part...)
	}
	if !bytes.Equal(joined, full) {
		t.Fatalf("slices do not add up to the full image")
	}
}

func TestComputeFrame(t *testing.T) {
	e := newEngine(t, WithWorkers(2))
	full, err := e.Compute(8, 9, 50)
	if err != nil {
		t.Fatal(err)
	}

	frame, err := e.ComputeFrame(8, 9, 0, 0, 50)
	if err != nil {
		t.Fatal(err)
	}
	w, h, rgb, err := wire.DecodeFrame(frame)
	if err != nil {
		t.Fatal(err)
	}
	if w != 8 || h != 9 || !bytes.Equal(rgb, full) {
		t.Fatalf("frame %dx%d does not match Compute", w, h)
	}

	for i, wantH := range []int{2, 2, 2, 3} {
		frame, err := e.ComputeFrame(8, 9, 4, i, 50)
		if err != nil {
			t.Fatal(err)
		}
		_, h, _, err := wire.DecodeFrame(frame)
		if err != nil {
			t.Fatal(err)
		}
		if h != wantH {
			t.Errorf("slice %d frame is %d rows, want %d", i, h, wantH)
		}
	}

	if _, err := e.ComputeFrame(1<<20, 1<<20, 0, 0, 50); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("oversized frame: %v", err)
	}
	if _, err := e.ComputeFrame(8, 9, 4, 4, 50); !errors.Is(err, ErrInvalidSlice) {
		t.Errorf("slice out of range: %v", err)
	}
}

func TestTeardown(t *testing.T) {
	e := newEngine(t)
	e.Teardown()
	e.Teardown()

	if _, err := e.Compute(4, 4, 10); !errors.Is(err, ErrClosed) {
		t.Errorf("Compute: %v", err)
	}
	if err := e.ZoomOut(50); !errors.Is(err, ErrClosed) {
		t.Errorf("ZoomOut: %v", err)
	}
	if err := e.InitializeRegion(Full); !errors.Is(err, ErrClosed) {
		t.Errorf("Initialize: %v", err)
	}
	if xs, _, _, _ := e.Bounds(); xs != "" {
		t.Errorf("Bounds() after teardown = %q", xs)
	}
}

func TestConcurrentCalls(t *testing.T) {
	e := newEngine(t, WithWorkers(2))
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				if _, err := e.Compute(6, 6, 30); err != nil {
					t.Error(err)
				}
				if err := e.ZoomIn(6, 6, 90); err != nil {
					t.Error(err)
				}
				if err := e.ZoomOut(90); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestLandmarks(t *testing.T) {
	for _, name := range LandmarkNames() {
		r, err := Landmark(name)
		if err != nil {
			t.Fatal(err)
		}
		e := newEngine(t)
		if err := e.InitializeRegion(r); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if r, err := Landmark(""); err != nil || r != Full {
		t.Errorf("Landmark(\"\") = %v, %v", r, err)
	}
	if _, err := Landmark("nowhere"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("got %v, want ErrUnknownRegion", err)
	}
}
