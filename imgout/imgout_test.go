package imgout

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestToRGBA(t *testing.T) {
	rgb := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	}
	img, err := ToRGBA(2, 2, rgb)
	if err != nil {
		t.Fatal(err)
	}
	want := map[image.Point]color.RGBA{
		{0, 0}: {255, 0, 0, 255},
		{1, 0}: {0, 255, 0, 255},
		{0, 1}: {0, 0, 255, 255},
		{1, 1}: {10, 20, 30, 255},
	}
	for p, c := range want {
		if got := img.RGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}

	if _, err := ToRGBA(2, 2, rgb[:9]); !errors.Is(err, ErrBuffer) {
		t.Errorf("short buffer: got %v", err)
	}
}

func TestDownscale(t *testing.T) {
	img, err := ToRGBA(8, 6, make([]byte, 8*6*3))
	if err != nil {
		t.Fatal(err)
	}
	if got := Downscale(img, 8, 6); got != image.Image(img) {
		t.Errorf("same size was resampled")
	}
	small := Downscale(img, 4, 3)
	if b := small.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds %v", b)
	}
}

func TestUniform(t *testing.T) {
	tests := []struct {
		rgb  []byte
		want bool
	}{
		{nil, true},
		{[]byte{1, 2, 3}, true},
		{[]byte{1, 2, 3, 1, 2, 3, 1, 2, 3}, true},
		{[]byte{1, 2, 3, 1, 2, 3, 1, 2, 4}, false},
		{[]byte{0, 0, 0, 9, 0, 0}, false},
	}
	for _, tc := range tests {
		if got := Uniform(tc.rgb); got != tc.want {
			t.Errorf("Uniform(%v) = %v", tc.rgb, got)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := FrameName(dir, 7)
	if filepath.Base(path) != "image0007.png" {
		t.Fatalf("FrameName = %q", path)
	}

	img, err := ToRGBA(3, 2, []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := got.At(2, 1).RGBA(); r>>8 != 16 || g>>8 != 17 || b>>8 != 18 {
		t.Fatalf("pixel (2, 1) = %d %d %d", r>>8, g>>8, b>>8)
	}

	if err := WritePNG(filepath.Join(dir, "missing", "x.png"), img); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
