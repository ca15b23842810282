package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestInsideIsBlack(t *testing.T) {
	for _, name := range Names() {
		f, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := f(1000, 1000); got != black {
			t.Errorf("%s: inside point = %v, want black", name, got)
		}
	}
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		it, max int
		want    uint8
	}{
		{0, 100, 0},
		{1, 100, 26},   // ceil(0.1*255)
		{25, 100, 128}, // ceil(0.5*255)
		{99, 100, 254},
	}
	for _, tc := range tests {
		got := Grayscale(tc.it, tc.max)
		if got.R != tc.want || got.G != tc.want || got.B != tc.want {
			t.Errorf("Grayscale(%d, %d) = %v, want gray %d", tc.it, tc.max, got, tc.want)
		}
	}
}

func TestSmooth(t *testing.T) {
	// m = 0 puts every channel at sin(0) -> floor(0.5*255)
	if got := Smooth(0, 1000); got != (color.RGBA{127, 127, 127, 255}) {
		t.Fatalf("Smooth(0) = %v", got)
	}
	for it := 0; it < 1000; it++ {
		if c := Smooth(it, 1000); c.A != 255 {
			t.Fatalf("Smooth(%d) alpha = %d", it, c.A)
		}
	}
}

func TestUltraFractal(t *testing.T) {
	if got := UltraFractal(0, 100); got != black {
		t.Errorf("it=0: got %v, want black", got)
	}
	if got := UltraFractal(1, 100); got != (color.RGBA{25, 7, 26, 255}) {
		t.Errorf("it=1: got %v", got)
	}
	if UltraFractal(17, 100) != UltraFractal(1, 100) {
		t.Errorf("table does not wrap at 16")
	}
	if got := UltraFractal(16, 100); got != (color.RGBA{66, 30, 15, 255}) {
		t.Errorf("it=16: got %v", got)
	}
}

func TestHSV(t *testing.T) {
	if got := HSV(0, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("HSV(0) = %v, want red", got)
	}
	if got := HSV(25, 1000); got != (color.RGBA{0, 255, 255, 255}) {
		t.Fatalf("HSV(25) = %v, want cyan", got)
	}
}

func TestDeterministic(t *testing.T) {
	for _, name := range Names() {
		f, _ := ByName(name)
		for it := 0; it <= 300; it += 7 {
			if f(it, 300) != f(it, 300) {
				t.Fatalf("%s(%d) not deterministic", name, it)
			}
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("rainbow"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("got %v, want ErrUnknown", err)
	}
}
