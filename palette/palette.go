// Package palette maps escape-time iteration counts to colors.
//
// Every strategy is a pure function of (it, maxIter): points that never
// escaped (it == maxIter) are black.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Func maps an iteration count in [0, maxIter] to an opaque color.
type Func func(it, maxIter int) color.RGBA

var ErrUnknown = errors.New("palette: unknown palette")

const Default = "ultrafractal"

var black = color.RGBA{A: 255}

var byName = map[string]Func{
	"grayscale":    Grayscale,
	"smooth":       Smooth,
	"ultrafractal": UltraFractal,
	"hsv":          HSV,
}

// ByName returns the palette registered under name.
func ByName(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	return f, nil
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Grayscale brightens with the square root of the escape ratio.
func Grayscale(it, maxIter int) color.RGBA {
	if it >= maxIter {
		return black
	}
	idx := uint8(math.Ceil(math.Sqrt(float64(it)/float64(maxIter)) * 255))
	return color.RGBA{idx, idx, idx, 255}
}

// Smooth is a sine gradient over the fourth root of the escape ratio.
func Smooth(it, maxIter int) color.RGBA {
	if it >= maxIter {
		return black
	}
	m := math.Sqrt(math.Sqrt(float64(it) / float64(maxIter)))
	return color.RGBA{
		R: sineChannel(0.65, m),
		G: sineChannel(0.45, m),
		B: sineChannel(0.25, m),
		A: 255,
	}
}

func sineChannel(k, m float64) uint8 {
	v := math.Floor((math.Sin(k*m*85)*0.5 + 0.5) * 255)
	if v < 0 || v > 255 {
		panic(fmt.Sprintf("palette: channel %v out of range for m=%v", v, m))
	}
	return uint8(v)
}

// ultraFractal is the 16 entry gradient of the Ultra Fractal program.
var ultraFractal = [16]color.RGBA{
	{66, 30, 15, 255},
	{25, 7, 26, 255},
	{9, 1, 47, 255},
	{4, 4, 73, 255},
	{0, 7, 100, 255},
	{12, 44, 138, 255},
	{24, 82, 177, 255},
	{57, 125, 209, 255},
	{134, 181, 229, 255},
	{211, 236, 248, 255},
	{241, 233, 191, 255},
	{248, 201, 95, 255},
	{255, 170, 0, 255},
	{204, 128, 0, 255},
	{153, 87, 0, 255},
	{106, 52, 3, 255},
}

// UltraFractal cycles through a fixed table by it mod 16.
// Points escaping at iteration 0 are black as well.
func UltraFractal(it, maxIter int) color.RGBA {
	if it <= 0 || it >= maxIter {
		return black
	}
	return ultraFractal[it%len(ultraFractal)]
}

// HSV walks the hue wheel by 2% per iteration.
func HSV(it, maxIter int) color.RGBA {
	if it >= maxIter {
		return black
	}
	hue := math.Mod(float64(it)*0.02, 1.0)
	r, g, b := colorful.Hsv(hue*360, 1, 1).RGB255()
	return color.RGBA{r, g, b, 255}
}
