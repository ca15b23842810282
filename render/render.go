// Package render computes color buffers for a viewport by splitting the
// image into horizontal bands and rendering them in parallel.
//
// The output is RGB, 3 bytes per pixel, row-major. Row 0 maps to the
// viewport's Ys edge and column 0 to its Xs edge.
package render

import (
	"errors"
	"fmt"
	"log"
	"math/big"
	"runtime"
	"time"

	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/escape"
	"github.com/marben/deepzoom_mandel/palette"
	"github.com/marben/deepzoom_mandel/viewport"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSize  = errors.New("render: width, height and max iterations must be positive")
	ErrSlice = errors.New("render: slice out of range")
)

// Scheduler renders viewports with a fixed number of band workers.
type Scheduler struct {
	Workers int          // <= 0 means runtime.NumCPU()
	Prec    uint         // precision of the per-pixel arithmetic
	Palette palette.Func // nil means palette.UltraFractal
	Logger  *log.Logger  // nil disables logging
}

func (s *Scheduler) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

func (s *Scheduler) colorFunc() palette.Func {
	if s.Palette != nil {
		return s.Palette
	}
	return palette.UltraFractal
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// Compute renders b into a w*h*3 byte buffer. Either every band
// succeeds and the full buffer is returned, or an error and no buffer.
func (s *Scheduler) Compute(b viewport.Bounds, w, h, maxIter int) ([]byte, error) {
	if w <= 0 || h <= 0 || maxIter <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, max iterations %d", ErrSize, w, h, maxIter)
	}
	start := time.Now()
	tiles := Partition(b, s.Prec, w, h, s.workers(), maxIter)
	pal := s.colorFunc()

	// each worker writes only its own slot
	bands := make([][]byte, len(tiles))

	var g errgroup.Group
	g.SetLimit(len(tiles))
	for i, t := range tiles {
		g.Go(func() error {
			pix, err := s.renderTile(t, pal)
			bands[i] = pix
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, w*h*3)
	for i := range bands {
		out = append(out, bands[i]...)
		bands[i] = nil
	}
	s.logf("rendered %dx%d in %d bands, max iterations %d, took %s", w, h, len(tiles), maxIter, time.Since(start))
	return out, nil
}

// ComputeSlice renders only band slice of the partition into slices
// bands, as Compute would with slices workers.
func (s *Scheduler) ComputeSlice(b viewport.Bounds, w, h, slices, slice, maxIter int) ([]byte, error) {
	if w <= 0 || h <= 0 || maxIter <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, max iterations %d", ErrSize, w, h, maxIter)
	}
	if slices < 1 || slices > h || slice < 0 || slice >= slices {
		return nil, fmt.Errorf("%w: slice %d of %d for height %d", ErrSlice, slice, slices, h)
	}
	tiles := Partition(b, s.Prec, w, h, slices, maxIter)
	return s.renderTile(tiles[slice], s.colorFunc())
}

func (s *Scheduler) renderTile(t Tile, pal palette.Func) (pix []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			pix, err = nil, fmt.Errorf("render: band %d (rows %d-%d): %v", t.Index, t.RowStart(), t.RowEnd(), r)
		}
	}()
	if s.Logger != nil {
		ys, ye := t.PlaneRange(s.Prec)
		s.logf("rendering band %d: rows %d-%d, imaginary %s to %s", t.Index, t.RowStart(), t.RowEnd(), apfloat.Text(ys), apfloat.Text(ye))
	}
	return RenderTile(t, s.Prec, pal), nil
}

// RenderTile renders the rows of t into a fresh buffer with its own
// arithmetic scratch values.
func RenderTile(t Tile, prec uint, pal palette.Func) []byte {
	c := apfloat.Context{Prec: prec}
	e := escape.NewEvaluator(prec)
	w := t.Width
	pix := make([]byte, t.Rect.Dy()*w*3)

	// column coordinates are the same for every row
	x0 := make([]*big.Float, w)
	for col := range x0 {
		x0[col] = viewport.PlaneCoord(c.New(), t.Bounds.Xs, t.Bounds.Xe, c.FromInt(int64(col)), w)
	}

	y0, row := c.New(), c.New()
	i := 0
	for py := t.RowStart(); py < t.RowEnd(); py++ {
		viewport.PlaneCoord(y0, t.Bounds.Ys, t.Bounds.Ye, row.SetInt64(int64(py)), t.Height)
		for px := 0; px < w; px++ {
			it := e.Iterations(x0[px], y0, t.MaxIter)
			rgb := pal(it, t.MaxIter)
			pix[i], pix[i+1], pix[i+2] = rgb.R, rgb.G, rgb.B
			i += 3
		}
	}
	return pix
}
