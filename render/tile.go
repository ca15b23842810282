package render

import (
	"image"
	"math/big"

	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/viewport"
)

// Tile is one band of rows and a private copy of everything needed to
// render it, so workers never touch shared state.
type Tile struct {
	Index   int
	Rect    image.Rectangle // band rows in image coordinates
	Width   int             // full image width
	Height  int             // full image height
	MaxIter int
	Bounds  viewport.Bounds
}

func (t Tile) RowStart() int { return t.Rect.Min.Y }
func (t Tile) RowEnd() int   { return t.Rect.Max.Y }

// PlaneRange is the imaginary-axis range covered by the band.
func (t Tile) PlaneRange(prec uint) (ys, ye *big.Float) {
	c := apfloat.Context{Prec: prec}
	ys = viewport.PlaneCoord(c.New(), t.Bounds.Ys, t.Bounds.Ye, c.FromInt(int64(t.RowStart())), t.Height)
	ye = viewport.PlaneCoord(c.New(), t.Bounds.Ys, t.Bounds.Ye, c.FromInt(int64(t.RowEnd())), t.Height)
	return ys, ye
}

// Partition splits a w x h image into min(n, h) bands. Every band has
// h/n rows except the last, which also takes the remainder.
// Each band carries the full bounds: its plane range comes from
// viewport.PlaneCoord on its rows, never from (Ye-Ys)/n.
func Partition(b viewport.Bounds, prec uint, w, h, n, maxIter int) []Tile {
	c := apfloat.Context{Prec: prec}
	rects := splitRows(image.Rect(0, 0, w, h), n)
	tiles := make([]Tile, len(rects))
	for i, r := range rects {
		tiles[i] = Tile{
			Index:   i,
			Rect:    r,
			Width:   w,
			Height:  h,
			MaxIter: maxIter,
			Bounds:  b.Copy(c),
		}
	}
	return tiles
}

// splitRows splits r into n full-width bands.
func splitRows(r image.Rectangle, n int) []image.Rectangle {
	h := r.Dy()
	if n > h {
		n = h
	}
	if n < 1 {
		panic("render: cannot split into less than one band")
	}

	rows := h / n
	bands := make([]image.Rectangle, n)
	for i := range bands {
		y0 := r.Min.Y + i*rows
		y1 := y0 + rows
		if i == n-1 {
			y1 = r.Max.Y
		}
		bands[i] = image.Rect(r.Min.X, y0, r.Max.X, y1)
	}
	return bands
}
