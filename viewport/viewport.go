// Package viewport holds the visible rectangle of the complex plane and
// the zoom operations that move it.
//
// All corners are kept at one arbitrary precision. The rectangle never
// leaves the global domain [-2, 1] x [-1.5, 1.5]: zooms that would cross
// an edge are shifted back in, keeping the rectangle's size.
package viewport

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/marben/deepzoom_mandel/apfloat"
)

// Global domain edges.
const (
	DomainXs = -2.0
	DomainXe = 1.0
	DomainYs = -1.5
	DomainYe = 1.5
)

var (
	ErrInverted           = errors.New("viewport: start corner is not below end corner")
	ErrFactor             = errors.New("viewport: zoom factor out of range")
	ErrCursor             = errors.New("viewport: cursor is not a finite position")
	ErrPrecisionExhausted = errors.New("viewport: zoom exhausted precision")
)

// Bounds is a rectangle of the complex plane: real axis [Xs, Xe],
// imaginary axis [Ys, Ye].
type Bounds struct {
	Xs, Xe, Ys, Ye *big.Float
}

// Copy returns a deep copy at the given precision.
func (b Bounds) Copy(c apfloat.Context) Bounds {
	return Bounds{
		Xs: c.Copy(b.Xs),
		Xe: c.Copy(b.Xe),
		Ys: c.Copy(b.Ys),
		Ye: c.Copy(b.Ye),
	}
}

// Strings formats the corners as decimal strings that carry their full precision.
func (b Bounds) Strings() (xs, xe, ys, ye string) {
	return apfloat.Text(b.Xs), apfloat.Text(b.Xe), apfloat.Text(b.Ys), apfloat.Text(b.Ye)
}

func (b Bounds) String() string {
	xs, xe, ys, ye := b.Strings()
	return fmt.Sprintf("[%s, %s] x [%s, %s]", xs, xe, ys, ye)
}

// Ordered reports Xs < Xe and Ys < Ye.
func (b Bounds) Ordered() bool {
	return b.Xs.Cmp(b.Xe) < 0 && b.Ys.Cmp(b.Ye) < 0
}

// InDomain reports whether b lies inside the global domain.
func (b Bounds) InDomain() bool {
	return b.Xs.Cmp(big.NewFloat(DomainXs)) >= 0 &&
		b.Xe.Cmp(big.NewFloat(DomainXe)) <= 0 &&
		b.Ys.Cmp(big.NewFloat(DomainYs)) >= 0 &&
		b.Ye.Cmp(big.NewFloat(DomainYe)) <= 0
}

// Domain returns the global domain at precision c.
func Domain(c apfloat.Context) Bounds {
	return Bounds{
		Xs: c.FromFloat64(DomainXs),
		Xe: c.FromFloat64(DomainXe),
		Ys: c.FromFloat64(DomainYs),
		Ye: c.FromFloat64(DomainYe),
	}
}

// PlaneCoord sets dst = start + (end-start)*pos/span and returns dst.
// dst must not alias start or end.
func PlaneCoord(dst, start, end, pos *big.Float, span int) *big.Float {
	dst.Sub(end, start)
	dst.Mul(dst, pos)
	dst.Quo(dst, new(big.Float).SetInt64(int64(span)))
	return dst.Add(dst, start)
}

// Viewport is the mutable zoom state. It is not safe for concurrent use.
type Viewport struct {
	ctx apfloat.Context
	b   Bounds

	// fixed zoom anchor, set when Set was given a centre inside the domain
	cx, cy *big.Float

	// last cursor zoom target, nil until the first cursor zoom
	mx, my *big.Float

	level int
}

// New returns a viewport covering the whole domain.
func New(prec uint) *Viewport {
	c := apfloat.Context{Prec: prec}
	return &Viewport{ctx: c, b: Domain(c)}
}

func (v *Viewport) Precision() uint { return v.ctx.Prec }

// Level is the number of zoom-ins not undone by zoom-outs.
func (v *Viewport) Level() int { return v.level }

// Snapshot returns a deep copy of the current bounds.
func (v *Viewport) Snapshot() Bounds {
	return v.b.Copy(v.ctx)
}

// fixedCenter returns a copy of the zoom anchor, if one is configured.
func (v *Viewport) fixedCenter() (x, y *big.Float, ok bool) {
	if v.cx == nil {
		return nil, nil, false
	}
	return v.ctx.Copy(v.cx), v.ctx.Copy(v.cy), true
}

// Set replaces the bounds and the fixed centre from decimal strings and
// resets the zoom level. A centre outside the domain (e.g. "99.9")
// disables the fixed centre. On error the viewport is unchanged.
func (v *Viewport) Set(xs, xe, ys, ye, cx, cy string) error {
	vals := make([]*big.Float, 0, 6)
	for _, s := range []string{xs, xe, ys, ye, cx, cy} {
		f, err := v.ctx.Parse(s)
		if err != nil {
			return err
		}
		vals = append(vals, f)
	}

	b := Bounds{Xs: vals[0], Xe: vals[1], Ys: vals[2], Ye: vals[3]}
	if !b.Ordered() {
		return fmt.Errorf("%w: %s", ErrInverted, b)
	}
	v.pushIntoDomain(b)
	v.clipToDomain(b)

	center := Bounds{Xs: vals[4], Xe: vals[4], Ys: vals[5], Ye: vals[5]}
	if center.InDomain() {
		v.cx, v.cy = vals[4], vals[5]
	} else {
		v.cx, v.cy = nil, nil
	}
	v.b = b
	v.mx, v.my = nil, nil
	v.level = 0
	return nil
}

// PixelToPlane maps display position (dx, dy) on a w x h display into
// the plane.
func (v *Viewport) PixelToPlane(dx, dy float64, w, h int) (x, y *big.Float) {
	x = PlaneCoord(v.ctx.New(), v.b.Xs, v.b.Xe, v.ctx.FromFloat64(dx), w)
	y = PlaneCoord(v.ctx.New(), v.b.Ys, v.b.Ye, v.ctx.FromFloat64(dy), h)
	return x, y
}

// ZoomInViaCursor zooms in on the plane point under the cursor at
// (mx, my) on a w x h display. With a fixed centre the cursor is ignored.
func (v *Viewport) ZoomInViaCursor(mx, my float64, w, h, factor int) error {
	if !finite(mx) || !finite(my) {
		return fmt.Errorf("%w: (%v, %v)", ErrCursor, mx, my)
	}
	if v.cx != nil {
		return v.ZoomIn(factor)
	}
	tx, ty := v.PixelToPlane(mx, my, w, h)
	if err := v.zoomInAt(tx, ty, factor); err != nil {
		return err
	}
	v.mx, v.my = tx, ty
	return nil
}

// ZoomIn recentres on the zoom target and keeps factor percent of the
// width and height. The target is the fixed centre if configured, else
// the last cursor target, else the current centre.
func (v *Viewport) ZoomIn(factor int) error {
	tx, ty := v.target()
	return v.zoomInAt(tx, ty, factor)
}

func (v *Viewport) target() (x, y *big.Float) {
	if cx, cy, ok := v.fixedCenter(); ok {
		return cx, cy
	}
	if v.mx != nil {
		return v.mx, v.my
	}
	return v.centre(v.b)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v *Viewport) centre(b Bounds) (x, y *big.Float) {
	x = v.ctx.New().Sub(b.Xe, b.Xs)
	x.SetMantExp(x, -1).Add(x, b.Xs)
	y = v.ctx.New().Sub(b.Ye, b.Ys)
	y.SetMantExp(y, -1).Add(y, b.Ys)
	return x, y
}

func (v *Viewport) zoomInAt(tx, ty *big.Float, factor int) error {
	if factor <= 0 || factor >= 100 {
		return fmt.Errorf("%w: zoom in by %d%%", ErrFactor, factor)
	}
	b := v.Snapshot()
	oldW, oldH := v.width(b)

	// move the rectangle so the target is its centre
	cx, cy := v.centre(b)
	dx := v.ctx.New().Sub(tx, cx)
	dy := v.ctx.New().Sub(ty, cy)
	b.Xs.Add(b.Xs, dx)
	b.Xe.Add(b.Xe, dx)
	b.Ys.Add(b.Ys, dy)
	b.Ye.Add(b.Ye, dy)

	// pull each side in by (1 - factor/100)/2 of the size
	sx, sy := v.width(b)
	v.scale(sx, int64(100-factor), 200)
	v.scale(sy, int64(100-factor), 200)
	b.Xs.Add(b.Xs, sx)
	b.Xe.Sub(b.Xe, sx)
	b.Ys.Add(b.Ys, sy)
	b.Ye.Sub(b.Ye, sy)

	v.pushIntoDomain(b)

	newW, newH := v.width(b)
	if !b.Ordered() || newW.Cmp(oldW) >= 0 || newH.Cmp(oldH) >= 0 {
		return fmt.Errorf("%w at %d bits, level %d", ErrPrecisionExhausted, v.ctx.Prec, v.level)
	}
	v.b = b
	v.level++
	return nil
}

// ZoomOut grows the rectangle about its centre to 100/factor times its
// size, then pushes and clips it into the domain.
func (v *Viewport) ZoomOut(factor int) error {
	if factor <= 0 {
		return fmt.Errorf("%w: zoom out by %d%%", ErrFactor, factor)
	}
	b := v.Snapshot()

	// per side growth: (size/(factor/100) - size)/2
	gx, gy := v.width(b)
	v.scale(gx, int64(100-factor), int64(2*factor))
	v.scale(gy, int64(100-factor), int64(2*factor))
	b.Xs.Sub(b.Xs, gx)
	b.Xe.Add(b.Xe, gx)
	b.Ys.Sub(b.Ys, gy)
	b.Ye.Add(b.Ye, gy)

	v.pushIntoDomain(b)
	v.clipToDomain(b)

	if !b.Ordered() {
		return fmt.Errorf("%w at %d bits, level %d", ErrPrecisionExhausted, v.ctx.Prec, v.level)
	}
	v.b = b
	if v.level > 0 {
		v.level--
	}
	return nil
}

func (v *Viewport) width(b Bounds) (w, h *big.Float) {
	return v.ctx.New().Sub(b.Xe, b.Xs), v.ctx.New().Sub(b.Ye, b.Ys)
}

// scale sets x = x*num/den.
func (v *Viewport) scale(x *big.Float, num, den int64) {
	x.Mul(x, v.ctx.FromInt(num))
	x.Quo(x, v.ctx.FromInt(den))
}

// pushIntoDomain snaps a corner that crossed a domain edge back onto the
// edge and shifts the opposite corner by the same overshoot.
func (v *Viewport) pushIntoDomain(b Bounds) {
	push := func(lo, hi *big.Float, edgeLo, edgeHi float64) {
		off := v.ctx.New()
		if lo.Cmp(big.NewFloat(edgeLo)) < 0 {
			off.Sub(lo, big.NewFloat(edgeLo))
			lo.SetFloat64(edgeLo)
			hi.Sub(hi, off)
		}
		if hi.Cmp(big.NewFloat(edgeHi)) > 0 {
			off.Sub(hi, big.NewFloat(edgeHi))
			hi.SetFloat64(edgeHi)
			lo.Sub(lo, off)
		}
	}
	push(b.Xs, b.Xe, DomainXs, DomainXe)
	push(b.Ys, b.Ye, DomainYs, DomainYe)
}

// clipToDomain clamps each corner to the domain on its own.
func (v *Viewport) clipToDomain(b Bounds) {
	clip := func(x *big.Float, edgeLo, edgeHi float64) {
		if x.Cmp(big.NewFloat(edgeLo)) < 0 {
			x.SetFloat64(edgeLo)
		}
		if x.Cmp(big.NewFloat(edgeHi)) > 0 {
			x.SetFloat64(edgeHi)
		}
	}
	clip(b.Xs, DomainXs, DomainXe)
	clip(b.Xe, DomainXs, DomainXe)
	clip(b.Ys, DomainYs, DomainYe)
	clip(b.Ye, DomainYs, DomainYe)
}
