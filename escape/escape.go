// Package escape runs the Mandelbrot escape-time iteration at arbitrary
// precision.
package escape

import (
	"math/big"

	"github.com/marben/deepzoom_mandel/apfloat"
)

// Evaluator holds the scratch values for one goroutine.
// It is not safe for concurrent use.
type Evaluator struct {
	x, y, xsq, ysq, xtmp, xy, sum *big.Float
	four                          *big.Float
}

func NewEvaluator(prec uint) *Evaluator {
	c := apfloat.Context{Prec: prec}
	return &Evaluator{
		x:    c.New(),
		y:    c.New(),
		xsq:  c.New(),
		ysq:  c.New(),
		xtmp: c.New(),
		xy:   c.New(),
		sum:  c.New(),
		four: c.FromInt(4),
	}
}

// Iterations iterates z = z^2 + c for c = (x0, y0) starting at z = 0.
//
// The bailout test at the top of each step uses the squares computed in
// the previous step, so the result is one past the first n with
// |z_n|^2 > 4. Points that stay bounded return maxIter.
func (e *Evaluator) Iterations(x0, y0 *big.Float, maxIter int) int {
	e.x.SetInt64(0)
	e.y.SetInt64(0)
	e.sum.SetInt64(0)

	it := 0
	for it < maxIter && e.sum.Cmp(e.four) <= 0 {
		e.xsq.Mul(e.x, e.x)
		e.ysq.Mul(e.y, e.y)

		// x' = x^2 - y^2 + x0
		e.xtmp.Sub(e.xsq, e.ysq)
		e.xtmp.Add(e.xtmp, x0)

		// y' = 2xy + y0
		e.xy.Mul(e.x, e.y)
		e.xy.SetMantExp(e.xy, 1)
		e.y.Add(e.xy, y0)

		e.x, e.xtmp = e.xtmp, e.x

		e.sum.Add(e.xsq, e.ysq)
		it++
	}
	return it
}
