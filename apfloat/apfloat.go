// Package apfloat adapts math/big.Float to the fixed-precision decimal
// values used for viewport corners and per-pixel iteration.
package apfloat

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

const (
	// MinPrec is the smallest usable precision, that of a float64 mantissa.
	MinPrec uint = 53
	// DefaultPrec is enough for several hundred halving zooms.
	DefaultPrec uint = 512
)

var (
	ErrPrecision = errors.New("apfloat: precision too small")
	ErrSyntax    = errors.New("apfloat: invalid decimal")
)

const mode = big.ToNearestEven

// Context creates values that all share one bit precision.
type Context struct {
	Prec uint
}

func (c Context) Validate() error {
	if c.Prec < MinPrec {
		return fmt.Errorf("%w: %d bits (min %d)", ErrPrecision, c.Prec, MinPrec)
	}
	return nil
}

// New returns a zero value at the context precision.
func (c Context) New() *big.Float {
	return new(big.Float).SetPrec(c.Prec).SetMode(mode)
}

// Parse reads a base-10 decimal string such as "-0.7435" or "1e-30".
func (c Context) Parse(s string) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, c.Prec, mode)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrSyntax, s, err)
	}
	if f.IsInf() {
		return nil, fmt.Errorf("%w %q: infinite", ErrSyntax, s)
	}
	return f, nil
}

func (c Context) FromInt(i int64) *big.Float {
	return c.New().SetInt64(i)
}

func (c Context) FromFloat64(f float64) *big.Float {
	return c.New().SetFloat64(f)
}

// Copy returns x rounded to the context precision. x is not modified.
func (c Context) Copy(x *big.Float) *big.Float {
	return c.New().Set(x)
}

// Digits is the number of significant decimal digits needed to carry
// prec bits through a decimal string.
func Digits(prec uint) int {
	return int(math.Ceil(float64(prec)*math.Log10(2))) + 2
}

// Text formats x as a decimal string that parses back to the same value
// at x's precision.
func Text(x *big.Float) string {
	return x.Text('g', Digits(x.Prec()))
}
