package mandel

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"runtime"
	"sync"

	"github.com/marben/deepzoom_mandel/apfloat"
	"github.com/marben/deepzoom_mandel/palette"
	"github.com/marben/deepzoom_mandel/render"
	"github.com/marben/deepzoom_mandel/viewport"
	"github.com/marben/deepzoom_mandel/wire"
)

var (
	ErrInvalidSize    = errors.New("mandel: width and height must be positive")
	ErrInvalidMaxIter = errors.New("mandel: max iterations must be positive")
	ErrInvalidFactor  = errors.New("mandel: zoom factor out of range")
	ErrInvalidSlice   = errors.New("mandel: slice out of range")
	ErrInvalidCursor  = errors.New("mandel: cursor position must be finite")
	ErrClosed         = errors.New("mandel: engine torn down")

	// ErrPrecisionExhausted is returned by zoom-ins once the precision can
	// no longer tell neighbouring viewports apart.
	ErrPrecisionExhausted = viewport.ErrPrecisionExhausted
)

// Engine owns one viewport and renders it. Calls are serialized, so an
// Engine may be shared, but a compute blocks zooms until it returns.
type Engine struct {
	prec    uint
	workers int
	cores   int
	palette palette.Func
	logger  *log.Logger

	m      sync.Mutex
	vp     *viewport.Viewport
	sched  *render.Scheduler
	closed bool
}

type Option func(*Engine)

// WithPrecision sets the bit precision of the viewport and of the
// per-pixel arithmetic.
func WithPrecision(prec uint) Option {
	return func(e *Engine) { e.prec = prec }
}

// WithWorkers sets the number of bands a compute is split into.
// Zero or less uses every core.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

func WithPalette(f palette.Func) Option {
	return func(e *Engine) { e.palette = f }
}

// WithLogger enables per-call logging.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Setup creates an engine whose viewport covers the whole domain with
// no fixed centre.
func Setup(opts ...Option) (*Engine, error) {
	e := &Engine{
		prec:    apfloat.DefaultPrec,
		cores:   runtime.NumCPU(),
		palette: palette.UltraFractal,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(e)
	}
	if err := (apfloat.Context{Prec: e.prec}).Validate(); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	if e.workers <= 0 {
		e.workers = e.cores
	}

	e.vp = viewport.New(e.prec)
	e.sched = &render.Scheduler{
		Workers: e.workers,
		Prec:    e.prec,
		Palette: e.palette,
		Logger:  e.logger,
	}
	e.logger.Printf("engine ready: %d bits, %d workers on %d cores", e.prec, e.workers, e.cores)
	return e, nil
}

// Initialize replaces the viewport and the fixed centre with the given
// decimal strings and resets the zoom level. A centre outside the domain,
// such as NoCenter, means zooms follow the cursor.
func (e *Engine) Initialize(xs, xe, ys, ye, cx, cy string) error {
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return ErrClosed
	}
	if err := e.vp.Set(xs, xe, ys, ye, cx, cy); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	e.logger.Printf("initialized to %s", e.vp.Snapshot())
	return nil
}

// InitializeRegion is Initialize with r and no fixed centre.
func (e *Engine) InitializeRegion(r Region) error {
	return e.Initialize(r.Xs, r.Xe, r.Ys, r.Ye, NoCenter, NoCenter)
}

// Compute renders the current viewport into a fresh w*h*3 buffer owned
// by the caller.
func (e *Engine) Compute(w, h, maxIter int) ([]byte, error) {
	if err := checkRequest(w, h, maxIter); err != nil {
		return nil, err
	}
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	buf, err := e.sched.Compute(e.vp.Snapshot(), w, h, maxIter)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	return buf, nil
}

// ComputeSlice renders only band slice of slices equal bands, top first.
// Concatenating every slice in order gives the same bytes as Compute.
func (e *Engine) ComputeSlice(w, h, slices, slice, maxIter int) ([]byte, error) {
	if err := checkRequest(w, h, maxIter); err != nil {
		return nil, err
	}
	if slices < 1 || slices > h || slice < 0 || slice >= slices {
		return nil, fmt.Errorf("%w: slice %d of %d for height %d", ErrInvalidSlice, slice, slices, h)
	}
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	buf, err := e.sched.ComputeSlice(e.vp.Snapshot(), w, h, slices, slice, maxIter)
	if err != nil {
		return nil, fmt.Errorf("compute slice: %w", err)
	}
	return buf, nil
}

// ComputeFrame renders the whole viewport, or band slice of slices when
// slices > 0, as a zstd frame. The frame height is the band height.
func (e *Engine) ComputeFrame(w, h, slices, slice, maxIter int) ([]byte, error) {
	if w > wire.MaxFramePixels/max(h, 1) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidSize, w, h, wire.MaxFramePixels)
	}

	var (
		rgb []byte
		err error
	)
	if slices > 0 {
		rgb, err = e.ComputeSlice(w, h, slices, slice, maxIter)
	} else {
		rgb, err = e.Compute(w, h, maxIter)
	}
	if err != nil {
		return nil, err
	}
	return wire.EncodeFrame(w, len(rgb)/(3*w), rgb)
}

// ZoomInViaCursor zooms in on the point under (mx, my) of a w x h
// display, keeping factor percent of the width and height.
func (e *Engine) ZoomInViaCursor(mx, my float64, w, h, factor int) error {
	if math.IsNaN(mx) || math.IsNaN(my) || math.IsInf(mx, 0) || math.IsInf(my, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCursor, mx, my)
	}
	if err := checkZoomIn(w, h, factor); err != nil {
		return err
	}
	return e.zoom(func(vp *viewport.Viewport) error {
		return vp.ZoomInViaCursor(mx, my, w, h, factor)
	})
}

// ZoomIn zooms in on the fixed centre, else on the last cursor target,
// else on the middle of the viewport.
func (e *Engine) ZoomIn(w, h, factor int) error {
	if err := checkZoomIn(w, h, factor); err != nil {
		return err
	}
	return e.zoom(func(vp *viewport.Viewport) error {
		return vp.ZoomIn(factor)
	})
}

// ZoomOut grows the viewport to 100/factor times its size, never past
// the domain.
func (e *Engine) ZoomOut(factor int) error {
	if factor <= 0 {
		return fmt.Errorf("%w: zoom out by %d%%", ErrInvalidFactor, factor)
	}
	return e.zoom(func(vp *viewport.Viewport) error {
		return vp.ZoomOut(factor)
	})
}

func (e *Engine) zoom(f func(vp *viewport.Viewport) error) error {
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return ErrClosed
	}
	if err := f(e.vp); err != nil {
		return fmt.Errorf("zoom: %w", err)
	}
	e.logger.Printf("zoom level %d: %s", e.vp.Level(), e.vp.Snapshot())
	return nil
}

// Teardown releases the viewport. Every later call fails with ErrClosed.
func (e *Engine) Teardown() {
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.vp = nil
	e.sched = nil
	e.logger.Printf("engine torn down")
}

// Bounds returns the viewport corners as decimal strings carrying the
// full precision. They are empty after Teardown.
func (e *Engine) Bounds() (xs, xe, ys, ye string) {
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return "", "", "", ""
	}
	return e.vp.Snapshot().Strings()
}

func (e *Engine) ZoomLevel() int {
	e.m.Lock()
	defer e.m.Unlock()

	if e.closed {
		return 0
	}
	return e.vp.Level()
}

// Cores is the CPU count seen at Setup.
func (e *Engine) Cores() int { return e.cores }

func (e *Engine) Workers() int { return e.workers }

func (e *Engine) Precision() uint { return e.prec }

func checkRequest(w, h, maxIter int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxIter, maxIter)
	}
	return nil
}

func checkZoomIn(w, h, factor int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if factor <= 0 || factor >= 100 {
		return fmt.Errorf("%w: zoom in by %d%%", ErrInvalidFactor, factor)
	}
	return nil
}
