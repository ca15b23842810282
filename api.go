package mandel

//go:generate go run github.com/marben/irpc/cmd/irpc api.go

// Session is one caller's private view of the plane. Engine implements
// it in process; cmd/server serves it per connection and cmd/cliclient
// drives it through NewSessionIrpcClient.
type Session interface {
	Initialize(xs, xe, ys, ye, cx, cy string) error
	// Compute renders the current viewport as w*h*3 RGB bytes, row-major.
	Compute(w, h, maxIter int) ([]byte, error)
	ComputeSlice(w, h, slices, slice, maxIter int) ([]byte, error)
	// ComputeFrame renders like Compute, or like ComputeSlice when slices > 0,
	// and packs the pixels with wire.EncodeFrame.
	ComputeFrame(w, h, slices, slice, maxIter int) ([]byte, error)
	ZoomInViaCursor(mx, my float64, w, h, factor int) error
	ZoomIn(w, h, factor int) error
	ZoomOut(factor int) error
	Bounds() (xs, xe, ys, ye string)
	ZoomLevel() int
}

var _ Session = (*Engine)(nil)
