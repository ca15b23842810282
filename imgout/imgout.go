// Package imgout turns engine RGB buffers into images and PNG files.
package imgout

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

var ErrBuffer = errors.New("imgout: buffer does not match image size")

// ToRGBA copies a row-major w*h*3 RGB buffer into an opaque image.
func ToRGBA(w, h int, rgb []byte) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(rgb) != w*h*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBuffer, len(rgb), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// Downscale shrinks a supersampled render to w x h with a Lanczos filter.
func Downscale(img image.Image, w, h int) image.Image {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}

// Uniform reports whether every pixel of rgb has the same color.
// A zoom sequence has bottomed out once its frames turn uniform.
func Uniform(rgb []byte) bool {
	for i := 3; i+2 < len(rgb); i += 3 {
		if rgb[i] != rgb[0] || rgb[i+1] != rgb[1] || rgb[i+2] != rgb[2] {
			return false
		}
	}
	return true
}

// FrameName is the file name of frame n of a zoom sequence.
func FrameName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("image%04d.png", n))
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
