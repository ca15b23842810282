package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

const (
	headerLen = 8

	// MaxFramePixels bounds what DecodeFrame will inflate.
	MaxFramePixels = 1 << 26
)

var ErrFrame = errors.New("wire: malformed frame")

var (
	zstdEncoderLevel = zstd.SpeedDefault

	encOnce sync.Once
	enc     *zstd.Encoder
	encErr  error

	decOnce sync.Once
	dec     *zstd.Decoder
	decErr  error
)

// EncodeAll and DecodeAll are safe for concurrent use, so one encoder
// and one decoder serve every session.
func encoder() (*zstd.Encoder, error) {
	encOnce.Do(func() {
		enc, encErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdEncoderLevel))
	})
	return enc, encErr
}

func decoder() (*zstd.Decoder, error) {
	decOnce.Do(func() {
		dec, decErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxFramePixels*3))
	})
	return dec, decErr
}

// EncodeFrame packs a w x h RGB buffer as a big-endian (w, h) uint32
// header followed by the zstd-compressed pixels.
func EncodeFrame(w, h int, rgb []byte) ([]byte, error) {
	if w <= 0 || h <= 0 || len(rgb) != w*h*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrFrame, len(rgb), w, h)
	}
	e, err := encoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	out := make([]byte, headerLen, headerLen+len(rgb)/4)
	binary.BigEndian.PutUint32(out[0:4], uint32(w))
	binary.BigEndian.PutUint32(out[4:8], uint32(h))
	return e.EncodeAll(rgb, out), nil
}

// DecodeFrame reverses EncodeFrame.
func DecodeFrame(b []byte) (w, h int, rgb []byte, err error) {
	if len(b) < headerLen {
		return 0, 0, nil, fmt.Errorf("%w: %d byte message", ErrFrame, len(b))
	}
	w = int(binary.BigEndian.Uint32(b[0:4]))
	h = int(binary.BigEndian.Uint32(b[4:8]))
	if w <= 0 || h <= 0 || w > MaxFramePixels || h > MaxFramePixels || w*h > MaxFramePixels {
		return 0, 0, nil, fmt.Errorf("%w: size %dx%d", ErrFrame, w, h)
	}

	d, err := decoder()
	if err != nil {
		return 0, 0, nil, fmt.Errorf("zstd decoder: %w", err)
	}
	rgb, err = d.DecodeAll(b[headerLen:], make([]byte, 0, w*h*3))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", ErrFrame, err)
	}
	if len(rgb) != w*h*3 {
		return 0, 0, nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrFrame, len(rgb), w, h)
	}
	return w, h, rgb, nil
}
