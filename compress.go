package entropy

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compressibility estimates how compressible a pixel buffer is by
// zstd-compressing it and returning originalSize/compressedSize.
// A uniform image compresses to a tiny fraction of its size (high
// ratio); a noisy, high-entropy image barely compresses (ratio near
// 1.0). Useful as a cross-check against the entropy metric.
func Compressibility(pixels []uint8) (float64, error) {
	if len(pixels) == 0 {
		return 0, ErrEmptySample
	}

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return 0, fmt.Errorf("entropy: create zstd writer: %w", err)
	}
	if _, err := enc.Write(pixels); err != nil {
		enc.Close()
		return 0, fmt.Errorf("entropy: compress pixels: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("entropy: flush zstd stream: %w", err)
	}

	return float64(len(pixels)) / float64(buf.Len()), nil
}
