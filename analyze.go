package entropy

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a pixmap whose width or height is not
// positive, or whose buffer is shorter than its dimensions declare.
var ErrInvalidDimensions = errors.New("entropy: invalid dimensions")

// ErrEmptySample indicates that a scan visited no pixels, so no
// distribution exists to summarize.
var ErrEmptySample = errors.New("entropy: no pixels sampled")

// Report aggregates the visual-complexity signals of one image.
type Report struct {
	// Width and Height in pixels.
	Width, Height int

	// SampleCount is the number of pixels the luminance scan visited.
	SampleCount int

	// Entropy of the luminance distribution, 0-8 bits.
	Entropy float64

	// Stats summarizes the luminance distribution. Zero value when
	// disabled via WithStats(false).
	Stats LumStats

	// Compressibility is the zstd compression ratio of the raw
	// buffer. Zero when disabled via WithCompression(false).
	Compressibility float64
}

// Analyze computes the enabled complexity signals for a pixmap.
//
// Unlike the raw Entropy and EntropyDownsampled calls, which stay
// permissive for compatibility with callers that tolerate truncated
// buffers, Analyze validates its input: non-positive dimensions or a
// buffer shorter than width*height*4 return ErrInvalidDimensions, and
// a strided scan that visits no pixels returns ErrEmptySample.
func Analyze(pm *Pixmap, opts ...Option) (Report, error) {
	defer guard()

	o := defaultAnalyzeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if pm == nil || pm.width <= 0 || pm.height <= 0 {
		return Report{}, ErrInvalidDimensions
	}
	if len(pm.data) < pm.width*pm.height*4 {
		return Report{}, fmt.Errorf("%w: %dx%d needs %d bytes, buffer holds %d",
			ErrInvalidDimensions, pm.width, pm.height, pm.width*pm.height*4, len(pm.data))
	}

	hist, n := HistogramOfSampled(pm.data, pm.width, pm.height, o.sampleRate)
	if n == 0 {
		return Report{}, ErrEmptySample
	}

	r := Report{
		Width:       pm.width,
		Height:      pm.height,
		SampleCount: n,
		Entropy:     hist.Entropy(n),
	}

	if o.stats {
		s, err := lumStats(pm.data, pm.width, pm.height)
		if err != nil {
			return Report{}, err
		}
		r.Stats = s
	}

	if o.compression {
		c, err := Compressibility(pm.data)
		if err != nil {
			return Report{}, err
		}
		r.Compressibility = c
	}

	Logger().Debug("analyzed image",
		"width", r.Width, "height", r.Height,
		"samples", r.SampleCount, "entropy", r.Entropy)

	return r, nil
}
