package entropy

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// LumStats summarizes an image's luminance distribution on the 0-255
// scale. StdDev doubles as a contrast measure.
type LumStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats computes summary statistics of the luminance distribution of
// an RGBA pixel buffer. The buffer is walked the same way HistogramOf
// walks it, including the tolerance for a trailing incomplete quad.
// Returns ErrEmptySample when the buffer yields no pixels.
func Stats(pixels []uint8, width, height int) (LumStats, error) {
	defer guard()
	return lumStats(pixels, width, height)
}

// lumStats is the unguarded body of Stats. Analyze calls it directly
// so that a fault unwinds through a single guard frame and the host
// handler is notified once.
func lumStats(pixels []uint8, width, height int) (LumStats, error) {
	if len(pixels) < 3 {
		return LumStats{}, ErrEmptySample
	}

	samples := make(stats.Float64Data, 0, max(width*height, 0))
	for i := 0; i+2 < len(pixels); i += 4 {
		samples = append(samples, float64(luma8(pixels[i], pixels[i+1], pixels[i+2])))
	}

	var (
		s   LumStats
		err error
	)
	if s.Mean, err = stats.Mean(samples); err != nil {
		return LumStats{}, fmt.Errorf("entropy: luminance mean: %w", err)
	}
	if s.Median, err = stats.Median(samples); err != nil {
		return LumStats{}, fmt.Errorf("entropy: luminance median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(samples); err != nil {
		return LumStats{}, fmt.Errorf("entropy: luminance stddev: %w", err)
	}
	if s.Min, err = stats.Min(samples); err != nil {
		return LumStats{}, fmt.Errorf("entropy: luminance min: %w", err)
	}
	if s.Max, err = stats.Max(samples); err != nil {
		return LumStats{}, fmt.Errorf("entropy: luminance max: %w", err)
	}
	return s, nil
}
