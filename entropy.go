package entropy

import "math"

// Entropy computes the Shannon entropy, in bits, of the histogram's
// luminance distribution given the sample count that produced it.
// Empty buckets contribute nothing, so the result is always finite and
// non-negative, at most 8.0 (a perfectly uniform 256-bucket histogram).
// A sample count of zero or less yields 0.0.
func (h *Histogram) Entropy(samples int) float64 {
	if samples <= 0 {
		return 0
	}
	var e float64
	total := float64(samples)
	for _, count := range h {
		if count > 0 {
			p := float64(count) / total
			e -= p * math.Log2(p)
		}
	}
	return e
}

// Entropy computes the Shannon entropy of an RGBA pixel buffer's
// luminance distribution by scanning every pixel.
//
// The buffer holds width*height pixels of 4 bytes each (R, G, B, A) in
// row-major order. A short or truncated buffer is tolerated: pixels
// past the end are skipped, never faulted on (see HistogramOf). The
// result is 0.0 for a uniformly colored image and at most 8.0.
func Entropy(pixels []uint8, width, height int) float64 {
	defer guard()
	h, n := HistogramOf(pixels, width, height)
	return h.Entropy(n)
}

// EntropyDownsampled computes the same metric as Entropy but visits
// only every rate-th pixel along both axes, bounding cost on large
// images. A rate of 0 or 1 is identical to the full scan, not merely
// statistically equivalent.
func EntropyDownsampled(pixels []uint8, width, height int, rate uint32) float64 {
	defer guard()
	h, n := HistogramOfSampled(pixels, width, height, rate)
	return h.Entropy(n)
}
