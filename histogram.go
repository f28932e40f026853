package entropy

// Histogram is a fixed-size frequency table over quantized luminance
// values. Index i holds the number of sampled pixels whose luminance
// fell into bucket i.
type Histogram [256]uint32

// Add quantizes an RGB triple and increments its luminance bucket.
func (h *Histogram) Add(r, g, b uint8) {
	h[luma8(r, g, b)]++
}

// Total returns the sum of all bucket counts.
func (h *Histogram) Total() int {
	var n int
	for _, c := range h {
		n += int(c)
	}
	return n
}

// HistogramOf reduces an RGBA pixel buffer to a luminance histogram.
//
// The buffer is walked in strides of 4 bytes (R, G, B, A in row-major
// order). A trailing incomplete quad is skipped rather than treated as
// an error, so a buffer whose length is not a multiple of 4 never
// faults. The returned sample count is width*height, the number of
// pixels the dimensions declare; for a well-formed buffer it equals
// the number of pixels actually counted.
func HistogramOf(pixels []uint8, width, height int) (Histogram, int) {
	var h Histogram
	for i := 0; i+2 < len(pixels); i += 4 {
		h.Add(pixels[i], pixels[i+1], pixels[i+2])
	}
	return h, width * height
}

// HistogramOfSampled reduces a regular subgrid of the pixel buffer to a
// luminance histogram, visiting rows 0, rate, 2*rate, ... and likewise
// for columns. A rate of 0 or 1 degenerates to the full scan and
// produces a result identical to HistogramOf.
//
// The returned sample count is the number of grid points actually
// visited; grid points whose byte offset falls outside the buffer
// (possible only when the dimensions overstate the buffer length) are
// skipped and not counted.
func HistogramOfSampled(pixels []uint8, width, height int, rate uint32) (Histogram, int) {
	if rate <= 1 {
		return HistogramOf(pixels, width, height)
	}

	var h Histogram
	step := int(rate)
	count := 0
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			i := (y*width + x) * 4
			if i+2 < len(pixels) {
				h.Add(pixels[i], pixels[i+1], pixels[i+2])
				count++
			}
		}
	}
	return h, count
}
