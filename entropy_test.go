package entropy

import (
	"math"
	"testing"
)

// uniformBuffer returns a width*height RGBA buffer filled with one color.
func uniformBuffer(width, height int, r, g, b uint8) []uint8 {
	buf := make([]uint8, width*height*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = 255
	}
	return buf
}

// grayBuffer returns a buffer whose pixel k has luminance k%256, so a
// multiple of 256 pixels spreads samples evenly across all buckets.
// A pixel (g, g, g) lands exactly in bucket g since the luma weights
// sum to 256.
func grayBuffer(width, height int) []uint8 {
	buf := make([]uint8, width*height*4)
	for k := 0; k < width*height; k++ {
		g := uint8(k % 256)
		i := k * 4
		buf[i+0] = g
		buf[i+1] = g
		buf[i+2] = g
		buf[i+3] = 255
	}
	return buf
}

func TestEntropy_Monochrome(t *testing.T) {
	buf := uniformBuffer(10, 10, 0, 0, 0)
	if got := Entropy(buf, 10, 10); got != 0 {
		t.Errorf("Entropy(black 10x10) = %v, want 0", got)
	}
}

func TestEntropy_TwoTone(t *testing.T) {
	// Half pure black, half pure white: buckets 0 and 255 each hold
	// 50% of samples, so the entropy is exactly one bit.
	const w, h = 16, 16
	buf := uniformBuffer(w, h, 0, 0, 0)
	for k := 0; k < w*h/2; k++ {
		i := k * 4
		buf[i+0] = 255
		buf[i+1] = 255
		buf[i+2] = 255
	}
	got := Entropy(buf, w, h)
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Entropy(two-tone) = %v, want 1.0", got)
	}
}

func TestEntropy_MaximallySpread(t *testing.T) {
	// 256 pixels with 256 distinct luminance values: a perfectly
	// uniform histogram, entropy log2(256) = 8.
	buf := grayBuffer(16, 16)
	got := Entropy(buf, 16, 16)
	if math.Abs(got-8.0) > 1e-9 {
		t.Errorf("Entropy(uniform histogram) = %v, want 8.0", got)
	}
}

func TestEntropy_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		pixels []uint8
		w, h   int
	}{
		{"black", uniformBuffer(7, 3, 0, 0, 0), 7, 3},
		{"gray ramp", grayBuffer(32, 32), 32, 32},
		{"single pixel", uniformBuffer(1, 1, 12, 200, 97), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.pixels, tt.w, tt.h)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Entropy(%s) = %v, want finite", tt.name, got)
			}
			if got < 0 || got > 8.0 {
				t.Errorf("Entropy(%s) = %v, outside [0, 8]", tt.name, got)
			}
		})
	}
}

func TestEntropy_ZeroArea(t *testing.T) {
	if got := Entropy(nil, 0, 0); got != 0 {
		t.Errorf("Entropy(nil, 0, 0) = %v, want 0", got)
	}
	if got := EntropyDownsampled(nil, 0, 0, 4); got != 0 {
		t.Errorf("EntropyDownsampled(nil, 0, 0, 4) = %v, want 0", got)
	}
}

func TestEntropyDownsampled_DegenerateRate(t *testing.T) {
	buf := grayBuffer(20, 15)
	want := Entropy(buf, 20, 15)
	for _, rate := range []uint32{0, 1} {
		if got := EntropyDownsampled(buf, 20, 15, rate); got != want {
			t.Errorf("EntropyDownsampled(rate=%d) = %v, want %v (identical to full scan)", rate, got, want)
		}
	}
}

func TestEntropyDownsampled_UniformImageAnyRate(t *testing.T) {
	// Sampling a constant signal can never introduce spurious entropy.
	buf := uniformBuffer(33, 21, 90, 45, 180)
	for _, rate := range []uint32{1, 2, 3, 5, 7, 16, 100} {
		if got := EntropyDownsampled(buf, 33, 21, rate); got != 0 {
			t.Errorf("EntropyDownsampled(uniform, rate=%d) = %v, want 0", rate, got)
		}
	}
}

func TestEntropy_RowOrderIndependent(t *testing.T) {
	// Histogram accumulation is commutative: reversing the row order
	// must not change the entropy.
	const w, h = 24, 17
	buf := grayBuffer(w, h)

	reversed := make([]uint8, len(buf))
	for y := 0; y < h; y++ {
		copy(reversed[y*w*4:(y+1)*w*4], buf[(h-1-y)*w*4:(h-y)*w*4])
	}

	if got, want := Entropy(reversed, w, h), Entropy(buf, w, h); got != want {
		t.Errorf("Entropy(reversed rows) = %v, want %v", got, want)
	}
}

func TestEntropy_TruncatedBuffer(t *testing.T) {
	// A buffer whose length is not a multiple of 4 must not fault;
	// the final partial pixel is excluded from the histogram.
	buf := uniformBuffer(2, 2, 10, 20, 30)

	for _, cut := range []int{1, 2, 3} {
		short := buf[:len(buf)-cut]
		got := Entropy(short, 2, 2)
		if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
			t.Errorf("Entropy(truncated by %d) = %v, want finite non-negative", cut, got)
		}
	}
}

func TestHistogramEntropy_ZeroSamples(t *testing.T) {
	var h Histogram
	if got := h.Entropy(0); got != 0 {
		t.Errorf("Entropy(0 samples) = %v, want 0", got)
	}
	h[0] = 5
	if got := h.Entropy(0); got != 0 {
		t.Errorf("Entropy(counts, 0 samples) = %v, want 0 (guarded, never NaN)", got)
	}
}
