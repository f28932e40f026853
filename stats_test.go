package entropy

import (
	"errors"
	"math"
	"testing"
)

func TestStats_UniformGray(t *testing.T) {
	// Every pixel (128, 128, 128) has luminance exactly 128.
	buf := uniformBuffer(8, 8, 128, 128, 128)
	s, err := Stats(buf, 8, 8)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if s.Mean != 128 || s.Median != 128 || s.Min != 128 || s.Max != 128 {
		t.Errorf("Stats = %+v, want all 128", s)
	}
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0 for a constant signal", s.StdDev)
	}
}

func TestStats_TwoTone(t *testing.T) {
	const w, h = 16, 16
	buf := uniformBuffer(w, h, 0, 0, 0)
	for k := 0; k < w*h/2; k++ {
		i := k * 4
		buf[i+0] = 255
		buf[i+1] = 255
		buf[i+2] = 255
	}

	s, err := Stats(buf, w, h)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if math.Abs(s.Mean-127.5) > 1e-9 {
		t.Errorf("Mean = %v, want 127.5", s.Mean)
	}
	if math.Abs(s.Median-127.5) > 1e-9 {
		t.Errorf("Median = %v, want 127.5", s.Median)
	}
	if s.Min != 0 || s.Max != 255 {
		t.Errorf("range = [%v, %v], want [0, 255]", s.Min, s.Max)
	}
	// Population stddev of a balanced {0, 255} split is 127.5.
	if math.Abs(s.StdDev-127.5) > 1e-9 {
		t.Errorf("StdDev = %v, want 127.5", s.StdDev)
	}
}

func TestStats_EmptyBuffer(t *testing.T) {
	_, err := Stats(nil, 0, 0)
	if !errors.Is(err, ErrEmptySample) {
		t.Errorf("Stats(nil) error = %v, want ErrEmptySample", err)
	}
}

func TestStats_ToleratesTruncation(t *testing.T) {
	buf := uniformBuffer(3, 1, 60, 60, 60)
	s, err := Stats(buf[:len(buf)-2], 3, 1)
	if err != nil {
		t.Fatalf("Stats(truncated) error = %v", err)
	}
	if s.Mean != 60 {
		t.Errorf("Mean = %v, want 60", s.Mean)
	}
}
