// Package entropy measures the visual complexity of images.
//
// # Overview
//
// The core metric is the Shannon entropy of an image's luminance
// distribution: pixels are reduced to 8-bit luminance with a
// fixed-point approximation of the perceptual luma weights, counted
// into a 256-bucket histogram, and the histogram's entropy is computed
// in bits. The result ranges from 0.0 (uniform color) to 8.0
// (perfectly spread luminance) and is useful for adaptive compression
// decisions, change detection, and UI heuristics.
//
// # Quick Start
//
//	import "github.com/gopix/entropy"
//
//	pm := entropy.FromImage(img)
//	e := pm.Entropy()
//
//	// Bound cost on large images with a strided scan:
//	e = pm.EntropyDownsampled(4)
//
// Raw RGBA buffers work without a Pixmap:
//
//	e := entropy.Entropy(pixels, width, height)
//
// # Signals beyond entropy
//
// Analyze produces an aggregate Report with optional luminance summary
// statistics and a zstd compressibility ratio, both cross-checks for
// the entropy value:
//
//	report, err := entropy.Analyze(pm, entropy.WithSampleRate(4))
//
// # Semantics
//
// The numeric path is synchronous, allocation-light, and stateless:
// every call builds its own histogram and never retains or mutates the
// caller's buffer. Truncated buffers are tolerated: a trailing
// incomplete pixel quad is skipped, not faulted on. Strided scans with
// a rate of 0 or 1 are bit-identical to the full scan.
//
// # Host integration
//
// Init installs a one-time fault handler that lets an embedding
// runtime observe panics from the numeric path before they propagate,
// and SetLogger attaches a log/slog logger (silent by default).
package entropy
