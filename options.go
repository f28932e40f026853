package entropy

// Option configures an Analyze call.
// Use functional options to customize which signals are computed.
//
// Example:
//
//	// Full-resolution scan, all signals
//	report, err := entropy.Analyze(pm)
//
//	// Strided scan, entropy only
//	report, err := entropy.Analyze(pm,
//	    entropy.WithSampleRate(4),
//	    entropy.WithStats(false),
//	    entropy.WithCompression(false))
type Option func(*analyzeOptions)

// analyzeOptions holds optional configuration for Analyze.
type analyzeOptions struct {
	sampleRate  uint32
	stats       bool
	compression bool
}

// defaultAnalyzeOptions returns the default Analyze configuration:
// full-resolution scan with every signal enabled.
func defaultAnalyzeOptions() analyzeOptions {
	return analyzeOptions{
		sampleRate:  1,
		stats:       true,
		compression: true,
	}
}

// WithSampleRate sets the stride of the luminance scan. Rates of 0 or
// 1 scan every pixel; a rate of n visits every n-th row and column.
func WithSampleRate(rate uint32) Option {
	return func(o *analyzeOptions) {
		o.sampleRate = rate
	}
}

// WithStats enables or disables the luminance summary statistics
// signal. Enabled by default.
func WithStats(enabled bool) Option {
	return func(o *analyzeOptions) {
		o.stats = enabled
	}
}

// WithCompression enables or disables the compressibility signal.
// Enabled by default. Disable it to keep Analyze allocation-light on
// hot paths where only the entropy value is needed.
func WithCompression(enabled bool) Option {
	return func(o *analyzeOptions) {
		o.compression = enabled
	}
}
