// Command entropystat prints visual-complexity metrics for image files.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gopix/entropy"
)

func main() {
	var (
		sample  = flag.Uint("sample", 1, "sample rate: visit every n-th row and column")
		noStats = flag.Bool("no-stats", false, "skip luminance summary statistics")
		noComp  = flag.Bool("no-compress", false, "skip the compressibility signal")
		verbose = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: entropystat [flags] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *sample > math.MaxUint32 {
		log.Fatalf("-sample %d out of range (max %d)", *sample, uint64(math.MaxUint32))
	}

	if *verbose {
		entropy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	entropy.SetFaultHandler(func(v any) {
		log.Printf("internal fault: %v", v)
	})
	entropy.Init()

	for _, path := range flag.Args() {
		report, err := analyzeFile(path, uint32(*sample), !*noStats, !*noComp)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		printReport(path, report, !*noStats, !*noComp)
	}
}

func analyzeFile(path string, rate uint32, withStats, withComp bool) (entropy.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return entropy.Report{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return entropy.Report{}, fmt.Errorf("decode: %w", err)
	}
	entropy.Logger().Debug("decoded image", "path", path, "format", format)

	pm := entropy.FromImage(img)
	return entropy.Analyze(pm,
		entropy.WithSampleRate(rate),
		entropy.WithStats(withStats),
		entropy.WithCompression(withComp))
}

func printReport(path string, r entropy.Report, withStats, withComp bool) {
	fmt.Printf("%s: %dx%d, %d samples\n", path, r.Width, r.Height, r.SampleCount)
	fmt.Printf("  entropy         %.4f bits\n", r.Entropy)
	if withStats {
		fmt.Printf("  luminance       mean %.1f, median %.1f, stddev %.1f, range [%.0f, %.0f]\n",
			r.Stats.Mean, r.Stats.Median, r.Stats.StdDev, r.Stats.Min, r.Stats.Max)
	}
	if withComp {
		fmt.Printf("  compressibility %.2fx\n", r.Compressibility)
	}
}
