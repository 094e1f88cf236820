// internal/app/stats.go
package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"adapterremoval/internal/config"
	"adapterremoval/internal/output"
	"adapterremoval/internal/version"
)

// Statistics accumulates per-run counters. Sink totals are read from the
// sinks themselves when reporting.
type Statistics struct {
	TotalReads      int
	BarcodesTrimmed int

	WellAligned   int
	PoorlyAligned int
	Unaligned     int

	TerminalTrimmed5 int
	TerminalTrimmed3 int
}

// comma renders n with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	start := len(s) % 3
	if start == 0 {
		start = 3
	}
	out := s[:start]
	for i := start; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}

// writeReport writes the settings-and-statistics report file.
func writeReport(s *config.Settings, stats *Statistics, files *output.Files) error {
	name := s.SettingsFile
	if name == "" {
		name = s.Basename + ".settings"
	}
	fh, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", name, err)
	}
	defer fh.Close()

	fmt.Fprintf(fh, "adapterremoval %s\n\n", version.Version)
	fmt.Fprintf(fh, "[Settings]\n")
	fmt.Fprintf(fh, "File 1: %s\n", s.File1)
	if s.Paired {
		fmt.Fprintf(fh, "File 2: %s\n", s.File2)
	}
	fmt.Fprintf(fh, "Adapter 1: %s\n", s.Adapter1)
	fmt.Fprintf(fh, "Adapter 2: %s\n", s.Adapter2)
	if s.TrimBarcode {
		fmt.Fprintf(fh, "Barcode: %s\n", s.Barcode)
	}
	fmt.Fprintf(fh, "Maximum allowed mismatch rate: %v\n", s.MismatchRate)
	fmt.Fprintf(fh, "Minimum genomic length: %d\n", s.MinGenomicLength)
	fmt.Fprintf(fh, "Minimum alignment length: %d\n", s.MinAlignmentLength)
	fmt.Fprintf(fh, "Maximum ambiguous bases: %d\n", s.MaxAmbiguousBases)
	fmt.Fprintf(fh, "Shift: %d\n", s.Shift)
	fmt.Fprintf(fh, "Trim ambiguous bases: %v\n", s.TrimAmbiguous)
	fmt.Fprintf(fh, "Trim by quality: %v (threshold %d)\n", s.TrimQualities, s.MinQuality)
	fmt.Fprintf(fh, "Collapse overlapping mates: %v\n", s.Collapse)
	fmt.Fprintf(fh, "RNG seed: %d\n", s.Seed)

	fmt.Fprintf(fh, "\n[Statistics]\n")
	fmt.Fprintf(fh, "Total reads processed: %d\n", stats.TotalReads)
	if s.TrimBarcode {
		fmt.Fprintf(fh, "Barcodes trimmed: %d\n", stats.BarcodesTrimmed)
	}
	fmt.Fprintf(fh, "Well aligned: %d\n", stats.WellAligned)
	fmt.Fprintf(fh, "Poorly aligned: %d\n", stats.PoorlyAligned)
	fmt.Fprintf(fh, "Unaligned: %d\n", stats.Unaligned)
	fmt.Fprintf(fh, "Terminal bases trimmed (5'): %d\n", stats.TerminalTrimmed5)
	fmt.Fprintf(fh, "Terminal bases trimmed (3'): %d\n", stats.TerminalTrimmed3)

	fmt.Fprintf(fh, "\n[Output]\n")
	for _, sink := range files.All() {
		fmt.Fprintf(fh, "%s: %d reads\n", sink.Path(), sink.Count())
	}
	return nil
}

// writeSummary prints the short end-of-run summary.
func writeSummary(w io.Writer, stats *Statistics, files *output.Files) {
	retained := 0
	discarded := 0
	for _, sink := range files.All() {
		if sink == files.Discarded {
			discarded += sink.Count()
		} else {
			retained += sink.Count()
		}
	}

	fmt.Fprintf(w, "\nTotal reads processed: %s\n", comma(stats.TotalReads))
	color.New(color.FgHiGreen).Fprintf(w, "Retained reads: %s\n", comma(retained))
	color.New(color.FgHiMagenta).Fprintf(w, "Discarded reads: %s\n", comma(discarded))
	fmt.Fprintf(w, "Well aligned: %s, poorly aligned: %s, unaligned: %s\n",
		comma(stats.WellAligned), comma(stats.PoorlyAligned), comma(stats.Unaligned))
}
