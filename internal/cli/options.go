// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"adapterremoval/internal/version"
)

// Default adapter sequences trimmed from mate 1 and (reverse complemented)
// mate 2 reads.
const (
	DefaultAdapter1 = "AGATCGGAAGAGCACACGTCTGAACTCCAGTCACNNNNNNATCTCGTATGCCGTCTTCTGCTTG"
	DefaultAdapter2 = "AATGATACGGCGACCACCGAGATCTACACTCTTTCCCTACACGACGCTCTTCCGATCT"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	File1 string
	File2 string

	// Output files; empty fields fall back to Basename-derived names.
	Basename           string
	Settings           string
	Output1            string
	Output2            string
	Singleton          string
	Collapsed          string
	CollapsedTruncated string
	Discarded          string

	// Trimming parameters
	Adapter1           string
	Adapter2           string
	MismatchRate       float64
	MaxAmbiguousBases  int
	Shift              int
	Barcode            string
	TrimAmbiguous      bool
	TrimQualities      bool
	MinQuality         int
	MinGenomicLength   int
	MinAlignmentLength int

	// Quality encodings, as given ("33", "64", or "solexa")
	QualityBase       string
	QualityBaseOutput string

	// Modes
	Collapse         bool
	IdentifyAdapters bool
	Seed             int64

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: cleaning next-generation sequencing reads

Removes adapter contamination, trims low-quality terminal bases, and
optionally merges overlapping mate pairs into consensus reads.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input files
	fs.StringVar(&opt.File1, "file1", "", "input file containing mate 1 or single-ended reads [*]")
	fs.StringVar(&opt.File2, "file2", "", "input file containing mate 2 reads")

	// Output files
	fs.StringVar(&opt.Basename, "basename", "output", "prefix for output files without an explicit name [output]")
	fs.StringVar(&opt.Settings, "settings", "", "settings and statistics report (BASENAME.settings)")
	fs.StringVar(&opt.Output1, "output1", "", "mate 1 output (BASENAME.pair1.truncated; BASENAME.truncated for single-ended input)")
	fs.StringVar(&opt.Output2, "output2", "", "mate 2 output (BASENAME.pair2.truncated)")
	fs.StringVar(&opt.Singleton, "singleton", "", "reads whose mate was discarded (BASENAME.singleton.truncated)")
	fs.StringVar(&opt.Collapsed, "outputcollapsed", "", "merged mate pairs (BASENAME.collapsed)")
	fs.StringVar(&opt.CollapsedTruncated, "outputcollapsedtruncated", "", "merged mate pairs with trimmed termini (BASENAME.collapsed.truncated)")
	fs.StringVar(&opt.Discarded, "discarded", "", "reads failing the length/ambiguity filters (BASENAME.discarded)")

	// Trimming parameters
	fs.StringVar(&opt.Adapter1, "pcr1", DefaultAdapter1, "adapter expected in mate 1 reads")
	fs.StringVar(&opt.Adapter2, "pcr2", DefaultAdapter2, "adapter expected in reverse complemented mate 2 reads")
	fs.Float64Var(&opt.MismatchRate, "mm", -1.0, "max error rate when aligning; a value >1 means 1-in-N (default 1/3 single-ended, 1/10 paired)")
	fs.IntVar(&opt.MaxAmbiguousBases, "maxns", 1000, "discard reads with more ambiguous bases (N) than this after trimming [1000]")
	fs.IntVar(&opt.Shift, "shift", 2, "allow up to N missing bases at the 5' termini when aligning [2]")
	fs.StringVar(&opt.Barcode, "5prime", "", "barcode to detect (max 1 mismatch) and trim from the 5' end of mate 1 reads")
	fs.BoolVar(&opt.TrimAmbiguous, "trimns", false, "trim ambiguous bases (N) at the 5'/3' termini [false]")
	fs.BoolVar(&opt.TrimQualities, "trimqualities", false, "trim terminal bases with quality <= -minquality [false]")
	fs.IntVar(&opt.MinQuality, "minquality", 2, "inclusive quality threshold for -trimqualities [2]")
	fs.IntVar(&opt.MinGenomicLength, "minlength", 15, "discard reads shorter than this after trimming [15]")
	fs.IntVar(&opt.MinAlignmentLength, "minalignmentlength", 11, "required overlap before collapsing mates [11]")

	// Quality encodings
	fs.StringVar(&opt.QualityBase, "qualitybase", "33", "input quality encoding: 33, 64, or solexa [33]")
	fs.StringVar(&opt.QualityBaseOutput, "qualitybase-output", "33", "output quality encoding: 33 or 64 [33]")

	// Modes
	fs.BoolVar(&opt.Collapse, "collapse", false, "merge overlapping mate pairs into consensus reads [false]")
	fs.BoolVar(&opt.IdentifyAdapters, "identify-adapters", false, "infer the adapter pair from overlapping mate pairs instead of trimming [false]")
	fs.Int64Var(&opt.Seed, "seed", 0, "RNG seed for quality tie-breaks when collapsing (0 = derive from the clock)")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.File1 == "" && opt.File2 == "":
		return opt, errors.New("no input files; provide at least -file1")
	case opt.File2 != "" && opt.File1 == "":
		return opt, errors.New("-file2 specified without -file1")
	}
	if opt.IdentifyAdapters && opt.File2 == "" {
		return opt, errors.New("-identify-adapters requires paired input (-file1 and -file2)")
	}
	if opt.Shift < 0 {
		return opt, errors.New("-shift must be >= 0")
	}
	if opt.MinGenomicLength < 0 {
		return opt, errors.New("-minlength must be >= 0")
	}
	if opt.MaxAmbiguousBases < 0 {
		return opt, errors.New("-maxns must be >= 0")
	}
	switch opt.QualityBase {
	case "33", "64", "solexa":
	default:
		return opt, fmt.Errorf("invalid -qualitybase %q: expected 33, 64, or solexa", opt.QualityBase)
	}
	switch opt.QualityBaseOutput {
	case "33", "64":
	default:
		return opt, fmt.Errorf("invalid -qualitybase-output %q: expected 33 or 64", opt.QualityBaseOutput)
	}
	return opt, nil
}
