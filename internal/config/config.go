// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"adapterremoval-core/alignment"
	"adapterremoval-core/fastq"

	"adapterremoval/internal/cli"
)

// Settings is the validated, normalized run configuration. It is built once,
// before any record is processed, and read-only afterwards except for the
// RNG, which is the single shared stream used for consensus tie-breaks.
type Settings struct {
	File1  string
	File2  string
	Paired bool

	Basename           string
	SettingsFile       string
	Output1            string
	Output2            string
	Singleton          string
	Collapsed          string
	CollapsedTruncated string
	Discarded          string

	Adapter1    string
	Adapter2    string
	Barcode     string
	TrimBarcode bool

	InputEncoding  fastq.Encoding
	OutputEncoding fastq.Encoding

	MismatchRate       float64
	MinGenomicLength   int
	MinAlignmentLength int
	MaxAmbiguousBases  int
	Shift              int

	TrimAmbiguous bool
	TrimQualities bool
	MinQuality    int

	Collapse         bool
	IdentifyAdapters bool

	Seed int64
	RNG  *rand.Rand

	classifier alignment.Classifier
}

// New validates opts and derives a Settings. Configuration-supplied sequences
// (adapters, barcode) are cleaned and validated here so that a bad value
// halts the run before any record is read. Warnings for recoverable
// inconsistencies go to warn.
func New(opts cli.Options, warn io.Writer) (*Settings, error) {
	s := &Settings{
		File1:  opts.File1,
		File2:  opts.File2,
		Paired: opts.File2 != "",

		Basename:           opts.Basename,
		SettingsFile:       opts.Settings,
		Output1:            opts.Output1,
		Output2:            opts.Output2,
		Singleton:          opts.Singleton,
		Collapsed:          opts.Collapsed,
		CollapsedTruncated: opts.CollapsedTruncated,
		Discarded:          opts.Discarded,

		Barcode:     opts.Barcode,
		TrimBarcode: opts.Barcode != "",

		MismatchRate:       opts.MismatchRate,
		MinGenomicLength:   opts.MinGenomicLength,
		MinAlignmentLength: opts.MinAlignmentLength,
		MaxAmbiguousBases:  opts.MaxAmbiguousBases,
		Shift:              opts.Shift,

		TrimAmbiguous: opts.TrimAmbiguous,
		TrimQualities: opts.TrimQualities,
		MinQuality:    opts.MinQuality,

		Collapse:         opts.Collapse,
		IdentifyAdapters: opts.IdentifyAdapters,
		Seed:             opts.Seed,
	}

	var err error
	if s.InputEncoding, err = parseEncoding(opts.QualityBase); err != nil {
		return nil, fmt.Errorf("-qualitybase: %w", err)
	}
	if s.OutputEncoding, err = parseEncoding(opts.QualityBaseOutput); err != nil {
		return nil, fmt.Errorf("-qualitybase-output: %w", err)
	}
	if s.OutputEncoding == fastq.Solexa {
		return nil, errors.New("-qualitybase-output: solexa is not a valid output encoding")
	}

	if opts.MinQuality < 0 || opts.MinQuality > fastq.MaxScore {
		return nil, fmt.Errorf("-minquality %d out of range 0..%d", opts.MinQuality, fastq.MaxScore)
	}

	if s.Adapter1, err = cleanConfigSequence(opts.Adapter1, "-pcr1"); err != nil {
		return nil, err
	}
	if s.Adapter2, err = cleanConfigSequence(opts.Adapter2, "-pcr2"); err != nil {
		return nil, err
	}
	if s.Barcode, err = cleanConfigSequence(opts.Barcode, "-5prime"); err != nil {
		return nil, err
	}

	if s.Collapse && !s.Paired {
		fmt.Fprintln(warn, "WARN: -collapse requires paired input; collapsing disabled")
		s.Collapse = false
	}

	// A rate above one is a "1 in N" reciprocal; a negative rate selects the
	// paired or single-ended default.
	switch {
	case s.MismatchRate > 1:
		s.MismatchRate = 1 / s.MismatchRate
	case s.MismatchRate < 0:
		if s.Paired {
			s.MismatchRate = 1.0 / 10
		} else {
			s.MismatchRate = 1.0 / 3
		}
	}

	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	s.RNG = rand.New(rand.NewSource(s.Seed))

	mode := alignment.ModeTrimAdapter
	if s.IdentifyAdapters {
		mode = alignment.ModeIdentifyAdapters
	} else if s.Collapse {
		mode = alignment.ModeCollapse
	}
	s.classifier = alignment.Classifier{
		MismatchRate:       s.MismatchRate,
		MinAlignmentLength: s.MinAlignmentLength,
		Mode:               mode,
	}

	return s, nil
}

func parseEncoding(base string) (fastq.Encoding, error) {
	switch base {
	case "33":
		return fastq.Phred33, nil
	case "64":
		return fastq.Phred64, nil
	case "solexa":
		return fastq.Solexa, nil
	default:
		return 0, fmt.Errorf("invalid quality base %q: expected 33, 64, or solexa", base)
	}
}

func cleanConfigSequence(sequence, key string) (string, error) {
	cleaned, err := fastq.CleanSequence(sequence)
	if err != nil {
		var serr *fastq.SequenceError
		if errors.As(err, &serr) {
			serr.Context = key
		}
		return "", err
	}
	return cleaned, nil
}

// Evaluate classifies a candidate alignment under the configured mode.
func (s *Settings) Evaluate(aln alignment.Info) alignment.Outcome {
	return s.classifier.Evaluate(aln)
}

// IsAcceptableRead reports whether a trimmed read is long enough and
// unambiguous enough to keep.
func (s *Settings) IsAcceptableRead(r *fastq.Record) bool {
	return r.Length() >= s.MinGenomicLength && r.CountNs() <= s.MaxAmbiguousBases
}

// TrimBarcodeIfEnabled trims a configured 5' barcode from the read and
// reports whether one was found.
func (s *Settings) TrimBarcodeIfEnabled(r *fastq.Record) bool {
	if s.TrimBarcode {
		return alignment.TrimBarcode(r, s.Barcode, s.Shift)
	}
	return false
}

// TrimByQualityIfEnabled runs the terminal low-quality/ambiguous-base trim
// when either form of trimming is configured.
func (s *Settings) TrimByQualityIfEnabled(r *fastq.Record) fastq.Ntrimmed {
	if s.TrimAmbiguous || s.TrimQualities {
		minQuality := -1
		if s.TrimQualities {
			minQuality = s.MinQuality
		}
		return r.TrimLowQualityBases(s.TrimAmbiguous, minQuality)
	}
	return fastq.Ntrimmed{}
}
