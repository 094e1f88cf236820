package alignment

// Outcome is the classifier's verdict on a candidate alignment.
type Outcome int

const (
	// NotAligned: no usable overlap, or too many mismatches for its length.
	NotAligned Outcome = iota
	// PoorAlignment: an overlap exists but its score is too weak to act on.
	PoorAlignment
	// ValidAlignment: the overlap can be trimmed against or collapsed.
	ValidAlignment
)

func (o Outcome) String() string {
	switch o {
	case NotAligned:
		return "not aligned"
	case PoorAlignment:
		return "poor alignment"
	case ValidAlignment:
		return "valid alignment"
	default:
		return "unknown outcome"
	}
}

// Mode selects which downstream action the classifier is gating.
type Mode int

const (
	// ModeTrimAdapter gates adapter trimming of single reads or mate pairs.
	ModeTrimAdapter Mode = iota
	// ModeCollapse gates merging a mate pair into one consensus read.
	ModeCollapse
	// ModeIdentifyAdapters gates treating the flanks of a mate-pair overlap
	// as adapter evidence.
	ModeIdentifyAdapters
)

// Classifier decides, from raw alignment statistics, whether an alignment can
// be acted upon. The mismatch tolerance shrinks with the overlap: fewer than
// 6 aligned columns allow no mismatches at all, and fewer than 10 allow at
// most one, regardless of the configured rate.
type Classifier struct {
	MismatchRate       float64
	MinAlignmentLength int
	Mode               Mode
}

// Evaluate classifies a single candidate alignment.
func (c Classifier) Evaluate(aln Info) Outcome {
	if aln.Length == 0 {
		return NotAligned
	}

	// Only pairs of called bases count as aligned columns.
	nAligned := aln.Length - aln.NAmbiguous

	threshold := int(c.MismatchRate * float64(nAligned))
	if nAligned < 6 {
		threshold = 0
	} else if nAligned < 10 && threshold > 1 {
		threshold = 1
	}

	if aln.NMismatches > threshold {
		return NotAligned
	}

	if c.Mode == ModeCollapse || c.Mode == ModeIdentifyAdapters {
		// Overlaps too short to merge safely, or to trust as adapter
		// evidence, are treated as chance matches.
		if nAligned < c.MinAlignmentLength {
			return NotAligned
		}
	} else if aln.Score <= 0 {
		return PoorAlignment
	}

	return ValidAlignment
}
