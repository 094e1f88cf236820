package fastq

// Ntrimmed reports how many bases a trimming pass removed from each end of a
// read.
type Ntrimmed struct {
	Five  int
	Three int
}

// TrimLowQualityBases removes leading and trailing bases that are ambiguous
// (when trimAmbiguous is set) or whose Phred score is at most minQuality
// (when minQuality is non-negative). Scanning stops at the first base from
// each end that satisfies neither condition. The returned counts are the
// number of bases dropped from the 5' and 3' ends.
func (r *Record) TrimLowQualityBases(trimAmbiguous bool, minQuality int) Ntrimmed {
	drop := func(i int) bool {
		if trimAmbiguous && r.Sequence[i] == 'N' {
			return true
		}
		return minQuality >= 0 && int(r.Qualities[i])-phred33Offset <= minQuality
	}

	var trimmed Ntrimmed
	n := len(r.Sequence)
	for trimmed.Five < n && drop(trimmed.Five) {
		trimmed.Five++
	}
	for trimmed.Three < n-trimmed.Five && drop(n-1-trimmed.Three) {
		trimmed.Three++
	}

	if trimmed.Five > 0 || trimmed.Three > 0 {
		r.Sequence = r.Sequence[trimmed.Five : n-trimmed.Three]
		r.Qualities = r.Qualities[trimmed.Five : n-trimmed.Three]
	}
	return trimmed
}

// Truncate keeps the [start, start+length) span of the read. A length that
// reaches past the end of the read is capped, and a negative length keeps
// everything from start onward. A start beyond the current read length is a
// RangeError.
func (r *Record) Truncate(start, length int) error {
	n := len(r.Sequence)
	if start < 0 || start > n {
		return &RangeError{Header: r.Header, Pos: start, Length: n}
	}
	end := n
	if length >= 0 && start+length < n {
		end = start + length
	}
	r.Sequence = r.Sequence[start:end]
	r.Qualities = r.Qualities[start:end]
	return nil
}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ReverseComplement reverses the read in place, complementing each base and
// reversing the quality string alongside. Applying it twice restores the
// original record.
func (r *Record) ReverseComplement() {
	n := len(r.Sequence)
	seq := make([]byte, n)
	quals := make([]byte, n)
	for i := 0; i < n; i++ {
		seq[i] = complement[r.Sequence[n-1-i]]
		quals[i] = r.Qualities[n-1-i]
	}
	r.Sequence = string(seq)
	r.Qualities = string(quals)
}
