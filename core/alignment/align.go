// Package alignment scores candidate overlaps between two nucleotide
// sequences, classifies the results, and merges validly overlapping mate
// pairs into consensus reads.
package alignment

// Info holds the raw statistics of one candidate alignment: the offset of the
// second sequence relative to the first, the number of overlapping columns,
// and how many of those columns were ambiguous or mismatched. Score is
// matches minus mismatches; ambiguous columns contribute nothing.
type Info struct {
	Offset      int
	Length      int
	NAmbiguous  int
	NMismatches int
	Score       int
}

// At compares b against a with b starting at the given offset (which may be
// negative) and returns the statistics of the resulting overlap.
func At(a, b string, offset int) Info {
	i, j := offset, 0
	if i < 0 {
		j = -i
		i = 0
	}
	n := 0
	if j < len(b) {
		n = min(len(a)-i, len(b)-j)
	}
	if n < 0 {
		n = 0
	}

	info := Info{Offset: offset, Length: n}
	for k := 0; k < n; k++ {
		switch x, y := a[i+k], b[j+k]; {
		case x == 'N' || y == 'N':
			info.NAmbiguous++
		case x != y:
			info.NMismatches++
		}
	}
	info.Score = info.Length - info.NAmbiguous - 2*info.NMismatches
	return info
}

// Align slides b along a, considering every offset from -shift through
// len(a)-1, and returns the best candidate: highest score, then longest
// overlap, then smallest offset. If every candidate scores below zero the
// result has Length 0.
func Align(a, b string, shift int) Info {
	best := Info{}
	for offset := -shift; offset < len(a); offset++ {
		current := At(a, b, offset)
		if current.Score > best.Score ||
			(current.Score == best.Score && current.Length > best.Length) {
			best = current
		}
	}
	return best
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
