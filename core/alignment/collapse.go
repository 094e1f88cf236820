package alignment

import (
	"math/rand"

	"adapterremoval-core/fastq"
)

const phred33Offset = 33

// Collapse merges two overlapping mates into a single consensus read. The
// second mate must already be reverse-complemented into the first mate's
// orientation, and aln must describe their overlap (offset of read2 relative
// to read1, as produced by At or Align on the two sequences).
//
// Where both reads call the same base it is kept with the higher of the two
// qualities. Where they disagree the higher-quality base wins and the output
// quality is the difference of the two scores; exact ties are broken
// uniformly by rng, which must be the run's shared seeded generator. A base
// paired with an N is kept with its own quality. Flanks outside the overlap
// are appended unchanged.
func Collapse(read1, read2 fastq.Record, aln Info, rng *rand.Rand) fastq.Record {
	i, j := aln.Offset, 0
	if i < 0 {
		j = -i
		i = 0
	}

	var seq, quals []byte
	if i > 0 {
		seq = append(seq, read1.Sequence[:i]...)
		quals = append(quals, read1.Qualities[:i]...)
	}

	for k := 0; k < aln.Length; k++ {
		b1, q1 := read1.Sequence[i+k], read1.Qualities[i+k]
		b2, q2 := read2.Sequence[j+k], read2.Qualities[j+k]

		base, qual := consensusCall(b1, q1, b2, q2, rng)
		seq = append(seq, base)
		quals = append(quals, qual)
	}

	if rest := j + aln.Length; rest < len(read2.Sequence) {
		seq = append(seq, read2.Sequence[rest:]...)
		quals = append(quals, read2.Qualities[rest:]...)
	} else if rest := i + aln.Length; rest < len(read1.Sequence) {
		seq = append(seq, read1.Sequence[rest:]...)
		quals = append(quals, read1.Qualities[rest:]...)
	}

	return fastq.Record{
		Header:    read1.Header,
		Sequence:  string(seq),
		Qualities: string(quals),
	}
}

func consensusCall(b1, q1, b2, q2 byte, rng *rand.Rand) (byte, byte) {
	switch {
	case b1 == 'N' && b2 == 'N':
		return 'N', phred33Offset
	case b1 == 'N':
		return b2, q2
	case b2 == 'N':
		return b1, q1
	case b1 == b2:
		return b1, maxQual(q1, q2)
	case q1 > q2:
		return b1, phred33Offset + (q1 - q2)
	case q2 > q1:
		return b2, phred33Offset + (q2 - q1)
	default:
		// Equal evidence for two different bases.
		if rng.Intn(2) == 0 {
			return b1, phred33Offset
		}
		return b2, phred33Offset
	}
}

func maxQual(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
