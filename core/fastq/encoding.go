package fastq

import (
	"fmt"
	"math"
)

// Encoding identifies how Phred scores are packed into quality characters.
type Encoding int

const (
	// Phred33 is the Sanger / Illumina 1.8+ encoding: scores 0..41 at offset 33.
	Phred33 Encoding = iota
	// Phred64 is the Illumina 1.3-1.7 encoding: scores 0..41 at offset 64.
	Phred64
	// Solexa is the pre-1.3 encoding: scores -5..41 at offset 64, using a
	// log-odds scale that is converted to Phred on input.
	Solexa
)

func (e Encoding) String() string {
	switch e {
	case Phred33:
		return "Phred+33"
	case Phred64:
		return "Phred+64"
	case Solexa:
		return "Solexa+64"
	default:
		return "unknown encoding"
	}
}

const (
	// MaxScore is the highest Phred score representable in any of the
	// supported encodings.
	MaxScore = 41

	phred33Offset = 33
	phred64Offset = 64
	minSolexa     = -5
)

func (e Encoding) offset() int {
	if e == Phred33 {
		return phred33Offset
	}
	return phred64Offset
}

func (e Encoding) minScore() int {
	if e == Solexa {
		return minSolexa
	}
	return 0
}

// solexaToPhred maps a Solexa log-odds score onto the nearest Phred score.
func solexaToPhred(score int) int {
	return int(math.Round(10 * math.Log10(math.Pow(10, float64(score)/10)+1)))
}

// decodeQualities converts a quality string from enc into the canonical
// internal representation (Phred+33). Characters outside the valid range of
// enc yield an EncodingError.
func decodeQualities(qualities string, enc Encoding) (string, error) {
	if enc == Phred33 {
		for i := 0; i < len(qualities); i++ {
			score := int(qualities[i]) - phred33Offset
			if score < 0 || score > MaxScore {
				return "", &EncodingError{Encoding: enc, Char: qualities[i]}
			}
		}
		return qualities, nil
	}

	out := make([]byte, len(qualities))
	for i := 0; i < len(qualities); i++ {
		score := int(qualities[i]) - phred64Offset
		if score < enc.minScore() || score > MaxScore {
			return "", &EncodingError{Encoding: enc, Char: qualities[i]}
		}
		if enc == Solexa {
			score = solexaToPhred(score)
		}
		out[i] = byte(phred33Offset + score)
	}
	return string(out), nil
}

// encodeQualities converts the internal Phred+33 representation into enc for
// serialization. Only Phred33 and Phred64 are valid output encodings.
func encodeQualities(qualities string, enc Encoding) (string, error) {
	switch enc {
	case Phred33:
		return qualities, nil
	case Phred64:
		out := make([]byte, len(qualities))
		for i := 0; i < len(qualities); i++ {
			score := int(qualities[i]) - phred33Offset
			// Phred+64 output tops out at score 40 ('h').
			if score > 40 {
				score = 40
			}
			out[i] = byte(score + phred64Offset)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%s is not a valid output encoding", enc)
	}
}
