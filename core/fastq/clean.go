package fastq

// CleanSequence normalizes a nucleotide sequence: lowercase bases are folded
// to uppercase and '.' becomes 'N'. Any character outside {A,C,G,T,N} after
// normalization yields a SequenceError.
func CleanSequence(sequence string) (string, error) {
	out := []byte(sequence)
	for i := 0; i < len(out); i++ {
		switch c := out[i]; c {
		case 'A', 'C', 'G', 'T', 'N':
		case 'a', 'c', 'g', 't', 'n':
			out[i] = c - 'a' + 'A'
		case '.':
			out[i] = 'N'
		default:
			return "", &SequenceError{Char: c}
		}
	}
	return string(out), nil
}
