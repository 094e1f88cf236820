package fastq

import "fmt"

// FormatError reports a structurally malformed record: a missing marker line,
// an empty field, a sequence/quality length mismatch, or end-of-input in the
// middle of a record.
type FormatError struct {
	Header string
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("malformed FASTQ record %q: %s", e.Header, e.Msg)
	}
	return "malformed FASTQ record: " + e.Msg
}

// EncodingError reports a quality character outside the valid range of the
// declared encoding.
type EncodingError struct {
	Header   string
	Encoding Encoding
	Char     byte
}

func (e *EncodingError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("record %q: quality character %q outside the valid range of %s",
			e.Header, e.Char, e.Encoding)
	}
	return fmt.Sprintf("quality character %q outside the valid range of %s", e.Char, e.Encoding)
}

// SequenceError reports a non-nucleotide character in a sequence after
// normalization. Context names the record or configuration value the sequence
// came from.
type SequenceError struct {
	Context string
	Char    byte
}

func (e *SequenceError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: invalid nucleotide %q", e.Context, e.Char)
	}
	return fmt.Sprintf("invalid nucleotide %q", e.Char)
}

// RangeError reports a truncation start position beyond the current read
// length. It always indicates a caller bug.
type RangeError struct {
	Header string
	Pos    int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("record %q: truncation start %d beyond read length %d",
		e.Header, e.Pos, e.Length)
}
