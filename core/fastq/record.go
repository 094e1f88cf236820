package fastq

import (
	"errors"
	"fmt"
	"strings"
)

// Record is a single sequencing read: header (without the leading '@'), an
// uppercase nucleotide sequence over {A,C,G,T,N}, and a quality string of the
// same length, held internally as Phred+33 regardless of the encoding the
// record was built from.
//
// The zero value is a valid empty record. Records built through New or Read
// keep len(Sequence) == len(Qualities) through every mutating operation.
type Record struct {
	Header    string
	Sequence  string
	Qualities string
}

// New builds a validated record. The sequence is normalized via CleanSequence
// and the qualities are decoded from enc into the internal representation.
// A sequence/quality length mismatch is a FormatError.
func New(header, sequence, qualities string, enc Encoding) (Record, error) {
	if len(sequence) != len(qualities) {
		return Record{}, &FormatError{
			Header: header,
			Msg:    "sequence and qualities differ in length",
		}
	}

	seq, err := CleanSequence(sequence)
	if err != nil {
		var serr *SequenceError
		if errors.As(err, &serr) && serr.Context == "" {
			serr.Context = fmt.Sprintf("record %q", header)
		}
		return Record{}, err
	}

	quals, err := decodeQualities(qualities, enc)
	if err != nil {
		var eerr *EncodingError
		if errors.As(err, &eerr) {
			eerr.Header = header
		}
		return Record{}, err
	}

	return Record{Header: header, Sequence: seq, Qualities: quals}, nil
}

// Length returns the number of bases in the read.
func (r *Record) Length() int { return len(r.Sequence) }

// CountNs returns the number of ambiguous bases in the read.
func (r *Record) CountNs() int { return strings.Count(r.Sequence, "N") }

// AddPrefixToHeader prepends prefix to the record header.
func (r *Record) AddPrefixToHeader(prefix string) {
	r.Header = prefix + r.Header
}
