package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine returns the next line without its terminator. io.EOF is returned
// only when no bytes remain at all; a final line without a trailing newline is
// returned normally.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" {
		return "", io.EOF
	}
	line = strings.TrimRight(line, "\n")
	line = strings.TrimRight(line, "\r")
	return line, nil
}

// Read parses the next four-line record from br, decoding qualities from enc.
// It returns (false, nil) if the stream is exhausted before any byte of a new
// record; any truncation after that point is a FormatError. The parsed record
// replaces the receiver's previous contents.
func (r *Record) Read(br *bufio.Reader, enc Encoding) (bool, error) {
	marker, err := readLine(br)
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if !strings.HasPrefix(marker, "@") {
		return false, &FormatError{Msg: fmt.Sprintf("header line %q lacks the '@' marker", marker)}
	}
	header := marker[1:]
	if header == "" {
		return false, &FormatError{Msg: "empty header line"}
	}

	sequence, err := readLine(br)
	if err == io.EOF {
		return false, &FormatError{Header: header, Msg: "end of input inside record, before sequence"}
	} else if err != nil {
		return false, err
	}
	if sequence == "" {
		return false, &FormatError{Header: header, Msg: "empty sequence line"}
	}

	separator, err := readLine(br)
	if err == io.EOF {
		return false, &FormatError{Header: header, Msg: "end of input inside record, before separator"}
	} else if err != nil {
		return false, err
	}
	if !strings.HasPrefix(separator, "+") {
		return false, &FormatError{Header: header, Msg: fmt.Sprintf("separator line %q lacks the '+' marker", separator)}
	}

	qualities, err := readLine(br)
	if err == io.EOF {
		return false, &FormatError{Header: header, Msg: "end of input inside record, before qualities"}
	} else if err != nil {
		return false, err
	}
	if qualities == "" {
		return false, &FormatError{Header: header, Msg: "empty quality line"}
	}

	rec, err := New(header, sequence, qualities, enc)
	if err != nil {
		return false, err
	}
	*r = rec
	return true, nil
}

// Write serializes the record as four lines, re-encoding qualities into enc.
// The output always ends with a newline.
func (r *Record) Write(w io.Writer, enc Encoding) error {
	quals, err := encodeQualities(r.Qualities, enc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", r.Header, r.Sequence, quals)
	return err
}
