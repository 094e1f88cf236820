package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadSimpleRecord(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing newline", "@record_1\nACGAGTCA\n+\n!7BF8DGI\n"},
		{"no trailing newline", "@record_1\nACGAGTCA\n+\n!7BF8DGI"},
		{"windows line endings", "@record_1\r\nACGAGTCA\r\n+\r\n!7BF8DGI\r\n"},
	}
	for _, tc := range tests {
		var rec Record
		ok, err := rec.Read(bufio.NewReader(strings.NewReader(tc.input)), Phred33)
		if err != nil || !ok {
			t.Errorf("%s: ok=%v err=%v", tc.name, ok, err)
			continue
		}
		if rec.Header != "record_1" || rec.Sequence != "ACGAGTCA" || rec.Qualities != "!7BF8DGI" {
			t.Errorf("%s: parsed %+v", tc.name, rec)
		}
	}
}

func TestReadCleanEndOfInput(t *testing.T) {
	var rec Record
	ok, err := rec.Read(bufio.NewReader(strings.NewReader("")), Phred33)
	if ok || err != nil {
		t.Fatalf("empty stream: ok=%v err=%v, want clean end of input", ok, err)
	}
}

func TestReadMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty header", "@\nACGAGTCA\n+\n!7BF8DGI\n"},
		{"empty sequence", "@record_1\n\n+\n!7BF8DGI\n"},
		{"empty qualities", "@record_1\nACGAGTCA\n+\n\n"},
		{"empty sequence and qualities", "@record_1\n\n+\n\n"},
		{"missing marker", "record_1\nACGAGTCA\n+\n!7BF8DGI\n"},
		{"missing separator marker", "@record_1\nACGAGTCA\n-\n!7BF8DGI\n"},
		{"eof after header", "@record"},
		{"eof after header line", "@record\n"},
		{"eof after sequence", "@record\nACGTA"},
		{"eof after sequence line", "@record\nACGTA\n"},
		{"eof after separator", "@record\nACGTA\n+"},
		{"eof after separator line", "@record\nACGTA\n+\n"},
	}
	for _, tc := range tests {
		var rec Record
		_, err := rec.Read(bufio.NewReader(strings.NewReader(tc.input)), Phred33)
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("%s: got %v, want FormatError", tc.name, err)
		}
	}
}

func TestReadTruncationAfterCompleteRecord(t *testing.T) {
	tests := []string{
		"@record_1\nACGTA\n+\n!!!!!\n@record_2\nACGTA\n+\n",
		"@record_1\nACGTA\n+\n!!!!!\n@record_2\nACGTA\n+",
	}
	for _, input := range tests {
		br := bufio.NewReader(strings.NewReader(input))
		var rec Record
		if ok, err := rec.Read(br, Phred33); !ok || err != nil {
			t.Fatalf("first record: ok=%v err=%v", ok, err)
		}
		var ferr *FormatError
		if _, err := rec.Read(br, Phred33); !errors.As(err, &ferr) {
			t.Errorf("truncated second record: got %v, want FormatError", err)
		}
	}
}

func TestReadMultipleRecords(t *testing.T) {
	input := "@record_1\nACGTA\n+\n!!!!!\n@record_2\nTTTTT\n+\nIIIII\n"
	br := bufio.NewReader(strings.NewReader(input))

	var rec Record
	for i, want := range []string{"record_1", "record_2"} {
		ok, err := rec.Read(br, Phred33)
		if !ok || err != nil {
			t.Fatalf("record %d: ok=%v err=%v", i, ok, err)
		}
		if rec.Header != want {
			t.Fatalf("record %d: header %q, want %q", i, rec.Header, want)
		}
	}
	if ok, err := rec.Read(br, Phred33); ok || err != nil {
		t.Fatalf("after last record: ok=%v err=%v, want clean end of input", ok, err)
	}
}

func TestWrite(t *testing.T) {
	rec := mustNew(t, "record_1", "ACGTACGATA", "!$#$*68CGJ", Phred33)

	var buf bytes.Buffer
	if err := rec.Write(&buf, Phred33); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "@record_1\nACGTACGATA\n+\n!$#$*68CGJ\n"; got != want {
		t.Errorf("phred33: got %q, want %q", got, want)
	}

	buf.Reset()
	if err := rec.Write(&buf, Phred64); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "@record_1\nACGTACGATA\n+\n@CBCIUWbfh\n"; got != want {
		t.Errorf("phred64: got %q, want %q", got, want)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	input := "@record_1 extra tokens\nACGTACGATA\n+\n!$#$*68CGJ\n"
	var rec Record
	if ok, err := rec.Read(bufio.NewReader(strings.NewReader(input)), Phred33); !ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}

	var buf bytes.Buffer
	if err := rec.Write(&buf, Phred33); err != nil {
		t.Fatal(err)
	}
	if buf.String() != input {
		t.Errorf("round trip changed the record: %q -> %q", input, buf.String())
	}
}
