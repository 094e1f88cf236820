package fastq

import (
	"errors"
	"testing"
)

func TestTrimLowQualityBases(t *testing.T) {
	tests := []struct {
		name          string
		sequence      string
		qualities     string
		trimAmbiguous bool
		minQuality    int
		wantSeq       string
		wantQuals     string
		wantTrimmed   Ntrimmed
	}{
		{
			name:        "empty record",
			trimAmbiguous: true, minQuality: 10,
			wantTrimmed: Ntrimmed{0, 0},
		},
		{
			name:     "trimming disabled",
			sequence: "NNNNN", qualities: "!!!!!",
			trimAmbiguous: false, minQuality: -1,
			wantSeq: "NNNNN", wantQuals: "!!!!!",
			wantTrimmed: Ntrimmed{0, 0},
		},
		{
			name:     "leading ambiguous bases",
			sequence: "NNANT", qualities: "23456",
			trimAmbiguous: true, minQuality: -1,
			wantSeq: "ANT", wantQuals: "456",
			wantTrimmed: Ntrimmed{2, 0},
		},
		{
			name:     "trailing low quality",
			sequence: "TNANT", qualities: "%$#!\"",
			trimAmbiguous: false, minQuality: 2,
			wantSeq: "TN", wantQuals: "%$",
			wantTrimmed: Ntrimmed{0, 3},
		},
		{
			name:     "mixed on both ends",
			sequence: "NTNTAGNT", qualities: "1!#$12#\"",
			trimAmbiguous: true, minQuality: 2,
			wantSeq: "TAG", wantQuals: "$12",
			wantTrimmed: Ntrimmed{3, 2},
		},
		{
			name:     "nothing to trim",
			sequence: "ACTTAG", qualities: "12I$12",
			trimAmbiguous: true, minQuality: 2,
			wantSeq: "ACTTAG", wantQuals: "12I$12",
			wantTrimmed: Ntrimmed{0, 0},
		},
		{
			name:     "whole read trimmed",
			sequence: "NNNNN", qualities: "!!!!!",
			trimAmbiguous: true, minQuality: -1,
			wantSeq: "", wantQuals: "",
			wantTrimmed: Ntrimmed{5, 0},
		},
	}

	for _, tc := range tests {
		rec := mustNew(t, "Rec", tc.sequence, tc.qualities, Phred33)
		origLen := rec.Length()

		got := rec.TrimLowQualityBases(tc.trimAmbiguous, tc.minQuality)
		if got != tc.wantTrimmed {
			t.Errorf("%s: trimmed %+v, want %+v", tc.name, got, tc.wantTrimmed)
		}
		if rec.Sequence != tc.wantSeq || rec.Qualities != tc.wantQuals {
			t.Errorf("%s: got (%q, %q), want (%q, %q)",
				tc.name, rec.Sequence, rec.Qualities, tc.wantSeq, tc.wantQuals)
		}
		if len(rec.Sequence) != len(rec.Qualities) {
			t.Errorf("%s: sequence/quality length diverged", tc.name)
		}
		if got.Five+got.Three+rec.Length() != origLen {
			t.Errorf("%s: trimmed counts do not add up", tc.name)
		}

		// A second pass with the same parameters must be a no-op.
		if again := rec.TrimLowQualityBases(tc.trimAmbiguous, tc.minQuality); again != (Ntrimmed{}) {
			t.Errorf("%s: re-trim removed %+v bases", tc.name, again)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		length    int
		wantSeq   string
		wantQuals string
	}{
		{"defaults keep everything", 0, -1, "ACTTAG", "12I$12"},
		{"zero length empties", 1, 0, "", ""},
		{"drop 5' bases", 2, -1, "TTAG", "I$12"},
		{"keep 3' span", 0, 3, "ACT", "12I"},
		{"middle span", 2, 3, "TTA", "I$1"},
		{"length capped at remainder", 2, 1024, "TTAG", "I$12"},
		{"start at end empties", 6, -1, "", ""},
	}

	for _, tc := range tests {
		rec := mustNew(t, "Rec", "ACTTAG", "12I$12", Phred33)
		if err := rec.Truncate(tc.start, tc.length); err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if rec.Sequence != tc.wantSeq || rec.Qualities != tc.wantQuals {
			t.Errorf("%s: got (%q, %q), want (%q, %q)",
				tc.name, rec.Sequence, rec.Qualities, tc.wantSeq, tc.wantQuals)
		}
	}
}

func TestTruncateEmptyRecord(t *testing.T) {
	rec := mustNew(t, "Empty", "", "", Phred33)
	if err := rec.Truncate(0, 10); err != nil {
		t.Fatalf("truncating empty record: %v", err)
	}
	if rec.Sequence != "" || rec.Qualities != "" {
		t.Fatalf("empty record changed: %+v", rec)
	}
}

func TestTruncateStartBeyondEnd(t *testing.T) {
	rec := mustNew(t, "Rec", "ACTTAG", "12I$12", Phred33)
	err := rec.Truncate(7, -1)
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want RangeError", err)
	}
	if rec.Sequence != "ACTTAG" {
		t.Fatalf("failed truncation mutated the record: %+v", rec)
	}
}

func TestReverseComplement(t *testing.T) {
	rec := mustNew(t, "Rec", "NACNTCTGTA", "9876543210", Phred33)
	rec.ReverseComplement()
	if rec.Sequence != "TACAGANGTN" || rec.Qualities != "0123456789" {
		t.Fatalf("got (%q, %q), want (%q, %q)",
			rec.Sequence, rec.Qualities, "TACAGANGTN", "0123456789")
	}

	// Involution.
	rec.ReverseComplement()
	if rec.Sequence != "NACNTCTGTA" || rec.Qualities != "9876543210" {
		t.Fatalf("double reverse-complement did not restore the record: %+v", rec)
	}

	empty := mustNew(t, "Empty", "", "", Phred33)
	empty.ReverseComplement()
	if empty.Sequence != "" || empty.Qualities != "" {
		t.Fatalf("empty record changed: %+v", empty)
	}
}
