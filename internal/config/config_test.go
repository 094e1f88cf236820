// internal/config/config_test.go
package config

import (
	"bytes"
	"strings"
	"testing"

	"adapterremoval-core/alignment"
	"adapterremoval-core/fastq"

	"adapterremoval/internal/cli"
)

func baseOptions() cli.Options {
	return cli.Options{
		File1:              "r1.fastq",
		Basename:           "output",
		Adapter1:           cli.DefaultAdapter1,
		Adapter2:           cli.DefaultAdapter2,
		MismatchRate:       -1.0,
		MaxAmbiguousBases:  1000,
		Shift:              2,
		MinQuality:         2,
		MinGenomicLength:   15,
		MinAlignmentLength: 11,
		QualityBase:        "33",
		QualityBaseOutput:  "33",
	}
}

func TestMismatchRateNormalization(t *testing.T) {
	tests := []struct {
		name   string
		rate   float64
		paired bool
		want   float64
	}{
		{"reciprocal above one", 5.0, false, 0.2},
		{"fraction kept", 0.25, false, 0.25},
		{"single-ended default", -1.0, false, 1.0 / 3},
		{"paired default", -1.0, true, 1.0 / 10},
	}

	for _, tc := range tests {
		opts := baseOptions()
		opts.MismatchRate = tc.rate
		if tc.paired {
			opts.File2 = "r2.fastq"
		}
		s, err := New(opts, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if s.MismatchRate != tc.want {
			t.Errorf("%s: rate %v, want %v", tc.name, s.MismatchRate, tc.want)
		}
	}
}

func TestInvalidAdapterHaltsConfiguration(t *testing.T) {
	opts := baseOptions()
	opts.Adapter1 = "ACGTX"
	if _, err := New(opts, &bytes.Buffer{}); err == nil {
		t.Fatal("invalid -pcr1 accepted")
	}

	opts = baseOptions()
	opts.Barcode = "AC1T"
	_, err := New(opts, &bytes.Buffer{})
	if err == nil {
		t.Fatal("invalid -5prime accepted")
	}
	if !strings.Contains(err.Error(), "-5prime") {
		t.Errorf("error %q does not name the offending flag", err)
	}
}

func TestConfigSequencesAreNormalized(t *testing.T) {
	opts := baseOptions()
	opts.Adapter1 = "acgt.acgt"
	s, err := New(opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Adapter1 != "ACGTNACGT" {
		t.Errorf("adapter not normalized: %q", s.Adapter1)
	}
}

func TestCollapseWithoutMateFileIsReset(t *testing.T) {
	opts := baseOptions()
	opts.Collapse = true

	var warnings bytes.Buffer
	s, err := New(opts, &warnings)
	if err != nil {
		t.Fatal(err)
	}
	if s.Collapse {
		t.Error("collapse not reset for single-ended input")
	}
	if warnings.Len() == 0 {
		t.Error("no warning emitted")
	}
}

func TestSeedIsDeterministicWhenSet(t *testing.T) {
	opts := baseOptions()
	opts.Seed = 99
	s1, err := New(opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := New(opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if s1.RNG.Int63() != s2.RNG.Int63() {
		t.Error("same seed produced different RNG streams")
	}
}

func TestSolexaOutputRejected(t *testing.T) {
	opts := baseOptions()
	opts.QualityBaseOutput = "solexa"
	if _, err := New(opts, &bytes.Buffer{}); err == nil {
		t.Fatal("solexa accepted as output encoding")
	}
}

func TestEvaluateUsesConfiguredMode(t *testing.T) {
	opts := baseOptions()
	opts.File2 = "r2.fastq"
	opts.Collapse = true
	s, err := New(opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	// Ten clean columns: enough for adapter trimming, too short to collapse.
	aln := alignment.Info{Length: 10, Score: 10}
	if got := s.Evaluate(aln); got != alignment.NotAligned {
		t.Errorf("collapse mode: got %v, want NotAligned", got)
	}
}

func TestPolicyHelpers(t *testing.T) {
	opts := baseOptions()
	opts.TrimAmbiguous = true
	opts.TrimQualities = true
	s, err := New(opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	rec, err := fastq.New("Rec", "NTNTAGNT", "1!#$12#\"", fastq.Phred33)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.TrimByQualityIfEnabled(&rec); got != (fastq.Ntrimmed{Five: 3, Three: 2}) {
		t.Errorf("trimmed %+v", got)
	}
	if rec.Sequence != "TAG" {
		t.Errorf("got %q, want %q", rec.Sequence, "TAG")
	}

	if s.IsAcceptableRead(&rec) {
		t.Error("3-base read accepted with minlength 15")
	}
	long, err := fastq.New("Rec", strings.Repeat("A", 20), strings.Repeat("I", 20), fastq.Phred33)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsAcceptableRead(&long) {
		t.Error("20-base read rejected with minlength 15")
	}
}
