// internal/app/process.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"adapterremoval-core/alignment"
	"adapterremoval-core/fastq"

	"adapterremoval/internal/config"
	"adapterremoval/internal/output"
)

// runTrim executes the single-ended or paired-ended trimming loop and writes
// the report and summary when the inputs are exhausted.
func runTrim(s *config.Settings, stderr io.Writer) error {
	in1, err := output.OpenInput(s.File1)
	if err != nil {
		return err
	}
	defer in1.Close()
	br1 := bufio.NewReader(in1)

	var br2 *bufio.Reader
	if s.Paired {
		in2, err := output.OpenInput(s.File2)
		if err != nil {
			return err
		}
		defer in2.Close()
		br2 = bufio.NewReader(in2)
	}

	files, err := output.OpenFiles(s)
	if err != nil {
		return err
	}

	stats := &Statistics{}
	err = processReads(s, br1, br2, files, stats)

	if cerr := files.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if err := writeReport(s, stats, files); err != nil {
		return err
	}
	writeSummary(stderr, stats, files)
	return nil
}

func processReads(s *config.Settings, br1, br2 *bufio.Reader, files *output.Files, stats *Statistics) error {
	var rec1, rec2 fastq.Record
	for {
		ok1, err := rec1.Read(br1, s.InputEncoding)
		if err != nil {
			return err
		}
		if !s.Paired {
			if !ok1 {
				return nil
			}
			stats.TotalReads++
			if err := processSingle(s, &rec1, files, stats); err != nil {
				return err
			}
			continue
		}

		ok2, err := rec2.Read(br2, s.InputEncoding)
		if err != nil {
			return err
		}
		if ok1 != ok2 {
			return fmt.Errorf("paired input files contain unequal numbers of records")
		}
		if !ok1 {
			return nil
		}
		if n1, n2 := mateName(rec1.Header), mateName(rec2.Header); n1 != n2 {
			return fmt.Errorf("mate names do not match: %q and %q", n1, n2)
		}
		stats.TotalReads += 2
		if err := processPair(s, &rec1, &rec2, files, stats); err != nil {
			return err
		}
	}
}

// mateName strips a read name at the first mate suffix or whitespace, so that
// "read1/1" and "read1/2" compare equal.
func mateName(header string) string {
	if i := strings.IndexAny(header, "/ \t"); i != -1 {
		return header[:i]
	}
	return header
}

// processSingle aligns the adapter against one read, trims it when the
// alignment qualifies, and routes the read to the kept or discarded sink.
func processSingle(s *config.Settings, rec *fastq.Record, files *output.Files, stats *Statistics) error {
	if s.TrimBarcodeIfEnabled(rec) {
		stats.BarcodesTrimmed++
	}

	aln := alignment.Align(rec.Sequence, s.Adapter1, s.Shift)
	switch s.Evaluate(aln) {
	case alignment.ValidAlignment:
		stats.WellAligned++
		end := aln.Offset
		if end < 0 {
			end = 0
		}
		if err := rec.Truncate(0, end); err != nil {
			return err
		}
	case alignment.PoorAlignment:
		stats.PoorlyAligned++
	default:
		stats.Unaligned++
	}

	trimmed := s.TrimByQualityIfEnabled(rec)
	stats.TerminalTrimmed5 += trimmed.Five
	stats.TerminalTrimmed3 += trimmed.Three

	if s.IsAcceptableRead(rec) {
		return files.Output1.WriteRecord(rec)
	}
	return files.Discarded.WriteRecord(rec)
}

// processPair aligns the reverse complement of mate 2 against mate 1. Each
// sequence is extended with the adapter expected to precede or follow it on
// the other strand, so read-through adapter bases in one read match the
// extension on the other and strengthen the alignment instead of truncating
// it. A qualifying alignment has the adapters trimmed; overlapping mates are
// then collapsed when enabled.
func processPair(s *config.Settings, rec1, rec2 *fastq.Record, files *output.Files, stats *Statistics) error {
	if s.TrimBarcodeIfEnabled(rec1) {
		stats.BarcodesTrimmed++
	}

	rc2 := *rec2
	rc2.ReverseComplement()

	ext1 := s.Adapter2 + rec1.Sequence
	ext2 := rc2.Sequence + s.Adapter1
	aln := alignment.Align(ext1, ext2, len(s.Adapter2)+s.Shift)

	switch s.Evaluate(aln) {
	case alignment.ValidAlignment:
		stats.WellAligned++
	case alignment.PoorAlignment:
		stats.PoorlyAligned++
		return routePair(s, rec1, &rc2, files, stats)
	default:
		stats.Unaligned++
		return routePair(s, rec1, &rc2, files, stats)
	}

	// Shift the offset from adapter-extended coordinates back into mate 1
	// coordinates: mate 2 starts at r2start, and the template ends where
	// mate 2 does. Bases past either boundary are adapter sequence.
	r2start := aln.Offset - len(s.Adapter2)
	templateEnd := r2start + rc2.Length()

	if templateEnd < rec1.Length() {
		end := templateEnd
		if end < 0 {
			end = 0
		}
		if err := rec1.Truncate(0, end); err != nil {
			return err
		}
	}
	if r2start < 0 {
		lead := -r2start
		if lead > rc2.Length() {
			lead = rc2.Length()
		}
		if err := rc2.Truncate(lead, -1); err != nil {
			return err
		}
		r2start = 0
	}

	if s.Collapse {
		return collapsePair(s, rec1, &rc2, r2start, files, stats)
	}
	return routePair(s, rec1, &rc2, files, stats)
}

// collapsePair merges the overlapping mates into a consensus read.
func collapsePair(s *config.Settings, rec1, rc2 *fastq.Record, r2start int, files *output.Files, stats *Statistics) error {
	if r2start > rec1.Length() {
		r2start = rec1.Length()
	}
	overlap := alignment.At(rec1.Sequence, rc2.Sequence, r2start)
	merged := alignment.Collapse(*rec1, *rc2, overlap, s.RNG)

	trimmed := s.TrimByQualityIfEnabled(&merged)
	stats.TerminalTrimmed5 += trimmed.Five
	stats.TerminalTrimmed3 += trimmed.Three

	switch {
	case !s.IsAcceptableRead(&merged):
		return files.Discarded.WriteRecord(&merged)
	case trimmed.Five+trimmed.Three > 0:
		merged.AddPrefixToHeader("MT_")
		return files.CollapsedTruncated.WriteRecord(&merged)
	default:
		merged.AddPrefixToHeader("M_")
		return files.Collapsed.WriteRecord(&merged)
	}
}

// routePair quality-trims both mates and distributes them over the paired,
// singleton, and discarded sinks. rc2 is mate 2 in mate 1 orientation and is
// restored before trimming and writing.
func routePair(s *config.Settings, rec1, rc2 *fastq.Record, files *output.Files, stats *Statistics) error {
	rc2.ReverseComplement()

	for _, rec := range []*fastq.Record{rec1, rc2} {
		trimmed := s.TrimByQualityIfEnabled(rec)
		stats.TerminalTrimmed5 += trimmed.Five
		stats.TerminalTrimmed3 += trimmed.Three
	}

	ok1 := s.IsAcceptableRead(rec1)
	ok2 := s.IsAcceptableRead(rc2)
	switch {
	case ok1 && ok2:
		if err := files.Output1.WriteRecord(rec1); err != nil {
			return err
		}
		return files.Output2.WriteRecord(rc2)
	case ok1:
		if err := files.Singleton.WriteRecord(rec1); err != nil {
			return err
		}
		return files.Discarded.WriteRecord(rc2)
	case ok2:
		if err := files.Discarded.WriteRecord(rec1); err != nil {
			return err
		}
		return files.Singleton.WriteRecord(rc2)
	default:
		if err := files.Discarded.WriteRecord(rec1); err != nil {
			return err
		}
		return files.Discarded.WriteRecord(rc2)
	}
}
