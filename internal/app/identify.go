// internal/app/identify.go
package app

import (
	"bufio"
	"fmt"
	"io"

	"adapterremoval-core/alignment"
	"adapterremoval-core/fastq"

	"adapterremoval/internal/config"
	"adapterremoval/internal/output"
)

// baseConsensus accumulates per-position base counts for the sequence
// fragments observed past the template junction, one column per position.
type baseConsensus struct {
	counts [][5]int
	reads  int
}

var baseIndex = map[byte]int{'A': 0, 'C': 1, 'G': 2, 'T': 3, 'N': 4}

// add counts one fragment. Position 0 is the base nearest the junction.
func (c *baseConsensus) add(fragment string) {
	if fragment == "" {
		return
	}
	for len(c.counts) < len(fragment) {
		c.counts = append(c.counts, [5]int{})
	}
	for i := 0; i < len(fragment); i++ {
		c.counts[i][baseIndex[fragment[i]]]++
	}
	c.reads++
}

// consensus returns the most frequent base per position. A position only
// yields N when N strictly outnumbers every base; other ties resolve toward
// the earlier base in ACGT order.
func (c *baseConsensus) consensus() string {
	bases := []byte("ACGTN")
	out := make([]byte, len(c.counts))
	for i, col := range c.counts {
		best := 4
		for b := 0; b < 4; b++ {
			if col[b] > col[best] || (best == 4 && col[b] == col[best]) {
				best = b
			}
		}
		out[i] = bases[best]
	}
	return string(out)
}

// runIdentify infers the adapter pair from read-through in overlapping mates
// and prints the consensus sequences.
func runIdentify(s *config.Settings, stdout io.Writer) error {
	in1, err := output.OpenInput(s.File1)
	if err != nil {
		return err
	}
	defer in1.Close()
	in2, err := output.OpenInput(s.File2)
	if err != nil {
		return err
	}
	defer in2.Close()
	br1 := bufio.NewReader(in1)
	br2 := bufio.NewReader(in2)

	var adapter1, adapter2 baseConsensus
	pairs := 0
	aligned := 0

	var rec1, rec2 fastq.Record
	for {
		ok1, err := rec1.Read(br1, s.InputEncoding)
		if err != nil {
			return err
		}
		ok2, err := rec2.Read(br2, s.InputEncoding)
		if err != nil {
			return err
		}
		if ok1 != ok2 {
			return fmt.Errorf("paired input files contain unequal numbers of records")
		}
		if !ok1 {
			break
		}
		pairs++

		rc2 := rec2
		rc2.ReverseComplement()

		ext1 := s.Adapter2 + rec1.Sequence
		ext2 := rc2.Sequence + s.Adapter1
		aln := alignment.Align(ext1, ext2, len(s.Adapter2)+s.Shift)
		if s.Evaluate(aln) != alignment.ValidAlignment {
			continue
		}
		aligned++

		r2start := aln.Offset - len(s.Adapter2)
		templateEnd := r2start + rc2.Length()

		// Bases in mate 1 past the end of the template are the 3' adapter.
		if templateEnd >= 0 && templateEnd < rec1.Length() {
			adapter1.add(rec1.Sequence[templateEnd:])
		}
		// Bases of mate 2 before the start of the template are the tail of
		// the second adapter, ending at the junction. Reversing the fragment
		// puts the junction-adjacent base first, so columns line up across
		// fragments of different lengths; the consensus is reversed back
		// before printing.
		if r2start < 0 {
			lead := -r2start
			if lead > rc2.Length() {
				lead = rc2.Length()
			}
			adapter2.add(reverse(rc2.Sequence[:lead]))
		}
	}

	fmt.Fprintf(stdout, "Processed %d pairs, %d with usable alignments\n", pairs, aligned)
	fmt.Fprintf(stdout, "Consensus adapter 1 (fragments: %d):\n  -pcr1 %s\n", adapter1.reads, adapter1.consensus())
	fmt.Fprintf(stdout, "Consensus adapter 2 (fragments: %d):\n  -pcr2 %s\n", adapter2.reads, reverse(adapter2.consensus()))
	return nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
