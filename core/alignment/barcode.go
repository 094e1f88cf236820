package alignment

import "adapterremoval-core/fastq"

// TrimBarcode looks for barcode at the 5' end of the read, allowing at most
// one mismatch and up to shift skipped leading positions, and truncates
// through the matched span. It reports whether a barcode was found; on
// failure the read is left unchanged.
func TrimBarcode(read *fastq.Record, barcode string, shift int) bool {
	if barcode == "" {
		return false
	}
	for offset := 0; offset <= shift; offset++ {
		if offset+len(barcode) > read.Length() {
			break
		}
		mismatches := 0
		for i := 0; i < len(barcode) && mismatches <= 1; i++ {
			if read.Sequence[offset+i] != barcode[i] {
				mismatches++
			}
		}
		if mismatches <= 1 {
			start := offset + len(barcode)
			read.Sequence = read.Sequence[start:]
			read.Qualities = read.Qualities[start:]
			return true
		}
	}
	return false
}
