// internal/output/sink.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"adapterremoval-core/fastq"

	"github.com/klauspost/pgzip"
)

// Sink is one buffered output destination for reads, gzip-compressed when the
// filename ends in .gz. It counts the records written to it.
type Sink struct {
	path    string
	file    *os.File
	gz      *pgzip.Writer
	w       *bufio.Writer
	encoded fastq.Encoding
	count   int
}

// CreateSink creates (truncating) the named file as a read sink serializing
// qualities in enc.
func CreateSink(path string, enc fastq.Encoding) (*Sink, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	s := &Sink{path: path, file: fh, encoded: enc}
	if strings.HasSuffix(path, ".gz") {
		s.gz = pgzip.NewWriter(fh)
		s.w = bufio.NewWriter(s.gz)
	} else {
		s.w = bufio.NewWriter(fh)
	}
	return s, nil
}

// WriteRecord serializes one record to the sink.
func (s *Sink) WriteRecord(r *fastq.Record) error {
	if err := r.Write(s.w, s.encoded); err != nil {
		return fmt.Errorf("writing to %q: %w", s.path, err)
	}
	s.count++
	return nil
}

// Count returns the number of records written so far.
func (s *Sink) Count() int { return s.count }

// Path returns the sink's filename.
func (s *Sink) Path() string { return s.path }

// Close flushes the buffer and compressor and closes the file.
func (s *Sink) Close() error {
	var err error
	if s.w != nil {
		err = s.w.Flush()
	}
	if s.gz != nil {
		if cerr := s.gz.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("closing %q: %w", s.path, err)
	}
	return nil
}

var _ io.Closer = (*Sink)(nil)
