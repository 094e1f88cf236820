// internal/output/files.go
package output

import (
	"adapterremoval/internal/config"
)

// Files bundles the output sinks of a run. Single-ended runs leave the
// pair-specific and collapse sinks nil; collapse sinks are only opened when
// collapsing is enabled.
type Files struct {
	Output1            *Sink
	Output2            *Sink
	Singleton          *Sink
	Collapsed          *Sink
	CollapsedTruncated *Sink
	Discarded          *Sink
}

func defaultName(basename, override, postfix string) string {
	if override != "" {
		return override
	}
	return basename + postfix
}

// OpenFiles creates every sink the configured run needs. On any failure the
// sinks opened so far are closed and the error names the file.
func OpenFiles(s *config.Settings) (*Files, error) {
	f := &Files{}
	var err error

	open := func(dst **Sink, override, postfix string) {
		if err != nil {
			return
		}
		*dst, err = CreateSink(defaultName(s.Basename, override, postfix), s.OutputEncoding)
	}

	if s.Paired {
		open(&f.Output1, s.Output1, ".pair1.truncated")
		open(&f.Output2, s.Output2, ".pair2.truncated")
		open(&f.Singleton, s.Singleton, ".singleton.truncated")
		if s.Collapse {
			open(&f.Collapsed, s.Collapsed, ".collapsed")
			open(&f.CollapsedTruncated, s.CollapsedTruncated, ".collapsed.truncated")
		}
	} else {
		open(&f.Output1, s.Output1, ".truncated")
	}
	open(&f.Discarded, s.Discarded, ".discarded")

	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// All returns the non-nil sinks in a stable order.
func (f *Files) All() []*Sink {
	var sinks []*Sink
	for _, s := range []*Sink{
		f.Output1, f.Output2, f.Singleton,
		f.Collapsed, f.CollapsedTruncated, f.Discarded,
	} {
		if s != nil {
			sinks = append(sinks, s)
		}
	}
	return sinks
}

// Close closes every open sink, returning the first error.
func (f *Files) Close() error {
	var err error
	for _, s := range f.All() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
