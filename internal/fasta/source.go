package fasta

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName names the standard input source in records and diagnostics.
const StdinName = "standard input"

// StdinPath is the command-line spelling of standard input.
const StdinPath = "-"

// Source is one named input stream.
type Source struct {
	Name  string
	Stdin bool

	r io.Reader
	c io.Closer // nil for stdin
}

// Sources is an ordered set of acquired inputs.
type Sources struct {
	list []*Source
}

// Open acquires every path in order. No paths means standard input.
// If any path cannot be opened, the sources acquired so far are released
// and the error names the offending path.
func Open(paths []string) (*Sources, error) {
	return OpenWith(paths, os.Stdin)
}

// OpenWith is Open with an explicit reader standing in for standard input.
func OpenWith(paths []string, stdin io.Reader) (*Sources, error) {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}

	s := &Sources{}
	for _, p := range paths {
		if p == StdinPath {
			s.list = append(s.list, &Source{Name: StdinName, Stdin: true, r: stdin})
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			closeErr := s.Close()
			return nil, errors.Join(fmt.Errorf("open input %s: %w", p, err), closeErr)
		}
		s.list = append(s.list, &Source{Name: p, r: f, c: f})
	}
	return s, nil
}

// List returns the sources in command-line order.
func (s *Sources) List() []*Source {
	return s.list
}

// ReadAll parses every source in order. notice, if non-nil, is called
// before a standard input source is consumed. A read failure on any source
// aborts the whole read.
func (s *Sources) ReadAll(notice func(*Source)) ([]Entry, error) {
	var all []Entry
	for _, src := range s.list {
		if src.Stdin && notice != nil {
			notice(src)
		}
		entries, err := Parse(src.r, src.Name)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// Close releases every file handle. Standard input is left open.
func (s *Sources) Close() error {
	var errs []error
	for _, src := range s.list {
		if src.c == nil {
			continue
		}
		if err := src.c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", src.Name, err))
		}
		src.c = nil
	}
	return errors.Join(errs...)
}
