package csvio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ScanOptions configures a single-pass scan over one source file.
type ScanOptions struct {
	Delimiter byte
	Encoding  string // "utf-8" (default) or "latin-1"
	Provider  string
	Fields    []Field
	Overrides map[string]int
	Probe     string // semantic field used for header-row detection
}

// Scanner streams data records from a CSV export. The first line is probed
// for a header (and consumed when it is one), columns are resolved once per
// open, and for provider "dv" the scan stops at the footer line.
type Scanner struct {
	f       *os.File
	sc      *bufio.Scanner
	opts    ScanOptions
	cols    Columns
	record  []string
	pending []string
	done    bool
}

// Open opens path and resolves the column layout from its first line.
// A missing file is a hard error; the caller decides whether that kills
// the task.
func Open(path string, opts ScanOptions) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "csvio: open %s", path)
	}

	var r io.Reader = f
	if strings.EqualFold(opts.Encoding, "latin-1") {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	s := &Scanner{f: f, sc: sc, opts: opts}

	// Probe the first line. When it is a header it drives column
	// resolution and is consumed; otherwise it is held back as data.
	if sc.Scan() {
		first := SplitLine(strings.TrimPrefix(sc.Text(), "\uFEFF"), opts.Delimiter)
		s.cols = Resolve(first, opts.Fields, opts.Overrides)
		if !IsHeaderRow(first, s.cols, opts.Fields, opts.Probe) {
			s.pending = first
		}
	} else {
		s.cols = Resolve(nil, opts.Fields, opts.Overrides)
	}

	return s, nil
}

// Scan advances to the next data record. It returns false at end of file,
// at the provider footer, or on a read error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	if s.pending != nil {
		s.record = s.pending
		s.pending = nil
		return true
	}
	for s.sc.Scan() {
		line := s.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if IsFooter(s.opts.Provider, line) {
			s.done = true
			return false
		}
		s.record = SplitLine(line, s.opts.Delimiter)
		return true
	}
	s.done = true
	return false
}

// Record returns the current record's raw fields.
func (s *Scanner) Record() []string { return s.record }

// Columns returns the resolved column layout.
func (s *Scanner) Columns() Columns { return s.cols }

// Get returns the current record's value for a semantic field name.
func (s *Scanner) Get(name string) string { return s.cols.Get(s.record, name) }

// Err reports any read error encountered during scanning.
func (s *Scanner) Err() error {
	if err := s.sc.Err(); err != nil {
		return eris.Wrap(err, "csvio: scan")
	}
	return nil
}

// Close closes the underlying file.
func (s *Scanner) Close() error { return s.f.Close() }
