package scan

import (
	"bufio"
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/dl/lgrep/internal/matcher"
	"github.com/dl/lgrep/internal/output"
)

// RunState spans all files scanned in one run. It is threaded through every
// Scanner.File call; the cross-file separator in no-heading mode depends on
// whether an earlier file already printed a match.
type RunState struct {
	HasPrintedAnyMatch bool
}

// Scanner drives the per-file scan: it reads lines in stream order, asks the
// matcher about each, replays buffered before-context at match time, and
// emits group separators where printed blocks are discontiguous.
type Scanner struct {
	m         matcher.Matcher
	out       *output.Formatter
	before    int
	after     int
	noHeading bool
}

// New creates a Scanner. before and after are the context window sizes.
func New(m matcher.Matcher, out *output.Formatter, before, after int, noHeading bool) *Scanner {
	return &Scanner{
		m:         m,
		out:       out,
		before:    before,
		after:     after,
		noHeading: noHeading,
	}
}

// fileScan is the per-file state machine. lastPrinted is -1 until the first
// line of this file is printed and is monotonically non-decreasing after
// that. afterRemaining > 0 means we are inside a trailing-context window.
type fileScan struct {
	s    *Scanner
	path string
	buf  *ContextBuffer

	afterRemaining int
	lastPrinted    int
	headerPrinted  bool
}

// File scans a single file. Binary content, encoding failures, and matcher
// engine failures abort the file silently. Read errors after open likewise
// stop the file without surfacing; only the open error is returned so the
// caller can report permission problems.
func (s *Scanner) File(path string, run *RunState) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fs := &fileScan{
		s:           s,
		path:        path,
		buf:         NewContextBuffer(s.before),
		lastPrinted: -1,
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	idx := 0
	for sc.Scan() {
		if !fs.step(sc.Bytes(), idx, run) {
			return nil
		}
		idx++
	}
	// A scan error here (I/O fault, over-long line) stops this file only.
	return nil
}

// step processes one line. It returns false when the file must be abandoned:
// binary content, an encoding failure, or the matching engine rejecting the
// line. Nothing printed so far is retracted.
func (fs *fileScan) step(line []byte, idx int, run *RunState) bool {
	if bytes.IndexByte(line, 0) >= 0 || !utf8.Valid(line) {
		return false
	}

	spans, err := fs.s.m.Find(line)
	if err != nil {
		return false
	}

	if spans != nil {
		fs.match(line, idx, spans, run)
		return true
	}

	if fs.afterRemaining > 0 {
		fs.s.out.Line(fs.path, line, idx, nil, false)
		fs.lastPrinted = idx
		fs.afterRemaining--
		return true
	}

	fs.buf.Push(line, idx)
	return true
}

// match handles a matching line: header, separators, before-context replay,
// then the match itself.
func (fs *fileScan) match(line []byte, idx int, spans [][2]int, run *RunState) {
	if !fs.s.noHeading && !fs.headerPrinted {
		fs.s.out.FileHeader(fs.path)
		fs.headerPrinted = true
	}

	contextEnabled := fs.s.before > 0 || fs.s.after > 0

	// First line about to be printed: the oldest buffered context line, or
	// the match itself when the buffer is empty.
	first := idx
	if oldest, ok := fs.buf.OldestIndex(); ok {
		first = oldest
	}

	// Gap separator: an unprinted line sits between the previous printed
	// block and this one.
	if contextEnabled && fs.lastPrinted != -1 && first > fs.lastPrinted+1 {
		fs.s.out.Separator()
	}

	// Cross-file separator: in no-heading mode the first block of this file
	// is separated from an earlier file's output.
	if fs.s.noHeading && contextEnabled && run.HasPrintedAnyMatch && fs.lastPrinted == -1 {
		fs.s.out.Separator()
	}

	for _, cl := range fs.buf.Drain() {
		fs.s.out.Line(fs.path, cl.Content, cl.Index, nil, false)
		fs.lastPrinted = cl.Index
	}

	fs.s.out.Line(fs.path, line, idx, spans, true)
	fs.lastPrinted = idx
	fs.afterRemaining = fs.s.after
	run.HasPrintedAnyMatch = true
}
