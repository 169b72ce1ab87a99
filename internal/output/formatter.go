package output

import (
	"io"
	"strconv"
)

// Formatter turns scanned lines into their exact text representation and
// writes them, one line per call, to a single output stream.
type Formatter struct {
	w         io.Writer
	styles    Styles
	useColor  bool
	noHeading bool
	buf       []byte // reused across calls
}

// NewFormatter creates a Formatter writing to w.
func NewFormatter(w io.Writer, styles Styles, useColor, noHeading bool) *Formatter {
	return &Formatter{
		w:         w,
		styles:    styles,
		useColor:  useColor,
		noHeading: noHeading,
		buf:       make([]byte, 0, 4096),
	}
}

// FileHeader prints the per-file filename line used in heading mode.
func (f *Formatter) FileHeader(path string) {
	buf := f.buf[:0]
	if f.useColor {
		buf = append(buf, f.styles.Filename.Render(path)...)
	} else {
		buf = append(buf, path...)
	}
	buf = append(buf, '\n')
	f.buf = buf
	f.w.Write(buf)
}

// Separator prints the "--" group separator line.
func (f *Formatter) Separator() {
	buf := f.buf[:0]
	if f.useColor {
		buf = append(buf, f.styles.Separator.Render("--")...)
	} else {
		buf = append(buf, "--"...)
	}
	buf = append(buf, '\n')
	f.buf = buf
	f.w.Write(buf)
}

// Line prints a single matched or context line. index is zero-based; the
// printed line-number field is index+1. spans are the match positions within
// content, used for highlighting when color is on.
func (f *Formatter) Line(path string, content []byte, index int, spans [][2]int, isMatch bool) {
	sep := ":"
	if !isMatch {
		sep = "-"
	}

	buf := f.buf[:0]

	if f.noHeading {
		if f.useColor {
			buf = append(buf, f.styles.Filename.Render(path)...)
			buf = append(buf, f.styles.Separator.Render(sep)...)
		} else {
			buf = append(buf, path...)
			buf = append(buf, sep...)
		}
	}

	num := strconv.Itoa(index + 1)
	if f.useColor {
		buf = append(buf, f.styles.LineNum.Render(num)...)
		buf = append(buf, f.styles.Separator.Render(sep)...)
	} else {
		buf = append(buf, num...)
		buf = append(buf, sep...)
	}

	if f.useColor && isMatch && validSpans(content, spans) {
		buf = f.highlight(buf, content, spans)
	} else {
		buf = append(buf, content...)
	}

	buf = append(buf, '\n')
	f.buf = buf
	f.w.Write(buf)
}

// highlight wraps each match span in the match style. Spans are validated
// by the caller; out-of-range spans fall back to the plain line instead.
func (f *Formatter) highlight(buf, line []byte, spans [][2]int) []byte {
	prev := 0
	for _, sp := range spans {
		start, end := sp[0], sp[1]
		if start > prev {
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, f.styles.Match.Render(string(line[start:end]))...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}

// validSpans reports whether spans are in-bounds and ordered. A malformed
// span set means the highlighting step cannot be trusted for this line; the
// caller prints the content unhighlighted rather than failing.
func validSpans(line []byte, spans [][2]int) bool {
	prev := 0
	for _, sp := range spans {
		if sp[0] < prev || sp[1] < sp[0] || sp[1] > len(line) {
			return false
		}
		prev = sp[1]
	}
	return len(spans) > 0
}
