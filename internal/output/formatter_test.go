package output

import (
	"bytes"
	"testing"
)

func TestFormatter_HeadingMode(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, NoStyles(), false, false)

	f.FileHeader("src/main.go")
	f.Line("src/main.go", []byte("package main"), 0, [][2]int{{0, 7}}, true)
	f.Line("src/main.go", []byte("import it"), 1, nil, false)
	f.Separator()
	f.Line("src/main.go", []byte("func main()"), 9, [][2]int{{5, 9}}, true)

	want := "src/main.go\n1:package main\n2-import it\n--\n10:func main()\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatter_NoHeadingMode(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, NoStyles(), false, true)

	f.Line("a.txt", []byte("hit"), 2, [][2]int{{0, 3}}, true)
	f.Line("a.txt", []byte("ctx"), 3, nil, false)

	want := "a.txt:3:hit\na.txt-4-ctx\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatter_LineNumberIsOneBased(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, NoStyles(), false, false)
	f.Line("f", []byte("x"), 41, nil, false)
	if got := buf.String(); got != "42-x\n" {
		t.Errorf("got %q, want %q", got, "42-x\n")
	}
}

func TestFormatter_HighlightFallbackOnBadSpans(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, NoStyles(), true, false)

	// Spans past the end of the line must not panic and must fall back to
	// printing the raw content.
	f.Line("f", []byte("short"), 0, [][2]int{{10, 20}}, true)

	want := "1:short\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestValidSpans(t *testing.T) {
	line := []byte("0123456789")
	tests := []struct {
		name  string
		spans [][2]int
		want  bool
	}{
		{"empty", nil, false},
		{"in bounds", [][2]int{{0, 3}}, true},
		{"full line", [][2]int{{0, 10}}, true},
		{"zero width", [][2]int{{4, 4}}, true},
		{"ordered pair", [][2]int{{1, 3}, {5, 7}}, true},
		{"past end", [][2]int{{8, 12}}, false},
		{"inverted", [][2]int{{5, 2}}, false},
		{"overlapping", [][2]int{{1, 5}, {3, 7}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validSpans(line, tt.spans); got != tt.want {
				t.Errorf("validSpans(%v) = %v, want %v", tt.spans, got, tt.want)
			}
		})
	}
}
