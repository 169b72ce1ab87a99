package scan

// Line is a single line of file content with its zero-based index.
type Line struct {
	Content []byte
	Index   int
}

// ContextBuffer is a bounded FIFO of the most recently seen non-matching
// lines, kept so they can be replayed as before-context when a match lands.
// It never holds more than its capacity; pushing at capacity drops the
// oldest entry.
type ContextBuffer struct {
	lines    []Line
	capacity int
}

// NewContextBuffer creates a buffer holding at most capacity lines.
// A zero capacity buffer accepts pushes and stores nothing.
func NewContextBuffer(capacity int) *ContextBuffer {
	return &ContextBuffer{capacity: capacity}
}

// Push appends a copy of the line, evicting the oldest entry if full.
// The copy matters: callers hand in slices backed by a reused read buffer.
func (b *ContextBuffer) Push(content []byte, index int) {
	if b.capacity == 0 {
		return
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	if len(b.lines) >= b.capacity {
		b.lines = b.lines[1:]
	}
	b.lines = append(b.lines, Line{Content: cp, Index: index})
}

// Drain returns the buffered lines oldest first and empties the buffer.
func (b *ContextBuffer) Drain() []Line {
	out := b.lines
	b.lines = nil
	return out
}

// OldestIndex returns the index of the oldest buffered line.
// ok is false when the buffer is empty.
func (b *ContextBuffer) OldestIndex() (int, bool) {
	if len(b.lines) == 0 {
		return 0, false
	}
	return b.lines[0].Index, true
}

// Len returns the number of buffered lines.
func (b *ContextBuffer) Len() int {
	return len(b.lines)
}
