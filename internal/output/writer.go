package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to stdout, using writev for batching.
// The formatter emits one complete line per call, so output is effectively
// line-buffered with no reordering.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

func (w *Writer) Write(data []byte) (int, error) {
	total := len(data)
	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(w.fd, iovs)
		if err != nil {
			return total - len(data), err
		}
		data = data[n:]
	}
	return total, nil
}
