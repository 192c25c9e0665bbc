package judgeio

import (
	"bufio"
	"fmt"
	"io"
)

// Writer buffers judge output. The first write error is remembered and
// returned by every later call and by Flush, so callers can check once.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Printf formats like fmt.Printf.
func (w *Writer) Printf(format string, args ...interface{}) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
	return w.err
}

// Println formats like fmt.Println.
func (w *Writer) Println(args ...interface{}) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = fmt.Fprintln(w.w, args...)
	return w.err
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }
