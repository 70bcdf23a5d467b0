// Package pagebuf provides an append buffer that pads to page boundaries.
package pagebuf

import (
	"io"

	"github.com/pkg/errors"
)

// Buffer is an append-only byte buffer with a hard capacity limit.
type Buffer struct {
	// B is the underlying byte slice.
	B     []byte
	limit int
}

// New creates a Buffer that can hold at most limit bytes.
func New(limit int) *Buffer {
	return &Buffer{
		B:     make([]byte, 0, limit),
		limit: limit,
	}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Limit returns the maximum number of bytes the buffer holds.
func (b *Buffer) Limit() int {
	return b.limit
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return b.limit - len(b.B)
}

// Write appends data, failing without writing anything if it would exceed the limit.
func (b *Buffer) Write(data []byte) (int, error) {
	if len(data) > b.Available() {
		return 0, errors.Errorf("pagebuf: write of %d bytes exceeds limit (%d available)", len(data), b.Available())
	}
	b.B = append(b.B, data...)

	return len(data), nil
}

// Zero appends n zero bytes.
func (b *Buffer) Zero(n int) error {
	if n < 0 || n > b.Available() {
		return errors.Errorf("pagebuf: cannot zero-fill %d bytes (%d available)", n, b.Available())
	}
	b.B = append(b.B, make([]byte, n)...)

	return nil
}

// PadTo zero-fills up to the next multiple of align and returns the number of bytes added.
// A buffer already on a boundary is left unchanged.
func (b *Buffer) PadTo(align int) (int, error) {
	n := Padding(len(b.B), align)
	if err := b.Zero(n); err != nil {
		return 0, err
	}

	return n, nil
}

// Fill zero-fills the buffer up to its limit.
func (b *Buffer) Fill() {
	b.B = append(b.B, make([]byte, b.Available())...)
}

// WriteTo writes the contents of the buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)
	return int64(n), err
}

// Pages returns how many align-sized pages n bytes occupy.
func Pages(n, align int) int {
	return (n + align - 1) / align
}

// Padding returns the bytes needed to round n up to a multiple of align.
func Padding(n, align int) int {
	return Pages(n, align)*align - n
}
