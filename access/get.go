package access

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/quickwritereader/strpack/types"
)

// GetAccess reads strings out of a packed buffer without copying the
// buffer itself.
type GetAccess struct {
	buf   []byte // full packed buffer: directory + payload
	count int    // number of live entries
}

// NewGetAccess validates buf and derives the entry count from the first
// directory offset. An empty buffer holds zero entries.
func NewGetAccess(buf []byte) (GetAccess, error) {
	if err := Validate(buf); err != nil {
		return GetAccess{}, err
	}
	return GetAccess{buf: buf, count: countOf(buf)}, nil
}

// View wraps a buffer whose first count entries are known to be valid.
// Containers use it over buffers they built themselves.
func View(buf []byte, count int) GetAccess {
	return GetAccess{buf: buf, count: count}
}

func countOf(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return types.DecodeOffset(buf, 0) / types.EntrySize
}

// Count returns the number of strings in the buffer.
func (g GetAccess) Count() int {
	return g.count
}

// Buffer returns the underlying packed buffer.
func (g GetAccess) Buffer() []byte {
	return g.buf
}

// Range returns the absolute [start, end) of entry pos.
func (g GetAccess) Range(pos int) (start, end int, err error) {
	if err := CheckIndex("range", pos, g.count); err != nil {
		return 0, 0, err
	}
	start, n := types.DecodeEntry(g.buf, pos)
	return start, start + n, nil
}

// view returns entry pos as a string sharing memory with the buffer.
func (g GetAccess) view(pos int) string {
	off, n := types.DecodeEntry(g.buf, pos)
	if n == 0 {
		return ""
	}
	return unsafe.String(&g.buf[off], n)
}

// GetString decodes a copy of the string at position pos.
func (g GetAccess) GetString(pos int) (string, error) {
	if err := CheckIndex("get", pos, g.count); err != nil {
		return "", err
	}
	off, n := types.DecodeEntry(g.buf, pos)
	return string(g.buf[off : off+n]), nil
}

// GetStringUnsafe decodes the string at position pos using unsafe.String.
// The result aliases the buffer and must not outlive changes to it.
func (g GetAccess) GetStringUnsafe(pos int) (string, error) {
	if err := CheckIndex("get", pos, g.count); err != nil {
		return "", err
	}
	return g.view(pos), nil
}

// AppendString appends the bytes of entry pos to dst.
func (g GetAccess) AppendString(dst []byte, pos int) ([]byte, error) {
	start, end, err := g.Range(pos)
	if err != nil {
		return dst, err
	}
	return append(dst, g.buf[start:end]...), nil
}

// Span returns entries [lo, hi) concatenated. The result is a view when the
// entries are adjacent in the payload and a copy otherwise. lo == hi yields
// an empty string; hi may equal Count().
func (g GetAccess) Span(lo, hi int) (string, error) {
	if lo < 0 || hi > g.count || lo > hi {
		return "", fmt.Errorf("span [%d:%d] of %d entries: %w", lo, hi, g.count, ErrOutOfBounds)
	}
	if lo == hi {
		return "", nil
	}
	start := types.DecodeOffset(g.buf, lo)
	end, total := start, 0
	for i := lo; i < hi; i++ {
		off, n := types.DecodeEntry(g.buf, i)
		if off != end {
			end = -1
		} else {
			end += n
		}
		total += n
	}
	if total == 0 {
		return "", nil
	}
	if end == start+total {
		return unsafe.String(&g.buf[start], total), nil
	}
	out := make([]byte, 0, total)
	for i := lo; i < hi; i++ {
		out, _ = g.AppendString(out, i)
	}
	return string(out), nil
}

// All yields every (index, view) pair in order.
func (g GetAccess) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < g.count; i++ {
			if !yield(i, g.view(i)) {
				return
			}
		}
	}
}

// Validate checks that buf is a well-formed standalone packed buffer: the
// first offset names the directory size and every entry lies inside the
// payload, in order, without overlapping its neighbours.
func Validate(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if !types.Fits(len(buf)) {
		return ErrTooLarge
	}
	if len(buf) < types.EntrySize {
		return fmt.Errorf("%w: %d bytes cannot hold a directory entry", ErrCorrupt, len(buf))
	}
	base := types.DecodeOffset(buf, 0)
	if base == 0 || base%types.EntrySize != 0 || base > len(buf) {
		return fmt.Errorf("%w: invalid payload base %d for %d bytes", ErrCorrupt, base, len(buf))
	}
	prevEnd := base
	for i := 0; i < base/types.EntrySize; i++ {
		off, n := types.DecodeEntry(buf, i)
		if off < prevEnd {
			return fmt.Errorf("%w: entry %d starts at %d before previous end %d", ErrCorrupt, i, off, prevEnd)
		}
		if off+n > len(buf) {
			return fmt.Errorf("%w: entry %d range %d → %d exceeds buffer length %d", ErrCorrupt, i, off, off+n, len(buf))
		}
		prevEnd = off + n
	}
	return nil
}

// Decode is the one-shot counterpart of Encode: it validates buf and returns
// a copy of entry pos.
func Decode(buf []byte, pos int) (string, error) {
	g, err := NewGetAccess(buf)
	if err != nil {
		return "", err
	}
	return g.GetString(pos)
}
