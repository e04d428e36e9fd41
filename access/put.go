package access

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/quickwritereader/strpack/types"
)

var putAccessPool = sync.Pool{
	New: func() interface{} {
		return &PutAccess{
			buf:     make([]byte, 0, 1024),
			entries: make([]byte, 0, 256),
		}
	},
}

// GetPutAccess returns an empty builder from the pool.
func GetPutAccess() *PutAccess {
	p := putAccessPool.Get().(*PutAccess)
	p.Reset()
	return p
}

// ReleasePutAccess hands p back to the pool. Buffers returned by Pack are
// independent of p and stay valid.
func ReleasePutAccess(p *PutAccess) {
	putAccessPool.Put(p)
}

// PutAccess accumulates strings and lays them out as a packed buffer.
// Entries are kept relative to the payload until Pack knows the final
// directory size.
type PutAccess struct {
	buf     []byte // payload
	entries []byte // directory entries, offsets relative to payload start
	count   int
}

// NewPutAccess initializes a new packing builder
func NewPutAccess() *PutAccess {
	return &PutAccess{
		buf:     make([]byte, 0, 256),
		entries: make([]byte, 0, 64),
	}
}

// Reset drops every added string and keeps the scratch capacity.
func (p *PutAccess) Reset() {
	p.buf = p.buf[:0]
	p.entries = p.entries[:0]
	p.count = 0
}

func (p *PutAccess) addEntry(length int) {
	p.entries = binary.LittleEndian.AppendUint32(p.entries, uint32(len(p.buf)-length))
	p.entries = binary.LittleEndian.AppendUint32(p.entries, uint32(length))
	p.count++
}

// AddBytes packs a copy of b as the next string.
func (p *PutAccess) AddBytes(b []byte) {
	p.buf = append(p.buf, b...)
	p.addEntry(len(b))
}

// AddString packs s using a zero-copy view of its bytes.
func (p *PutAccess) AddString(s string) {
	p.AddBytes(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Add packs v, string or byte slice, as the next string of p.
func Add[S types.StrLike](p *PutAccess, v S) {
	p.buf = append(p.buf, v...)
	p.addEntry(len(v))
}

// AddStrings packs every element of values in order.
func (p *PutAccess) AddStrings(values ...string) {
	for _, s := range values {
		p.AddString(s)
	}
}

// AddPackable flattens v's strings into p.
func (p *PutAccess) AddPackable(v Packable) {
	v.PackInto(p)
}

// Count returns the number of strings added so far.
func (p *PutAccess) Count() int {
	return p.count
}

// PackSize returns the exact length Pack will produce.
func (p *PutAccess) PackSize() int {
	return len(p.entries) + len(p.buf)
}

// Pack finalizes the buffer: directory + payload, in one exact allocation.
// An empty builder packs to nil.
func (p *PutAccess) Pack() []byte {
	if p.count == 0 {
		return nil
	}
	return p.PackAppend(make([]byte, 0, p.PackSize()))
}

// PackAppend appends the packed form to dst. Offsets are absolute relative
// to the start of the appended block, so the result is readable by
// NewGetAccess(out[len(dst):]).
func (p *PutAccess) PackAppend(dst []byte) []byte {
	size := p.PackSize()
	if !types.Fits(size) {
		panic(ErrTooLarge)
	}
	start := len(dst)
	base := len(p.entries)
	dst = append(dst, p.entries...)
	dir := dst[start:]
	// Rebase every entry onto the payload start.
	for i := 0; i < p.count; i++ {
		off, n := types.DecodeEntry(dir, i)
		types.EncodeEntry(dir, i, off+base, n)
	}
	return append(dst, p.buf...)
}
