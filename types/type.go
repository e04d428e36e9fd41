package types

import (
	"encoding/binary"
	"math"
)

// A directory entry is an absolute offset followed by a byte length, both
// little-endian uint32.
const (
	OffsetSize = 4
	LengthSize = 4
	EntrySize  = OffsetSize + LengthSize

	// MaxBufferSize bounds every offset and length stored in a directory.
	MaxBufferSize = math.MaxUint32
)

// StrLike is any type whose bytes can be packed and read back as a string.
type StrLike interface {
	~string | ~[]byte
}

// DirectorySize returns the bytes taken by a directory of count entries.
func DirectorySize(count int) int {
	return count * EntrySize
}

// EncodeEntry writes entry i of the directory at the front of buf.
func EncodeEntry(buf []byte, i, offset, length int) {
	p := i * EntrySize
	binary.LittleEndian.PutUint32(buf[p:], uint32(offset))
	binary.LittleEndian.PutUint32(buf[p+OffsetSize:], uint32(length))
}

// DecodeEntry splits entry i into its offset and length
func DecodeEntry(buf []byte, i int) (offset, length int) {
	p := i * EntrySize
	return int(binary.LittleEndian.Uint32(buf[p:])), int(binary.LittleEndian.Uint32(buf[p+OffsetSize:]))
}

// DecodeOffset reads only the offset of entry i.
func DecodeOffset(buf []byte, i int) int {
	return int(binary.LittleEndian.Uint32(buf[i*EntrySize:]))
}

// Fits reports whether a buffer of n bytes can be addressed by a directory.
func Fits(n int) bool {
	return n >= 0 && uint64(n) <= MaxBufferSize
}
