package access

import (
	"github.com/quickwritereader/strpack/types"
)

// Encode packs values into one exactly sized buffer: a directory of
// (offset, length) entries followed by the concatenated bytes.
//
// Lengths and offsets are computed in a single left-to-right pass before the
// only allocation. Encoding zero values returns nil.
func Encode[S types.StrLike](values []S) []byte {
	if len(values) == 0 {
		return nil
	}
	base := types.DirectorySize(len(values))
	total := base
	for _, v := range values {
		total += len(v)
	}
	if !types.Fits(total) {
		panic(ErrTooLarge)
	}

	buf := make([]byte, total)
	pos := base
	for i, v := range values {
		types.EncodeEntry(buf, i, pos, len(v))
		pos += copy(buf[pos:], v)
	}
	return buf
}

// EncodedSize returns the length of Encode(values) without building it.
func EncodedSize[S types.StrLike](values []S) int {
	n := types.DirectorySize(len(values))
	for _, v := range values {
		n += len(v)
	}
	return n
}
