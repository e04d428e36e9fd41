package packed

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/quickwritereader/strpack/access"
)

// VecMUS serializes a Vec in MUS format: a varint count followed by each
// string length-prefixed.
var VecMUS = vecMUS{}

type vecMUS struct{}

func (vecMUS) Size(v *Vec) (size int) {
	size = varint.Int.Size(v.Len())
	for _, s := range v.access().All() {
		size += ord.String.Size(s)
	}
	return size
}

// Marshal writes v into bs, which must hold at least Size(v) bytes.
func (vecMUS) Marshal(v *Vec, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Len(), bs)
	for _, s := range v.access().All() {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func (vecMUS) Unmarshal(bs []byte) (v *Vec, n int, err error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if count < 0 {
		return nil, n, fmt.Errorf("mus: negative count %d: %w", count, access.ErrCorrupt)
	}
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	for i := 0; i < count; i++ {
		s, m, err := ord.String.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, fmt.Errorf("mus element %d: %w", i, err)
		}
		put.AddString(s)
	}
	v = &Vec{}
	v.setPacked(put.Pack(), put.Count())
	return v, n, nil
}
