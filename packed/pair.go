package packed

import (
	"fmt"
	"iter"
	"strings"

	"github.com/quickwritereader/strpack/access"
	"github.com/quickwritereader/strpack/types"
)

var emptyPair = access.Encode([]string{"", ""})

// Pair holds two strings in a single allocation. The zero value holds two
// empty strings.
type Pair struct {
	buf []byte
}

// NewPair packs a and b.
func NewPair[A, B types.StrLike](a A, b B) Pair {
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	access.Add(put, a)
	access.Add(put, b)
	return Pair{buf: put.Pack()}
}

// PairFromRaw splits s at byte offset split: Left is s[:split] and Right is
// s[split:].
func PairFromRaw(s string, split int) (Pair, error) {
	if split < 0 || split > len(s) {
		return Pair{}, fmt.Errorf("pair split %d of %d bytes: %w", split, len(s), access.ErrOutOfBounds)
	}
	return Pair{buf: access.Encode([]string{s[:split], s[split:]})}, nil
}

func (p Pair) access() access.GetAccess {
	if p.buf == nil {
		return access.View(emptyPair, 2)
	}
	return access.View(p.buf, 2)
}

// Len always returns 2.
func (p Pair) Len() int { return 2 }

// Get returns a view of element i, or an error wrapping ErrOutOfBounds.
func (p Pair) Get(i int) (string, error) {
	return p.access().GetStringUnsafe(i)
}

// At returns element i and panics with *access.IndexError when i is not 0 or 1.
func (p Pair) At(i int) string {
	s, err := p.Get(i)
	if err != nil {
		panic(err)
	}
	return s
}

func (p Pair) Left() string  { return mustGet(p.access(), 0) }
func (p Pair) Right() string { return mustGet(p.access(), 1) }

// Unpack returns copies of both strings.
func (p Pair) Unpack() (string, string) {
	return strings.Clone(p.Left()), strings.Clone(p.Right())
}

// Values yields Left then Right.
func (p Pair) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range p.access().All() {
			if !yield(s) {
				return
			}
		}
	}
}

func (p Pair) All() iter.Seq2[int, string] {
	return p.access().All()
}

func (p Pair) PackInto(put *access.PutAccess) {
	packAccess(p.access(), put)
}

func (p Pair) Equal(o Pair) bool {
	return equalAccess(p.access(), o.access())
}

// Compare orders pairs by Left, then Right.
func (p Pair) Compare(o Pair) int {
	return compareAccess(p.access(), o.access())
}

func (p Pair) String() string {
	return formatAccess(p.access())
}
