package packed

import (
	"fmt"
	"iter"
	"strings"

	"github.com/quickwritereader/strpack/access"
	"github.com/quickwritereader/strpack/types"
)

var emptyTriple = access.Encode([]string{"", "", ""})

// Triple holds three strings in a single allocation. The zero value holds
// three empty strings.
type Triple struct {
	buf []byte
}

// NewTriple packs a, b and c.
func NewTriple[A, B, C types.StrLike](a A, b B, c C) Triple {
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	access.Add(put, a)
	access.Add(put, b)
	access.Add(put, c)
	return Triple{buf: put.Pack()}
}

// TripleFromRaw splits s into s[:l], s[l:r] and s[r:].
func TripleFromRaw(s string, l, r int) (Triple, error) {
	if l < 0 || l > r || r > len(s) {
		return Triple{}, fmt.Errorf("triple split %d,%d of %d bytes: %w", l, r, len(s), access.ErrOutOfBounds)
	}
	return Triple{buf: access.Encode([]string{s[:l], s[l:r], s[r:]})}, nil
}

func (t Triple) access() access.GetAccess {
	if t.buf == nil {
		return access.View(emptyTriple, 3)
	}
	return access.View(t.buf, 3)
}

func (t Triple) Len() int { return 3 }

// Get returns a view of element i, or an error wrapping ErrOutOfBounds.
func (t Triple) Get(i int) (string, error) {
	return t.access().GetStringUnsafe(i)
}

// At returns element i and panics with *access.IndexError when i is out of
// range.
func (t Triple) At(i int) string {
	s, err := t.Get(i)
	if err != nil {
		panic(err)
	}
	return s
}

func (t Triple) Left() string   { return mustGet(t.access(), 0) }
func (t Triple) Middle() string { return mustGet(t.access(), 1) }
func (t Triple) Right() string  { return mustGet(t.access(), 2) }

// Unpack returns copies of the three strings.
func (t Triple) Unpack() (string, string, string) {
	return strings.Clone(t.Left()), strings.Clone(t.Middle()), strings.Clone(t.Right())
}

func (t Triple) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range t.access().All() {
			if !yield(s) {
				return
			}
		}
	}
}

func (t Triple) All() iter.Seq2[int, string] {
	return t.access().All()
}

func (t Triple) PackInto(put *access.PutAccess) {
	packAccess(t.access(), put)
}

func (t Triple) Equal(o Triple) bool {
	return equalAccess(t.access(), o.access())
}

func (t Triple) Compare(o Triple) int {
	return compareAccess(t.access(), o.access())
}

func (t Triple) String() string {
	return formatAccess(t.access())
}
