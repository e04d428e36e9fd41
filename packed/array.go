package packed

import (
	"iter"

	"github.com/quickwritereader/strpack/access"
	"github.com/quickwritereader/strpack/types"
)

// Array holds a number of strings fixed at construction. The zero value is
// an empty array.
type Array struct {
	buf []byte
	n   int
}

// NewArray packs values; the array's length is len(values) for its lifetime.
func NewArray[S types.StrLike](values ...S) Array {
	return Array{buf: access.Encode(values), n: len(values)}
}

// ArrayFromPacked validates buf and copies it into a new Array.
func ArrayFromPacked(buf []byte) (Array, error) {
	b, n, err := normalize(buf)
	if err != nil {
		return Array{}, err
	}
	return Array{buf: b, n: n}, nil
}

func (a Array) access() access.GetAccess {
	return access.View(a.buf, a.n)
}

func (a Array) Len() int { return a.n }

// Get returns a view of element i, or an error wrapping ErrOutOfBounds.
func (a Array) Get(i int) (string, error) {
	return a.access().GetStringUnsafe(i)
}

// At returns element i and panics with *access.IndexError when i is out of
// range.
func (a Array) At(i int) string {
	s, err := a.Get(i)
	if err != nil {
		panic(err)
	}
	return s
}

// Span returns elements [lo, hi) concatenated.
func (a Array) Span(lo, hi int) (string, error) {
	return a.access().Span(lo, hi)
}

func (a Array) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range a.access().All() {
			if !yield(s) {
				return
			}
		}
	}
}

func (a Array) All() iter.Seq2[int, string] {
	return a.access().All()
}

// Strings returns a copy of every element.
func (a Array) Strings() []string {
	return cloneAccess(a.access())
}

func (a Array) PackInto(put *access.PutAccess) {
	packAccess(a.access(), put)
}

func (a Array) Equal(o Array) bool {
	return equalAccess(a.access(), o.access())
}

func (a Array) Compare(o Array) int {
	return compareAccess(a.access(), o.access())
}

func (a Array) String() string {
	return formatAccess(a.access())
}
