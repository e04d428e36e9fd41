package packed

import (
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/quickwritereader/strpack/access"
	"github.com/quickwritereader/strpack/types"
	"github.com/quickwritereader/strpack/utils"
)

// Vec is a growable list of strings stored in one allocation. The
// directory occupies the first slots entries of buf and string bytes follow
// it. len(buf) marks the end of written data; bytes past it are spare
// capacity.
//
// Pop, Truncate and Clear only shrink the live count. The bytes they
// release stay in place until the next reallocation or Compact. Remove
// compacts immediately into a fresh allocation.
//
// The zero value is an empty Vec ready to use. A Vec must not be copied
// after first use; use Clone.
type Vec struct {
	buf   []byte
	n     int    // live entries
	slots int    // directory capacity in entries
	size  int    // live string bytes
	gen   uint64 // bumped by every mutation that changes contents
}

// NewVec returns an empty Vec that has not allocated.
func NewVec() *Vec {
	return &Vec{}
}

// WithCapacity returns an empty Vec able to hold slots strings totalling
// bytes bytes before reallocating.
func WithCapacity(slots, bytes int) *Vec {
	v := &Vec{}
	if slots <= 0 && bytes <= 0 {
		return v
	}
	slots, bytes = max(slots, 0), max(bytes, 0)
	base := types.DirectorySize(slots)
	if !types.Fits(base + bytes) {
		panic(access.ErrTooLarge)
	}
	v.buf = make([]byte, base, base+bytes)
	v.slots = slots
	return v
}

// NewVecFrom packs values with a single allocation.
func NewVecFrom[S types.StrLike](values []S) *Vec {
	v := &Vec{}
	v.setPacked(access.Encode(values), len(values))
	return v
}

// Concat flattens parts, in order, into a new Vec.
func Concat(parts ...access.Packable) *Vec {
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	for _, p := range parts {
		put.AddPackable(p)
	}
	v := &Vec{}
	v.setPacked(put.Pack(), put.Count())
	return v
}

// setPacked adopts a gap-free standalone buffer holding n entries.
func (v *Vec) setPacked(buf []byte, n int) {
	v.buf = buf
	v.n = n
	v.slots = n
	v.size = len(buf) - types.DirectorySize(n)
}

func (v *Vec) base() int {
	return types.DirectorySize(v.slots)
}

func (v *Vec) dataCap() int {
	return cap(v.buf) - v.base()
}

func (v *Vec) dataLen() int {
	if v.buf == nil {
		return 0
	}
	return len(v.buf) - v.base()
}

func (v *Vec) access() access.GetAccess {
	return access.View(v.buf, v.n)
}

// reserveFor makes room for addSlots more entries and addBytes more string
// bytes past the current write position.
func (v *Vec) reserveFor(addSlots, addBytes int) {
	if v.n+addSlots <= v.slots && len(v.buf)+addBytes <= cap(v.buf) {
		return
	}
	slots := utils.NextCapacity(v.slots, v.n+addSlots, utils.MinSlots)
	dataCap := utils.NextCapacity(v.dataCap(), utils.WithHeadroom(v.size+addBytes), utils.MinBytes)
	v.rebuild(slots, dataCap, -1)
}

// rebuild copies every live entry except skip into a fresh allocation with
// the given capacities.
func (v *Vec) rebuild(slots, dataCap, skip int) {
	v.relayout(slots, dataCap, func(yield func(int) bool) {
		for i := 0; i < v.n; i++ {
			if i != skip && !yield(i) {
				return
			}
		}
	})
}

// relayout writes the entries named by order into a fresh allocation. Dead
// bytes are dropped and offsets recomputed. The old allocation is left
// untouched.
func (v *Vec) relayout(slots, dataCap int, order iter.Seq[int]) {
	base := types.DirectorySize(slots)
	if !types.Fits(base + dataCap) {
		panic(access.ErrTooLarge)
	}
	dead := v.dataLen() - v.size
	if base+dataCap == 0 {
		v.buf, v.n, v.slots, v.size = nil, 0, 0, 0
		return
	}

	buf := make([]byte, base, base+dataCap)
	n, size := 0, 0
	for i := range order {
		off, l := types.DecodeEntry(v.buf, i)
		types.EncodeEntry(buf, n, len(buf), l)
		buf = append(buf, v.buf[off:off+l]...)
		n++
		size += l
	}
	debugEvent("vec realloc",
		zap.Int("slots", slots),
		zap.Int("bytes", dataCap),
		zap.Int("len", n),
		zap.Int("reclaimed", dead),
	)
	v.buf, v.n, v.slots, v.size = buf, n, slots, size
}

// pushRaw appends s assuming reserveFor already made room.
func pushRaw[S types.StrLike](v *Vec, s S) {
	off := len(v.buf)
	v.buf = append(v.buf, s...)
	types.EncodeEntry(v.buf, v.n, off, len(s))
	v.n++
	v.size += len(s)
}

func (v *Vec) Push(s string) {
	v.reserveFor(1, len(s))
	pushRaw(v, s)
	v.gen++
}

// PushBytes appends a copy of b.
func (v *Vec) PushBytes(b []byte) {
	v.reserveFor(1, len(b))
	pushRaw(v, b)
	v.gen++
}

// Extend appends every value, reallocating at most once.
func Extend[S types.StrLike](v *Vec, values ...S) {
	if len(values) == 0 {
		return
	}
	total := 0
	for _, s := range values {
		total += len(s)
	}
	v.reserveFor(len(values), total)
	for _, s := range values {
		pushRaw(v, s)
	}
	v.gen++
}

// Pop removes the last string and returns a copy of it. It reports false
// when v is empty.
func (v *Vec) Pop() (string, bool) {
	if v.n == 0 {
		return "", false
	}
	s := strings.Clone(mustGet(v.access(), v.n-1))
	v.n--
	v.size -= len(s)
	v.gen++
	return s, true
}

// Remove deletes entry i, shifting later entries down, and returns a copy
// of the removed string.
func (v *Vec) Remove(i int) (string, error) {
	if err := access.CheckIndex("remove", i, v.n); err != nil {
		return "", err
	}
	if i == v.n-1 {
		s, _ := v.Pop()
		return s, nil
	}
	s := strings.Clone(mustGet(v.access(), i))
	v.rebuild(v.slots, v.dataCap(), i)
	v.gen++
	return s, nil
}

// Truncate keeps the first k strings. Negative k clears v; k >= Len is a
// no-op.
func (v *Vec) Truncate(k int) {
	k = max(k, 0)
	if k >= v.n {
		return
	}
	for i := k; i < v.n; i++ {
		_, l := types.DecodeEntry(v.buf, i)
		v.size -= l
	}
	v.n = k
	v.gen++
}

// Clear removes every string and keeps the allocation.
func (v *Vec) Clear() {
	if v.n == 0 {
		return
	}
	v.n = 0
	v.size = 0
	v.gen++
}

// Append moves the strings of other to the end of v and clears other.
// Appending v to itself duplicates its contents.
func (v *Vec) Append(other *Vec) {
	if other == nil || other.n == 0 {
		return
	}
	src := other.access()
	v.reserveFor(src.Count(), other.size)
	for _, s := range src.All() {
		pushRaw(v, s)
	}
	v.gen++
	if other != v {
		other.Clear()
	}
}

// SplitOff moves strings [at, Len) into a new Vec and keeps [0, at) in v.
func (v *Vec) SplitOff(at int) (*Vec, error) {
	if at < 0 || at > v.n {
		return nil, &access.IndexError{Op: "split", Index: at, Len: v.n}
	}
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	for i := at; i < v.n; i++ {
		put.AddString(mustGet(v.access(), i))
	}
	tail := &Vec{}
	tail.setPacked(put.Pack(), put.Count())
	v.Truncate(at)
	return tail, nil
}

// Reserve ensures room for at least slots more strings totalling bytes
// more bytes.
func (v *Vec) Reserve(slots, bytes int) {
	v.reserveFor(max(slots, 0), max(bytes, 0))
}

// Compact reclaims bytes released by Pop, Truncate and Clear. Capacities
// are unchanged.
func (v *Vec) Compact() {
	if v.dataLen() == v.size {
		return
	}
	v.rebuild(v.slots, v.dataCap(), -1)
}

// ShrinkToFit reallocates v to exactly its live contents.
func (v *Vec) ShrinkToFit() {
	if v.slots == v.n && v.dataCap() == v.size {
		return
	}
	v.rebuild(v.n, v.size, -1)
}

func (v *Vec) Len() int { return v.n }

func (v *Vec) IsEmpty() bool { return v.n == 0 }

// SlotCapacity returns how many strings v holds before the directory must
// grow.
func (v *Vec) SlotCapacity() int { return v.slots }

// ByteCapacity returns the size of the string region, written or not.
func (v *Vec) ByteCapacity() int { return v.dataCap() }

// ByteLen returns the total length of the live strings.
func (v *Vec) ByteLen() int { return v.size }

// Get returns a view of entry i, or an error wrapping ErrOutOfBounds.
func (v *Vec) Get(i int) (string, error) {
	return v.access().GetStringUnsafe(i)
}

// At returns entry i and panics with *access.IndexError when i is out of
// range.
func (v *Vec) At(i int) string {
	s, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return s
}

// Span returns entries [lo, hi) concatenated.
func (v *Vec) Span(lo, hi int) (string, error) {
	return v.access().Span(lo, hi)
}

// All yields (index, view) pairs. Mutating v from the loop body panics with
// ErrConcurrentModification.
func (v *Vec) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		gen := v.gen
		for i := 0; i < v.n; i++ {
			if !yield(i, mustGet(v.access(), i)) {
				return
			}
			if v.gen != gen {
				panic(ErrConcurrentModification)
			}
		}
	}
}

func (v *Vec) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range v.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// Strings returns a copy of every entry.
func (v *Vec) Strings() []string {
	return cloneAccess(v.access())
}

// Clone returns a compacted deep copy of v.
func (v *Vec) Clone() *Vec {
	c := &Vec{}
	c.setPacked(repack(v.access()))
	return c
}

func (v *Vec) PackInto(put *access.PutAccess) {
	packAccess(v.access(), put)
}

func (v *Vec) Equal(o *Vec) bool {
	return equalAccess(v.access(), o.access())
}

// Compare orders vecs lexicographically, element by element.
func (v *Vec) Compare(o *Vec) int {
	return compareAccess(v.access(), o.access())
}

func (v *Vec) String() string {
	return formatAccess(v.access())
}
