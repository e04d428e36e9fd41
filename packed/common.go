package packed

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/quickwritereader/strpack/access"
)

func mustGet(g access.GetAccess, i int) string {
	s, err := g.GetStringUnsafe(i)
	if err != nil {
		panic(err)
	}
	return s
}

func equalAccess(a, b access.GetAccess) bool {
	if a.Count() != b.Count() {
		return false
	}
	for i := 0; i < a.Count(); i++ {
		if mustGet(a, i) != mustGet(b, i) {
			return false
		}
	}
	return true
}

// compareAccess orders two buffers element by element, then by count.
func compareAccess(a, b access.GetAccess) int {
	for i := 0; i < min(a.Count(), b.Count()); i++ {
		if c := strings.Compare(mustGet(a, i), mustGet(b, i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Count(), b.Count())
}

// formatAccess renders ["a", "b"].
func formatAccess(g access.GetAccess) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range g.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(s))
	}
	sb.WriteByte(']')
	return sb.String()
}

func packAccess(g access.GetAccess, p *access.PutAccess) {
	for _, s := range g.All() {
		p.AddString(s)
	}
}

func cloneAccess(g access.GetAccess) []string {
	out := make([]string, 0, g.Count())
	for _, s := range g.All() {
		out = append(out, strings.Clone(s))
	}
	return out
}

// repack copies the live entries of g into a fresh, gap-free buffer.
func repack(g access.GetAccess) ([]byte, int) {
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	packAccess(g, put)
	return put.Pack(), put.Count()
}

// normalize validates an external packed buffer and returns an owned,
// gap-free copy of it.
func normalize(data []byte) ([]byte, int, error) {
	g, err := access.NewGetAccess(data)
	if err != nil {
		return nil, 0, err
	}
	buf, n := repack(g)
	return buf, n, nil
}

func checkArity(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, got, want)
	}
	return nil
}
