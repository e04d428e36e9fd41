package packed

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFunc orders v by cmp. Equal strings keep their relative order. The
// sorted strings are written to a fresh allocation, so existing views are
// unaffected.
func (v *Vec) SortFunc(cmp func(a, b string) int) {
	if v.n < 2 {
		return
	}
	g := v.access()
	order := make([]int, v.n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp(mustGet(g, a), mustGet(g, b))
	})
	v.relayout(v.slots, v.dataCap(), slices.Values(order))
	v.gen++
}

// Sort orders v bytewise.
func (v *Vec) Sort() {
	v.SortFunc(strings.Compare)
}

// SortCollated orders v by the collation rules of tag.
func (v *Vec) SortCollated(tag language.Tag, opts ...collate.Option) {
	c := collate.New(tag, opts...)
	v.SortFunc(c.CompareString)
}
