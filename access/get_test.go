package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccess_ExplicitByteMatch(t *testing.T) {
	buf := []byte{
		0x18, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, // entry[0]: offset = 24, len = 4
		0x1C, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, // entry[1]: offset = 28, len = 5
		0x21, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // entry[2]: offset = 33, len = 0

		'r', 'o', 'l', 'e',
		'a', 'd', 'm', 'i', 'n',
	}

	get, err := NewGetAccess(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, get.Count())

	v0, err := get.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "role", v0)

	v1, err := get.GetStringUnsafe(1)
	require.NoError(t, err)
	assert.Equal(t, "admin", v1)

	v2, err := get.GetString(2)
	require.NoError(t, err)
	assert.Equal(t, "", v2)

	start, end, err := get.Range(1)
	require.NoError(t, err)
	assert.Equal(t, 28, start)
	assert.Equal(t, 33, end)

	_, err = get.GetString(3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = get.GetStringUnsafe(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGetAccess_AppendString(t *testing.T) {
	get, err := NewGetAccess(Encode([]string{"foo", "bar"}))
	require.NoError(t, err)

	out, err := get.AppendString([]byte("x="), 1)
	require.NoError(t, err)
	assert.Equal(t, "x=bar", string(out))

	out, err = get.AppendString(out, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, "x=bar", string(out))
}

func TestGetAccess_Span(t *testing.T) {
	get, err := NewGetAccess(Encode([]string{"English", "Français", "中文"}))
	require.NoError(t, err)

	cases := []struct {
		lo, hi int
		want   string
	}{
		{0, 0, ""},
		{0, 1, "English"},
		{0, 2, "EnglishFrançais"},
		{0, 3, "EnglishFrançais中文"},
		{1, 1, ""},
		{1, 3, "Français中文"},
		{2, 3, "中文"},
		{3, 3, ""},
	}
	for _, tc := range cases {
		got, err := get.Span(tc.lo, tc.hi)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Span(%d, %d)", tc.lo, tc.hi)
	}

	_, err = get.Span(4, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = get.Span(0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = get.Span(2, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGetAccess_SpanAcrossGap(t *testing.T) {
	buf := []byte{
		0x10, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, // offset = 16, len = 2
		0x13, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, // offset = 19, len = 2 (one dead byte before)
		'a', 'b', '#', 'c', 'd',
	}
	get, err := NewGetAccess(buf)
	require.NoError(t, err)

	s, err := get.Span(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "abcd", s)
}

func TestGetAccess_All(t *testing.T) {
	values := []string{"a", "", "c"}
	get, err := NewGetAccess(Encode(values))
	require.NoError(t, err)

	var got []string
	for i, v := range get.All() {
		assert.Equal(t, len(got), i)
		got = append(got, v)
	}
	assert.Equal(t, values, got)

	// early break
	n := 0
	for range get.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestView_RespectsCount(t *testing.T) {
	buf := Encode([]string{"a", "b", "c"})
	v := View(buf, 2)
	assert.Equal(t, 2, v.Count())

	_, err := v.GetString(2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestValidate(t *testing.T) {
	good := Encode([]string{"ab", "c"})
	require.NoError(t, Validate(good))
	require.NoError(t, Validate(nil))

	cases := map[string][]byte{
		"short":            {0x08, 0x00, 0x00},
		"zero base":        {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		"unaligned base":   {0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 'x'},
		"base past end":    {0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		"range past end":   {0x08, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 'a', 'b'},
		"overlapping":      append(append([]byte{}, good[:8]...), 0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 'a', 'b', 'c'),
		"truncated entry1": good[:len(good)-1],
	}
	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(buf)
			assert.ErrorIs(t, err, ErrCorrupt)

			_, err = NewGetAccess(buf)
			assert.Error(t, err)
		})
	}
}
