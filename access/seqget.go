package access

import (
	"fmt"

	"github.com/quickwritereader/strpack/types"
)

// SeqGetAccess walks a packed buffer one entry at a time.
type SeqGetAccess struct {
	g   GetAccess
	pos int // next entry to read
}

// NewSeqGetAccess validates buf and positions the cursor on entry 0.
func NewSeqGetAccess(buf []byte) (*SeqGetAccess, error) {
	g, err := NewGetAccess(buf)
	if err != nil {
		return nil, fmt.Errorf("seq: %w", err)
	}
	return &SeqGetAccess{g: g}, nil
}

// Seq returns a cursor over an already trusted accessor.
func (g GetAccess) Seq() *SeqGetAccess {
	return &SeqGetAccess{g: g}
}

func (s *SeqGetAccess) ArgCount() int {
	return s.g.count
}

func (s *SeqGetAccess) CurrentIndex() int {
	return s.pos
}

// HasNext reports whether Next will return an entry.
func (s *SeqGetAccess) HasNext() bool {
	return s.pos < s.g.count
}

// PeekWidth returns the byte length of the next entry without advancing.
func (s *SeqGetAccess) PeekWidth() (int, error) {
	if err := CheckIndex("peek", s.pos, s.g.count); err != nil {
		return 0, err
	}
	_, n := types.DecodeEntry(s.g.buf, s.pos)
	return n, nil
}

// Next returns a view of the current entry and advances.
func (s *SeqGetAccess) Next() (string, error) {
	if err := CheckIndex("next", s.pos, s.g.count); err != nil {
		return "", err
	}
	v := s.g.view(s.pos)
	s.pos++
	return v, nil
}

// Reset rewinds the cursor to entry 0.
func (s *SeqGetAccess) Reset() {
	s.pos = 0
}
