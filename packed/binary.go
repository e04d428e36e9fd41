package packed

import (
	"bytes"
)

// MarshalBinary returns the packed buffer. Zero-value pairs encode their
// two empty strings.
func (p Pair) MarshalBinary() ([]byte, error) {
	return bytes.Clone(p.access().Buffer()), nil
}

// UnmarshalBinary validates data and copies it into p.
func (p *Pair) UnmarshalBinary(data []byte) error {
	buf, n, err := normalize(data)
	if err != nil {
		return err
	}
	if err := checkArity(n, 2); err != nil {
		return err
	}
	p.buf = buf
	return nil
}

func (t Triple) MarshalBinary() ([]byte, error) {
	return bytes.Clone(t.access().Buffer()), nil
}

func (t *Triple) UnmarshalBinary(data []byte) error {
	buf, n, err := normalize(data)
	if err != nil {
		return err
	}
	if err := checkArity(n, 3); err != nil {
		return err
	}
	t.buf = buf
	return nil
}

func (a Array) MarshalBinary() ([]byte, error) {
	return bytes.Clone(a.buf), nil
}

func (a *Array) UnmarshalBinary(data []byte) error {
	b, err := ArrayFromPacked(data)
	if err != nil {
		return err
	}
	*a = b
	return nil
}

// MarshalBinary returns a compacted standalone copy of v's buffer.
func (v *Vec) MarshalBinary() ([]byte, error) {
	buf, _ := repack(v.access())
	return buf, nil
}

func (v *Vec) UnmarshalBinary(data []byte) error {
	buf, n, err := normalize(data)
	if err != nil {
		return err
	}
	v.setPacked(buf, n)
	v.gen++
	return nil
}
