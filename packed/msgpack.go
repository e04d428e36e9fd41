package packed

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/strpack/access"
)

var (
	_ msgpack.CustomEncoder = Pair{}
	_ msgpack.CustomDecoder = (*Pair)(nil)
	_ msgpack.CustomEncoder = (*Vec)(nil)
	_ msgpack.CustomDecoder = (*Vec)(nil)
)

func encodeMsgpack(enc *msgpack.Encoder, g access.GetAccess) error {
	if err := enc.EncodeArrayLen(g.Count()); err != nil {
		return err
	}
	for _, s := range g.All() {
		if err := enc.EncodeString(s); err != nil {
			return err
		}
	}
	return nil
}

// decodeMsgpack reads an array of strings into a packed buffer. want < 0
// accepts any length. A msgpack nil decodes to ok false.
func decodeMsgpack(dec *msgpack.Decoder, want int) (buf []byte, n int, ok bool, err error) {
	n, err = dec.DecodeArrayLen()
	if err != nil {
		return nil, 0, false, err
	}
	if n < 0 {
		return nil, 0, false, nil
	}
	if want >= 0 {
		if err := checkArity(n, want); err != nil {
			return nil, 0, false, err
		}
	}
	put := access.GetPutAccess()
	defer access.ReleasePutAccess(put)
	for i := 0; i < n; i++ {
		s, err := dec.DecodeString()
		if err != nil {
			return nil, 0, false, fmt.Errorf("msgpack element %d: %w", i, err)
		}
		put.AddString(s)
	}
	return put.Pack(), n, true, nil
}

func (p Pair) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpack(enc, p.access())
}

func (p *Pair) DecodeMsgpack(dec *msgpack.Decoder) error {
	buf, _, ok, err := decodeMsgpack(dec, 2)
	if ok {
		p.buf = buf
	}
	return err
}

func (t Triple) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpack(enc, t.access())
}

func (t *Triple) DecodeMsgpack(dec *msgpack.Decoder) error {
	buf, _, ok, err := decodeMsgpack(dec, 3)
	if ok {
		t.buf = buf
	}
	return err
}

func (a Array) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpack(enc, a.access())
}

func (a *Array) DecodeMsgpack(dec *msgpack.Decoder) error {
	buf, n, ok, err := decodeMsgpack(dec, -1)
	if ok {
		a.buf, a.n = buf, n
	}
	return err
}

func (v *Vec) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpack(enc, v.access())
}

func (v *Vec) DecodeMsgpack(dec *msgpack.Decoder) error {
	buf, n, ok, err := decodeMsgpack(dec, -1)
	if ok {
		v.setPacked(buf, n)
		v.gen++
	}
	return err
}
