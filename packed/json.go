package packed

import (
	"github.com/goccy/go-json"

	"github.com/quickwritereader/strpack/access"
)

func marshalJSON(g access.GetAccess) ([]byte, error) {
	values := make([]string, 0, g.Count())
	for _, s := range g.All() {
		values = append(values, s)
	}
	return json.Marshal(values)
}

// unmarshalJSON decodes a JSON array of strings. A JSON null yields nil
// with ok false.
func unmarshalJSON(data []byte) (values []string, ok bool, err error) {
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, false, err
	}
	return values, values != nil, nil
}

func (p Pair) MarshalJSON() ([]byte, error) {
	return marshalJSON(p.access())
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	values, ok, err := unmarshalJSON(data)
	if err != nil || !ok {
		return err
	}
	if err := checkArity(len(values), 2); err != nil {
		return err
	}
	p.buf = access.Encode(values)
	return nil
}

func (t Triple) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.access())
}

func (t *Triple) UnmarshalJSON(data []byte) error {
	values, ok, err := unmarshalJSON(data)
	if err != nil || !ok {
		return err
	}
	if err := checkArity(len(values), 3); err != nil {
		return err
	}
	t.buf = access.Encode(values)
	return nil
}

func (a Array) MarshalJSON() ([]byte, error) {
	return marshalJSON(a.access())
}

// UnmarshalJSON replaces a with the decoded strings. The array takes the
// length of the input.
func (a *Array) UnmarshalJSON(data []byte) error {
	values, ok, err := unmarshalJSON(data)
	if err != nil || !ok {
		return err
	}
	*a = NewArray(values...)
	return nil
}

func (v *Vec) MarshalJSON() ([]byte, error) {
	return marshalJSON(v.access())
}

// UnmarshalJSON replaces the contents of v with the decoded strings.
func (v *Vec) UnmarshalJSON(data []byte) error {
	values, ok, err := unmarshalJSON(data)
	if err != nil || !ok {
		return err
	}
	v.setPacked(access.Encode(values), len(values))
	v.gen++
	return nil
}
