package access

// Packable is anything that can flatten its strings into a PutAccess, in
// order. Every container in this module implements it, so pairs, triples and
// vectors can be concatenated into a single new buffer.
type Packable interface {
	Len() int
	PackInto(p *PutAccess)
}
