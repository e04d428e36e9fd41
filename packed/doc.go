// Package packed provides string containers that keep all of their strings
// in one heap allocation.
//
// Pair, Triple and Array hold a fixed number of strings and never change
// after construction. Vec holds a variable number and supports append,
// removal and indexed access. Every container shares the layout produced by
// the access package: a directory of (offset, length) entries followed by
// the concatenated bytes.
//
// Strings returned by Get, At and the iterators are views into the packed
// buffer. Packed bytes are never rewritten in place, so a view stays valid
// and unchanged after the container is mutated. Copies (Unpack, Strings,
// Pop, Remove) do not retain the buffer.
//
// Containers are not safe for concurrent mutation. Concurrent reads of a
// container that is not being mutated are safe.
package packed
