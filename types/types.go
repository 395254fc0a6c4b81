// Package types defines the shared data structures for the Stygian pipeline.
// This package contains only type definitions — no logic, no methods.
package types

// Kind discriminates the cases of a decoded Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
)

// Value is one decoded entry from the save's value stream. Exactly one of
// the payload fields is meaningful, selected by Kind. String payloads are
// opaque bytes with no encoding guarantee; tables preserve wire order and
// may carry duplicate keys.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Bytes  []byte
	Table  []Pair
}

// Pair is one key/value entry of a decoded table. Both sides are
// arbitrary recursively-decoded values.
type Pair struct {
	Key   Value
	Value Value
}
