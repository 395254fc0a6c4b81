// Package binread provides a length-checked little-endian cursor over a
// byte buffer. It is the primitive every binary decoder in this module is
// built on: each read consumes exactly the bytes for the requested width,
// advances the cursor, and fails cleanly when the buffer runs out.
package binread

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrUnexpectedEOF is returned when a read needs more bytes than remain.
// The cursor is left where it was; no partial read ever happens.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Reader is a cursor over an immutable byte buffer. The zero value is an
// empty reader; use New for anything else.
type Reader struct {
	buf []byte
	off int
}

// New returns a Reader positioned at the start of buf. The buffer is not
// copied; callers must not mutate it while reading.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// take consumes exactly n bytes, or fails without moving the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("need %d bytes, have %d: %w", n, r.Remaining(), ErrUnexpectedEOF)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// Float64 reads a little-endian IEEE 754 double.
func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Bytes consumes exactly n raw bytes. The returned slice is a copy, so it
// stays valid independent of the underlying buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// String reads a uint32 length prefix followed by that many raw bytes.
// The bytes are opaque; no character-encoding validation happens here.
func (r *Reader) String() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return r.Bytes(int(n))
}
