package binread

import (
	"bytes"
	"errors"
	"testing"
)

func TestReader_FixedWidths(t *testing.T) {
	r := New([]byte{
		0x2A,       // uint8
		0xFF,       // int8 = -1
		0x34, 0x12, // uint16
		0xFE, 0xFF, // int16 = -2
		0x78, 0x56, 0x34, 0x12, // uint32
		0xFF, 0xFF, 0xFF, 0x7F, // int32 = max
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, // uint64
	})

	if v, err := r.Uint8(); err != nil || v != 0x2A {
		t.Fatalf("Uint8 = %v, %v", v, err)
	}
	if v, err := r.Int8(); err != nil || v != -1 {
		t.Fatalf("Int8 = %v, %v", v, err)
	}
	if v, err := r.Uint16(); err != nil || v != 0x1234 {
		t.Fatalf("Uint16 = %#x, %v", v, err)
	}
	if v, err := r.Int16(); err != nil || v != -2 {
		t.Fatalf("Int16 = %v, %v", v, err)
	}
	if v, err := r.Uint32(); err != nil || v != 0x12345678 {
		t.Fatalf("Uint32 = %#x, %v", v, err)
	}
	if v, err := r.Int32(); err != nil || v != 0x7FFFFFFF {
		t.Fatalf("Int32 = %#x, %v", v, err)
	}
	if v, err := r.Uint64(); err != nil || v != 0x0123456789ABCDEF {
		t.Fatalf("Uint64 = %#x, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected empty reader, %d bytes left", r.Remaining())
	}
}

func TestReader_Float64(t *testing.T) {
	// 7.0 as a little-endian IEEE 754 double.
	r := New([]byte{0, 0, 0, 0, 0, 0, 0x1C, 0x40})
	v, err := r.Float64()
	if err != nil || v != 7.0 {
		t.Fatalf("Float64 = %v, %v", v, err)
	}
}

func TestReader_String(t *testing.T) {
	r := New([]byte{0x05, 0, 0, 0, 'h', 'e', 'l', 'l', 'o', 0xAA})
	s, err := r.String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !bytes.Equal(s, []byte("hello")) {
		t.Fatalf("String = %q", s)
	}
	if r.Remaining() != 1 {
		t.Fatalf("expected 1 byte left, got %d", r.Remaining())
	}
}

func TestReader_StringOpaqueBytes(t *testing.T) {
	// Non-UTF8 payloads pass through verbatim.
	r := New([]byte{0x02, 0, 0, 0, 0xFF, 0xFE})
	s, err := r.String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !bytes.Equal(s, []byte{0xFF, 0xFE}) {
		t.Fatalf("String = %v", s)
	}
}

func TestReader_ShortBuffer(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		read func(*Reader) error
	}{
		{"uint8 empty", nil, func(r *Reader) error { _, err := r.Uint8(); return err }},
		{"uint32 short", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.Uint32(); return err }},
		{"uint64 short", []byte{1, 2, 3, 4, 5, 6, 7}, func(r *Reader) error { _, err := r.Uint64(); return err }},
		{"string length short", []byte{1, 0}, func(r *Reader) error { _, err := r.String(); return err }},
		{"string body short", []byte{5, 0, 0, 0, 'h', 'i'}, func(r *Reader) error { _, err := r.String(); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.buf)
			before := r.Remaining()
			err := tc.read(r)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
			}
			// A failed fixed-width read must not move the cursor.
			if tc.name != "string body short" && r.Remaining() != before {
				t.Fatalf("cursor moved on failed read: %d -> %d", before, r.Remaining())
			}
		})
	}
}

func TestReader_BytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3}
	r := New(buf)
	b, err := r.Bytes(3)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	buf[0] = 9
	if b[0] != 1 {
		t.Fatal("Bytes should return a copy, not alias the buffer")
	}
}
