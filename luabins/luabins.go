// Package luabins decodes the compact tagged binary encoding the game
// uses to serialize its scripted state: a leading count of top-level
// values, then tag-prefixed values where tables nest recursively. The
// decode is atomic — either every top-level value decodes or nothing is
// returned.
package luabins

import (
	"errors"
	"fmt"

	"github.com/arkelian/stygian/binread"
	"github.com/arkelian/stygian/types"
)

// Wire tags. Nil and the booleans carry no payload; numbers are 8-byte
// little-endian doubles; strings are uint32-length-prefixed bytes; tables
// carry two int32 entry counts (array part, hash part) followed by that
// many key/value pairs.
const (
	tagNil    = '-'
	tagFalse  = '0'
	tagTrue   = '1'
	tagNumber = 'N'
	tagString = 'S'
	tagTable  = 'T'
)

// maxTopLevel caps the leading value count, per the format.
const maxTopLevel = 250

var (
	ErrBadTag    = errors.New("luabins: unrecognized tag")
	ErrBadLength = errors.New("luabins: implausible length")
)

// Load decodes a decompressed state buffer into its ordered top-level
// value sequence.
func Load(buf []byte) ([]types.Value, error) {
	r := binread.New(buf)

	count, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("luabins: reading value count: %w", err)
	}
	if count > maxTopLevel {
		return nil, fmt.Errorf("%w: %d top-level values", ErrBadLength, count)
	}

	values := make([]types.Value, 0, count)
	for i := 0; i < int(count); i++ {
		v, err := loadValue(r)
		if err != nil {
			return nil, fmt.Errorf("luabins: value %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func loadValue(r *binread.Reader) (types.Value, error) {
	tag, err := r.Uint8()
	if err != nil {
		return types.Value{}, err
	}

	switch tag {
	case tagNil:
		return types.Value{Kind: types.KindNil}, nil

	case tagFalse:
		return types.Value{Kind: types.KindBool, Bool: false}, nil

	case tagTrue:
		return types.Value{Kind: types.KindBool, Bool: true}, nil

	case tagNumber:
		n, err := r.Float64()
		if err != nil {
			return types.Value{}, err
		}
		return types.Value{Kind: types.KindNumber, Number: n}, nil

	case tagString:
		b, err := r.String()
		if err != nil {
			return types.Value{}, err
		}
		return types.Value{Kind: types.KindString, Bytes: b}, nil

	case tagTable:
		return loadTable(r)

	default:
		return types.Value{}, fmt.Errorf("%w: %#x", ErrBadTag, tag)
	}
}

func loadTable(r *binread.Reader) (types.Value, error) {
	arraySize, err := r.Int32()
	if err != nil {
		return types.Value{}, err
	}
	hashSize, err := r.Int32()
	if err != nil {
		return types.Value{}, err
	}
	if arraySize < 0 || hashSize < 0 {
		return types.Value{}, fmt.Errorf("%w: table sizes %d/%d", ErrBadLength, arraySize, hashSize)
	}

	total := int64(arraySize) + int64(hashSize)
	// Each entry needs at least two tag bytes, so the counts cannot
	// exceed the remaining input.
	if total*2 > int64(r.Remaining()) {
		return types.Value{}, fmt.Errorf("%w: %d table entries, %d bytes left", ErrBadLength, total, r.Remaining())
	}

	pairs := make([]types.Pair, 0, total)
	for i := int64(0); i < total; i++ {
		key, err := loadValue(r)
		if err != nil {
			return types.Value{}, err
		}
		val, err := loadValue(r)
		if err != nil {
			return types.Value{}, err
		}
		pairs = append(pairs, types.Pair{Key: key, Value: val})
	}
	return types.Value{Kind: types.KindTable, Table: pairs}, nil
}
