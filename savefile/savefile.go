// Package savefile parses the game's binary save container and expands
// its compressed state blob. A save is either parsed completely or the
// parse fails with a named error; there is no partially-valid record.
package savefile

import (
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/arkelian/stygian/binread"
)

// Signature is the four-byte marker every supported save starts with.
const Signature = "SGB1"

// Version16 is the only container version this parser understands.
const Version16 = 16

// UncompressedSizeV16 bounds the decompressed state blob for version 16
// saves. It sizes the decompression buffer; it does not authenticate the
// blob, and decompression can still fail independently.
const UncompressedSizeV16 = 9388032

var (
	ErrBadSignature       = errors.New("savefile: bad signature")
	ErrUnsupportedVersion = errors.New("savefile: unsupported version")
	ErrEmptyState         = errors.New("savefile: empty state blob")
)

// SaveData is the validated in-memory form of a version 16 container.
// LuaState holds the still-compressed state blob.
type SaveData struct {
	Version            uint32
	Checksum           uint32 // carried, not verified
	Timestamp          uint64
	Location           string
	Runs               uint32
	ActiveMetaPoints   uint32
	ActiveShrinePoints uint32
	GodModeEnabled     bool
	HellModeEnabled    bool
	LuaKeys            []string
	CurrentMapName     string
	StartNextMap       string
	LuaState           []byte
}

// Parse validates and extracts a save container from its raw file bytes.
func Parse(data []byte) (*SaveData, error) {
	r := binread.New(data)

	sig, err := r.Bytes(len(Signature))
	if err != nil {
		return nil, fmt.Errorf("savefile: reading signature: %w", err)
	}
	if string(sig) != Signature {
		return nil, fmt.Errorf("%w: %q", ErrBadSignature, sig)
	}

	s := &SaveData{}
	if s.Checksum, err = r.Uint32(); err != nil {
		return nil, fmt.Errorf("savefile: reading checksum: %w", err)
	}
	if s.Version, err = r.Uint32(); err != nil {
		return nil, fmt.Errorf("savefile: reading version: %w", err)
	}
	if s.Version != Version16 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}

	if s.Timestamp, err = r.Uint64(); err != nil {
		return nil, fmt.Errorf("savefile: reading timestamp: %w", err)
	}
	if s.Location, err = readString(r, "location"); err != nil {
		return nil, err
	}
	if s.Runs, err = r.Uint32(); err != nil {
		return nil, fmt.Errorf("savefile: reading runs: %w", err)
	}
	if s.ActiveMetaPoints, err = r.Uint32(); err != nil {
		return nil, fmt.Errorf("savefile: reading active meta points: %w", err)
	}
	if s.ActiveShrinePoints, err = r.Uint32(); err != nil {
		return nil, fmt.Errorf("savefile: reading active shrine points: %w", err)
	}
	if s.GodModeEnabled, err = readBool(r, "god mode"); err != nil {
		return nil, err
	}
	if s.HellModeEnabled, err = readBool(r, "hell mode"); err != nil {
		return nil, err
	}

	nkeys, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("savefile: reading lua key count: %w", err)
	}
	for i := uint32(0); i < nkeys; i++ {
		key, err := readString(r, "lua key")
		if err != nil {
			return nil, err
		}
		s.LuaKeys = append(s.LuaKeys, key)
	}

	if s.CurrentMapName, err = readString(r, "current map name"); err != nil {
		return nil, err
	}
	if s.StartNextMap, err = readString(r, "start next map"); err != nil {
		return nil, err
	}

	if s.LuaState, err = r.String(); err != nil {
		return nil, fmt.Errorf("savefile: reading lua state: %w", err)
	}
	if len(s.LuaState) == 0 {
		return nil, ErrEmptyState
	}

	return s, nil
}

// Decompress expands the LZ4 state blob into the raw value-stream buffer,
// using the per-version decompressed-size bound.
func (s *SaveData) Decompress() ([]byte, error) {
	dst := make([]byte, UncompressedSizeV16)
	n, err := lz4.UncompressBlock(s.LuaState, dst)
	if err != nil {
		return nil, fmt.Errorf("savefile: decompressing state blob: %w", err)
	}
	return dst[:n], nil
}

func readString(r *binread.Reader, field string) (string, error) {
	b, err := r.String()
	if err != nil {
		return "", fmt.Errorf("savefile: reading %s: %w", field, err)
	}
	return string(b), nil
}

func readBool(r *binread.Reader, field string) (bool, error) {
	b, err := r.Uint8()
	if err != nil {
		return false, fmt.Errorf("savefile: reading %s: %w", field, err)
	}
	return b != 0, nil
}
