package savefile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkelian/stygian/binread"
)

// saveBuilder assembles synthetic containers for tests.
type saveBuilder struct {
	buf bytes.Buffer
}

func (b *saveBuilder) raw(p []byte)  { b.buf.Write(p) }
func (b *saveBuilder) u8(v uint8)    { b.buf.WriteByte(v) }
func (b *saveBuilder) u32(v uint32)  { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *saveBuilder) u64(v uint64)  { binary.Write(&b.buf, binary.LittleEndian, v) }
func (b *saveBuilder) str(s string)  { b.u32(uint32(len(s))); b.buf.WriteString(s) }
func (b *saveBuilder) blob(p []byte) { b.u32(uint32(len(p))); b.buf.Write(p) }
func (b *saveBuilder) bytes() []byte { return b.buf.Bytes() }

func buildSave(version uint32, state []byte) []byte {
	b := &saveBuilder{}
	b.raw([]byte(Signature))
	b.u32(0xDEADBEEF) // checksum, not verified
	b.u32(version)
	b.u64(1700000000)
	b.str("_PlayerStart")
	b.u32(23) // runs
	b.u32(450)
	b.u32(12)
	b.u8(0)  // god mode
	b.u8(1)  // hell mode
	b.u32(2) // lua keys
	b.str("GameState")
	b.str("CurrentRun")
	b.str("DeathArea")
	b.str("RoomOpening01")
	b.blob(state)
	return b.bytes()
}

func compressBlock(t *testing.T, raw []byte) []byte {
	t.Helper()
	dst := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, dst, nil)
	require.NoError(t, err)
	require.NotZero(t, n, "test payload must be compressible")
	return dst[:n]
}

func TestParse_AllFields(t *testing.T) {
	data := buildSave(Version16, []byte{1, 2, 3, 4})

	s, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, uint32(Version16), s.Version)
	assert.Equal(t, uint32(0xDEADBEEF), s.Checksum)
	assert.Equal(t, uint64(1700000000), s.Timestamp)
	assert.Equal(t, "_PlayerStart", s.Location)
	assert.Equal(t, uint32(23), s.Runs)
	assert.Equal(t, uint32(450), s.ActiveMetaPoints)
	assert.Equal(t, uint32(12), s.ActiveShrinePoints)
	assert.False(t, s.GodModeEnabled)
	assert.True(t, s.HellModeEnabled)
	assert.Equal(t, []string{"GameState", "CurrentRun"}, s.LuaKeys)
	assert.Equal(t, "DeathArea", s.CurrentMapName)
	assert.Equal(t, "RoomOpening01", s.StartNextMap)
	assert.Equal(t, []byte{1, 2, 3, 4}, s.LuaState)
}

func TestParse_BadSignature(t *testing.T) {
	data := buildSave(Version16, []byte{1})
	copy(data, "XXXX")

	s, err := Parse(data)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestParse_UnsupportedVersion(t *testing.T) {
	data := buildSave(99, []byte{1})

	s, err := Parse(data)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParse_Truncated(t *testing.T) {
	data := buildSave(Version16, []byte{1, 2, 3, 4})

	// Every strict prefix must fail with a truncation error, never panic
	// and never produce a record.
	for cut := 0; cut < len(data); cut++ {
		s, err := Parse(data[:cut])
		require.Nilf(t, s, "cut at %d returned a record", cut)
		require.ErrorIsf(t, err, binread.ErrUnexpectedEOF, "cut at %d: %v", cut, err)
	}
}

func TestParse_EmptyStateBlob(t *testing.T) {
	data := buildSave(Version16, nil)

	s, err := Parse(data)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyState)
}

func TestDecompress_RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte("GameStateGameState"), 64)
	data := buildSave(Version16, compressBlock(t, raw))

	s, err := Parse(data)
	require.NoError(t, err)

	out, err := s.Decompress()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestDecompress_CorruptBlob(t *testing.T) {
	s := &SaveData{LuaState: []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xFF}}
	out, err := s.Decompress()
	assert.Nil(t, out)
	assert.Error(t, err)
}
