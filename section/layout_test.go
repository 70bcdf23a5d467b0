package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catalog24x7/endian"
)

func TestLayoutSizes(t *testing.T) {
	require.Equal(t, 22, EventFixedSize)
	require.Equal(t, 50, GroupFixedSize)
	require.Equal(t, 96, HeaderSize)
	require.LessOrEqual(t, HeaderSize, PageSize)
	require.Equal(t, 1048576, ImageSize)
}

func TestLayoutOffsets(t *testing.T) {
	require.Equal(t, 0, EventLayout.Offset(fieldRecordLen))
	require.Equal(t, 4, EventLayout.Offset(fieldDomain))
	require.Equal(t, 12, EventLayout.Offset(fieldFlag))
	require.Equal(t, 20, EventLayout.Offset(fieldNameLen))

	require.Equal(t, 4, GroupLayout.Offset(fieldFlag))
	require.Equal(t, 15, GroupLayout.Offset(fieldEventCount))
	require.Equal(t, 16, GroupLayout.Offset(fieldEventIndex))
	require.Equal(t, 48, GroupLayout.Offset(fieldNameLen))

	require.Equal(t, 16, HeaderLayout.Offset(fieldBuildDate))
	require.Equal(t, 64, HeaderLayout.Offset("schema_offset"))
	require.Equal(t, 72, HeaderLayout.Offset("event_offset"))
	require.Equal(t, 80, HeaderLayout.Offset("group_offset"))
	require.Equal(t, 92, HeaderLayout.Offset("formula_count"))
}

func TestNewLayout_Invalid(t *testing.T) {
	t.Run("Bad uint width", func(t *testing.T) {
		require.Panics(t, func() { NewLayout("bad", Uint("x", 3)) })
	})

	t.Run("Zero width", func(t *testing.T) {
		require.Panics(t, func() { NewLayout("bad", Reserved(0)) })
	})

	t.Run("Duplicate name", func(t *testing.T) {
		require.Panics(t, func() { NewLayout("bad", Uint("x", 1), Uint("x", 2)) })
	})
}

func TestLayout_PutUint(t *testing.T) {
	l := NewLayout("test", Uint("a", 1), Reserved(1), Uint("b", 2), Uint("c", 4), Uint("d", 8))
	require.Equal(t, 16, l.Size())

	b := make([]byte, l.Size())
	l.FillReserved(b)
	engine := endian.GetBigEndianEngine()
	l.PutUint(b, engine, "a", 0xAB)
	l.PutUint(b, engine, "b", 0x0102)
	l.PutUint(b, engine, "c", 0x03040506)
	l.PutUint(b, engine, "d", 0x0708090A0B0C0D0E)

	require.Equal(t, []byte{
		0xAB, ReservedFill, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E,
	}, b)

	require.Equal(t, uint64(0xAB), l.Uint(b, engine, "a"))
	require.Equal(t, uint64(0x0102), l.Uint(b, engine, "b"))
	require.Equal(t, uint64(0x03040506), l.Uint(b, engine, "c"))
	require.Equal(t, uint64(0x0708090A0B0C0D0E), l.Uint(b, engine, "d"))

	t.Run("Little endian", func(t *testing.T) {
		le := endian.GetLittleEndianEngine()
		l.PutUint(b, le, "b", 0x0102)
		require.Equal(t, []byte{0x02, 0x01}, b[2:4])
	})

	t.Run("Overflow panics", func(t *testing.T) {
		require.Panics(t, func() { l.PutUint(b, engine, "a", 0x100) })
	})

	t.Run("Unknown field panics", func(t *testing.T) {
		require.Panics(t, func() { l.PutUint(b, engine, "missing", 1) })
	})
}

func TestLayout_PutBytes(t *testing.T) {
	l := NewLayout("test", Bytes("s", 4))
	b := []byte{9, 9, 9, 9}

	l.PutBytes(b, "s", []byte("ab"))
	require.Equal(t, []byte{'a', 'b', 0, 0}, b)
	require.Equal(t, []byte{'a', 'b', 0, 0}, l.ByteField(b, "s"))

	require.Panics(t, func() { l.PutBytes(b, "s", []byte("abcde")) })
}
