package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
)

func TestNewGroupRecord(t *testing.T) {
	g := NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", 0, 1, 2, 3)

	require.Equal(t, uint8(4), g.EventCount)
	require.Equal(t, []uint16{0, 1, 2, 3}, g.Events())
	for _, slot := range g.EventIndexes[4:] {
		require.Zero(t, slot)
	}
	require.NoError(t, g.Validate())
}

func TestGroupRecord_Bytes(t *testing.T) {
	g := NewGroupRecord(format.DomainPhysChip, 1, "MCS_Write_BW", 4, 5, 6, 7)

	data := g.Bytes()

	require.Len(t, data, 62)
	require.Equal(t, []byte{
		0x00, 0x3E, // record_len
		0x20, 0x20, // reserved
		0x00, 0x00, 0x00, 0x00, // flag
		0x01,       // domain
		0x20,       // reserved
		0x00, 0x00, // start
		0x00, 0x00, // length
		0x01, // index
		0x04, // event_count
	}, data[:16])

	want := make([]byte, 2*MaxGroupEvents)
	want[1], want[3], want[5], want[7] = 4, 5, 6, 7
	require.Equal(t, want, data[16:48])
	require.Equal(t, []byte{0x00, 0x0C}, data[48:50])
	require.Equal(t, "MCS_Write_BW", string(data[50:]))
}

func TestGroupRecord_RoundTrip(t *testing.T) {
	original := NewGroupRecord(format.DomainPhysCore, 9, "all_sixteen",
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0xFFFF)
	original.Flag = 0x80000001
	original.Start = 1
	original.Length = 2

	parsed, n, err := ParseGroupRecord(original.Bytes())
	require.NoError(t, err)
	require.Equal(t, original.Size(), n)
	require.Equal(t, original, parsed)
}

func TestGroupRecord_Validate(t *testing.T) {
	t.Run("Empty group", func(t *testing.T) {
		g := NewGroupRecord(format.DomainPhysChip, 0, "empty")
		require.NoError(t, g.Validate())
	})

	t.Run("Too many events", func(t *testing.T) {
		events := make([]uint16, MaxGroupEvents+1)
		g := NewGroupRecord(format.DomainPhysChip, 0, "big", events...)
		require.ErrorIs(t, g.Validate(), errs.ErrTooManyGroupEvents)
	})

	t.Run("Non-zero unused slot", func(t *testing.T) {
		g := NewGroupRecord(format.DomainPhysChip, 0, "dirty", 1, 2)
		g.EventIndexes[5] = 3
		require.ErrorIs(t, g.Validate(), errs.ErrUnusedSlotNotZero)
	})

	t.Run("Empty name", func(t *testing.T) {
		g := NewGroupRecord(format.DomainPhysChip, 0, "", 1)
		require.ErrorIs(t, g.Validate(), errs.ErrEmptyName)
	})
}

func TestParseGroupRecord_Invalid(t *testing.T) {
	g := NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", 0, 1, 2, 3)
	data := g.Bytes()

	_, _, err := ParseGroupRecord(data[:10])
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, _, err = ParseGroupRecord(data[:len(data)-2])
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	bad := append([]byte(nil), data...)
	bad[49] = 0 // name_len
	_, _, err = ParseGroupRecord(bad)
	require.ErrorIs(t, err, errs.ErrInvalidRecordLength)
}
