package section

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/endian"
	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
)

// GroupLayout is the fixed part of a group record; the name follows it.
//
//	Bytes | Field          | Type
//	------|----------------|-----------
//	0-1   | record_len     | uint16
//	2-3   | reserved       |
//	4-7   | flag           | uint32
//	8     | domain         | uint8
//	9     | reserved       |
//	10-11 | start          | uint16
//	12-13 | length         | uint16
//	14    | index          | uint8
//	15    | event_count    | uint8
//	16-47 | event_index    | 16 × uint16
//	48-49 | name_len       | uint16
var GroupLayout = NewLayout("group",
	Uint(fieldRecordLen, 2),
	Reserved(2),
	Uint(fieldFlag, 4),
	Uint(fieldDomain, 1),
	Reserved(1),
	Uint(fieldStart, 2),
	Uint(fieldLength, 2),
	Uint(fieldIndex, 1),
	Uint(fieldEventCount, 1),
	Bytes(fieldEventIndex, 2*MaxGroupEvents),
	Uint(fieldNameLen, 2),
)

// GroupRecord is a named set of up to 16 events exposed as one measurement.
//
// EventIndexes holds positions in the event section. Only the first EventCount
// slots are meaningful; the remaining slots must be zero.
type GroupRecord struct {
	Flag         uint32
	Domain       format.Domain
	Start        uint16
	Length       uint16
	Index        uint8
	EventCount   uint8
	EventIndexes [MaxGroupEvents]uint16
	Name         string
}

// NewGroupRecord creates a group over the given event indexes.
//
// More than MaxGroupEvents indexes yield a record that fails Validate.
func NewGroupRecord(domain format.Domain, index uint8, name string, events ...uint16) GroupRecord {
	g := GroupRecord{
		Domain: domain,
		Index:  index,
		Name:   name,
	}
	// Counts past MaxGroupEvents are kept so Validate can reject them.
	g.EventCount = uint8(min(len(events), math.MaxUint8)) //nolint: gosec
	copy(g.EventIndexes[:], events)

	return g
}

// Events returns the meaningful event indexes.
func (g *GroupRecord) Events() []uint16 {
	n := min(int(g.EventCount), MaxGroupEvents)
	return g.EventIndexes[:n]
}

// Size returns the serialized size of the record in bytes.
func (g *GroupRecord) Size() int {
	return GroupFixedSize + len(g.Name)
}

// Validate checks the record itself. Event index ranges are checked by the caller,
// which knows how many events exist.
func (g *GroupRecord) Validate() error {
	if len(g.Name) == 0 {
		return errs.ErrEmptyName
	}
	if g.Size() > MaxRecordSize {
		return errors.Wrapf(errs.ErrNameTooLong, "group %q: %d name bytes", g.Name, len(g.Name))
	}
	if int(g.EventCount) > MaxGroupEvents {
		return errors.Wrapf(errs.ErrTooManyGroupEvents, "group %q: event count %d", g.Name, g.EventCount)
	}
	for i := int(g.EventCount); i < MaxGroupEvents; i++ {
		if g.EventIndexes[i] != 0 {
			return errors.Wrapf(errs.ErrUnusedSlotNotZero, "group %q: slot %d holds %d", g.Name, i, g.EventIndexes[i])
		}
	}

	return nil
}

// Bytes serializes the record. The record must be valid.
func (g *GroupRecord) Bytes() []byte {
	engine := endian.GetBigEndianEngine()
	size := g.Size()

	b := make([]byte, size)
	GroupLayout.FillReserved(b)
	GroupLayout.PutUint(b, engine, fieldRecordLen, uint64(size))
	GroupLayout.PutUint(b, engine, fieldFlag, uint64(g.Flag))
	GroupLayout.PutUint(b, engine, fieldDomain, uint64(g.Domain))
	GroupLayout.PutUint(b, engine, fieldStart, uint64(g.Start))
	GroupLayout.PutUint(b, engine, fieldLength, uint64(g.Length))
	GroupLayout.PutUint(b, engine, fieldIndex, uint64(g.Index))
	GroupLayout.PutUint(b, engine, fieldEventCount, uint64(g.EventCount))

	slots := GroupLayout.ByteField(b, fieldEventIndex)
	for i, idx := range g.EventIndexes {
		engine.PutUint16(slots[2*i:2*i+2], idx)
	}

	GroupLayout.PutUint(b, engine, fieldNameLen, uint64(len(g.Name)))
	copy(b[GroupFixedSize:], g.Name)

	return b
}

// ParseGroupRecord parses the group record at the start of data.
//
// Returns the record and the number of bytes it occupies.
func ParseGroupRecord(data []byte) (GroupRecord, int, error) {
	engine := endian.GetBigEndianEngine()
	if len(data) < GroupFixedSize {
		return GroupRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordSize, "group record: %d bytes", len(data))
	}

	recordLen := int(GroupLayout.Uint(data, engine, fieldRecordLen))
	nameLen := int(GroupLayout.Uint(data, engine, fieldNameLen))
	if recordLen != GroupFixedSize+nameLen {
		return GroupRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordLength,
			"group record: record_len %d, name_len %d", recordLen, nameLen)
	}
	if len(data) < recordLen {
		return GroupRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordSize,
			"group record: need %d bytes, have %d", recordLen, len(data))
	}

	g := GroupRecord{
		Flag:       uint32(GroupLayout.Uint(data, engine, fieldFlag)),
		Domain:     format.Domain(GroupLayout.Uint(data, engine, fieldDomain)),
		Start:      uint16(GroupLayout.Uint(data, engine, fieldStart)),
		Length:     uint16(GroupLayout.Uint(data, engine, fieldLength)),
		Index:      uint8(GroupLayout.Uint(data, engine, fieldIndex)),
		EventCount: uint8(GroupLayout.Uint(data, engine, fieldEventCount)),
		Name:       string(data[GroupFixedSize:recordLen]),
	}

	slots := GroupLayout.ByteField(data, fieldEventIndex)
	for i := range g.EventIndexes {
		g.EventIndexes[i] = engine.Uint16(slots[2*i : 2*i+2])
	}

	return g, recordLen, nil
}
