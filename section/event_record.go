package section

import (
	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/endian"
	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
)

// Field names shared by the record layouts.
const (
	fieldRecordLen  = "record_len"
	fieldDomain     = "domain"
	fieldStart      = "start"
	fieldLength     = "length"
	fieldOffset     = "offset"
	fieldFlag       = "flag"
	fieldIndex      = "index"
	fieldGroupCount = "group_count"
	fieldEventCount = "event_count"
	fieldEventIndex = "event_index"
	fieldNameLen    = "name_len"
)

// EventLayout is the fixed part of an event record; the name follows it.
//
//	Bytes | Field       | Type
//	------|-------------|--------
//	0-1   | record_len  | uint16
//	2-3   | reserved    |
//	4     | domain      | uint8
//	5     | reserved    |
//	6-7   | start       | uint16
//	8-9   | length      | uint16
//	10-11 | offset      | uint16
//	12-15 | flag        | uint32
//	16-17 | index       | uint16
//	18-19 | group_count | uint16
//	20-21 | name_len    | uint16
var EventLayout = NewLayout("event",
	Uint(fieldRecordLen, 2),
	Reserved(2),
	Uint(fieldDomain, 1),
	Reserved(1),
	Uint(fieldStart, 2),
	Uint(fieldLength, 2),
	Uint(fieldOffset, 2),
	Uint(fieldFlag, 4),
	Uint(fieldIndex, 2),
	Uint(fieldGroupCount, 2),
	Uint(fieldNameLen, 2),
)

// EventRecord describes a single hardware performance counter.
type EventRecord struct {
	// Domain is the hardware domain the counter belongs to.
	Domain format.Domain
	// Start is the counter's starting bit.
	Start uint16
	// Length is the counter bit width.
	Length uint16
	// Offset is the register offset of the counter.
	Offset uint16
	// Flag is reserved and always zero in current catalogs.
	Flag uint32
	// Index is the counter index within its unit.
	Index uint16
	// GroupCount is the number of groups that reference this event.
	GroupCount uint16
	// Name is written raw, without a terminator.
	Name string
}

// NewEventRecord creates an event record referenced by a single group.
func NewEventRecord(domain format.Domain, offset uint16, name string) EventRecord {
	return EventRecord{
		Domain:     domain,
		Offset:     offset,
		GroupCount: 1,
		Name:       name,
	}
}

// Size returns the serialized size of the record in bytes.
func (e *EventRecord) Size() int {
	return EventFixedSize + len(e.Name)
}

// Validate checks that the record can be encoded.
func (e *EventRecord) Validate() error {
	if len(e.Name) == 0 {
		return errs.ErrEmptyName
	}
	if e.Size() > MaxRecordSize {
		return errors.Wrapf(errs.ErrNameTooLong, "event %q: %d name bytes", e.Name, len(e.Name))
	}

	return nil
}

// Bytes serializes the record. The record must be valid.
func (e *EventRecord) Bytes() []byte {
	engine := endian.GetBigEndianEngine()
	size := e.Size()

	b := make([]byte, size)
	EventLayout.FillReserved(b)
	EventLayout.PutUint(b, engine, fieldRecordLen, uint64(size))
	EventLayout.PutUint(b, engine, fieldDomain, uint64(e.Domain))
	EventLayout.PutUint(b, engine, fieldStart, uint64(e.Start))
	EventLayout.PutUint(b, engine, fieldLength, uint64(e.Length))
	EventLayout.PutUint(b, engine, fieldOffset, uint64(e.Offset))
	EventLayout.PutUint(b, engine, fieldFlag, uint64(e.Flag))
	EventLayout.PutUint(b, engine, fieldIndex, uint64(e.Index))
	EventLayout.PutUint(b, engine, fieldGroupCount, uint64(e.GroupCount))
	EventLayout.PutUint(b, engine, fieldNameLen, uint64(len(e.Name)))
	copy(b[EventFixedSize:], e.Name)

	return b
}

// ParseEventRecord parses the event record at the start of data.
//
// Returns the record and the number of bytes it occupies.
func ParseEventRecord(data []byte) (EventRecord, int, error) {
	engine := endian.GetBigEndianEngine()
	if len(data) < EventFixedSize {
		return EventRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordSize, "event record: %d bytes", len(data))
	}

	recordLen := int(EventLayout.Uint(data, engine, fieldRecordLen))
	nameLen := int(EventLayout.Uint(data, engine, fieldNameLen))
	if recordLen != EventFixedSize+nameLen {
		return EventRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordLength,
			"event record: record_len %d, name_len %d", recordLen, nameLen)
	}
	if len(data) < recordLen {
		return EventRecord{}, 0, errors.Wrapf(errs.ErrInvalidRecordSize,
			"event record: need %d bytes, have %d", recordLen, len(data))
	}

	return EventRecord{
		Domain:     format.Domain(EventLayout.Uint(data, engine, fieldDomain)),
		Start:      uint16(EventLayout.Uint(data, engine, fieldStart)),
		Length:     uint16(EventLayout.Uint(data, engine, fieldLength)),
		Offset:     uint16(EventLayout.Uint(data, engine, fieldOffset)),
		Flag:       uint32(EventLayout.Uint(data, engine, fieldFlag)),
		Index:      uint16(EventLayout.Uint(data, engine, fieldIndex)),
		GroupCount: uint16(EventLayout.Uint(data, engine, fieldGroupCount)),
		Name:       string(data[EventFixedSize:recordLen]),
	}, recordLen, nil
}
