package section

import "math"

const (
	// MagicNumber identifies a catalog image. It reads as ASCII "24x7".
	MagicNumber = 0x32347837

	// PageSize is the unit of every section offset and length in the header.
	PageSize = 4096

	// CapacityPages is the fixed number of pages in a catalog image.
	CapacityPages = 256

	// ImageSize is the fixed byte size of a catalog image.
	ImageSize = CapacityPages * PageSize

	// ReservedFill is written into every reserved field of a record.
	ReservedFill = 0x20

	// MaxGroupEvents is the number of event index slots in a group record.
	MaxGroupEvents = 16

	// DateStringSize is the width of the build date field in the header.
	DateStringSize = 16

	// MaxRecordSize is the largest record a uint16 record_len field can describe.
	MaxRecordSize = math.MaxUint16

	// MaxSectionEntries is the largest entry count a section descriptor can hold.
	MaxSectionEntries = math.MaxUint16
)

// Fixed part sizes, derived from the layout tables.
var (
	HeaderSize     = HeaderLayout.Size()
	EventFixedSize = EventLayout.Size()
	GroupFixedSize = GroupLayout.Size()
)
