// Package section defines the binary records of a 24x7 performance catalog.
//
// A catalog is a fixed-size image of CapacityPages pages of PageSize bytes,
// consumed by firmware. Every integer is big-endian and fields are packed with
// no alignment:
//
//	┌────────────────────────────────────────────┐
//	│ Page 0: CatalogHeader (96 bytes), zero fill │
//	├────────────────────────────────────────────┤
//	│ Pages 1..E: EventRecord entries, zero fill  │
//	├────────────────────────────────────────────┤
//	│ Pages E+1..E+G: GroupRecord entries, fill   │
//	├────────────────────────────────────────────┤
//	│ Remaining pages: zero                       │
//	└────────────────────────────────────────────┘
//
// Event and group records are self-describing: each starts with a uint16
// record_len equal to its full serialized size, so a reader walks a section by
// repeatedly advancing record_len bytes. Names follow the fixed part of the
// record and are not terminated.
//
// The fixed part of every record is described by a Layout table (EventLayout,
// GroupLayout, HeaderLayout). Reserved fields are filled with ReservedFill.
package section
