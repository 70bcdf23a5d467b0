package main

import (
	"github.com/arloliu/catalog24x7/format"
	"github.com/arloliu/catalog24x7/section"
)

// Catalog identity. Changing the nest microcode units or events means
// updating the definitions below and the date.
const (
	catalogVersion = 1
	catalogDate    = "2016020918450000"
)

// nestEvents are the counters exposed by the memory bandwidth nest microcode.
// Groups reference them by position.
var nestEvents = []section.EventRecord{
	// MCS read
	section.NewEventRecord(format.DomainPhysChip, 0x18, "mcs0_read"),
	section.NewEventRecord(format.DomainPhysChip, 0x20, "mcs1_read"),
	section.NewEventRecord(format.DomainPhysChip, 0x28, "mcs2_read"),
	section.NewEventRecord(format.DomainPhysChip, 0x30, "mcs3_read"),

	// MCS write
	section.NewEventRecord(format.DomainPhysChip, 0x38, "mcs0_write"),
	section.NewEventRecord(format.DomainPhysChip, 0x40, "mcs1_write"),
	section.NewEventRecord(format.DomainPhysChip, 0x48, "mcs2_write"),
	section.NewEventRecord(format.DomainPhysChip, 0x50, "mcs3_write"),
}

var nestGroups = []section.GroupRecord{
	section.NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", 0, 1, 2, 3),
	section.NewGroupRecord(format.DomainPhysChip, 1, "MCS_Write_BW", 4, 5, 6, 7),
}
