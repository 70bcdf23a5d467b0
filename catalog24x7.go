// Package catalog24x7 generates the 24x7 performance catalog consumed by firmware.
//
// The catalog is a fixed-size binary image that describes the hardware
// performance-monitoring events and event groups a nest microcode supports.
// It is built once at firmware build time from a static list of definitions.
//
// # Basic Usage
//
//	events := []section.EventRecord{
//	    section.NewEventRecord(format.DomainPhysChip, 0x18, "mcs0_read"),
//	    section.NewEventRecord(format.DomainPhysChip, 0x20, "mcs1_read"),
//	}
//	groups := []section.GroupRecord{
//	    section.NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", 0, 1),
//	}
//	img, err := catalog24x7.Build(events, groups, catalog.WithVersion(1))
//	if err != nil {
//	    return err
//	}
//	_, err = img.WriteFile(outDir)
//
// # Package Structure
//
// This package is a thin wrapper over the catalog package. The section package
// holds the record layouts, and catalog.Decode reads an image back.
package catalog24x7

import (
	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/catalog"
	"github.com/arloliu/catalog24x7/section"
)

// Build encodes all events, then all groups, and assembles the catalog image.
//
// Group event indexes refer to positions in events.
func Build(events []section.EventRecord, groups []section.GroupRecord, opts ...catalog.Option) (*catalog.Image, error) {
	b, err := catalog.NewBuilder(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid catalog option")
	}

	for _, e := range events {
		if _, err := b.AddEvent(e); err != nil {
			return nil, err
		}
	}
	for _, g := range groups {
		if _, err := b.AddGroup(g); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}
