// Package catalog builds and decodes 24x7 performance catalog images.
//
// A Builder owns the ordered event and group record lists. Events are added
// first; groups then reference them by position. Finish computes the page
// layout and assembles a fixed-size Image:
//
//	b, _ := catalog.NewBuilder(catalog.WithVersion(1))
//	read, _ := b.AddEvent(section.NewEventRecord(format.DomainPhysChip, 0x18, "mcs0_read"))
//	_, _ = b.AddGroup(section.NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", uint16(read)))
//	img, err := b.Finish()
//	if err != nil {
//	    return err
//	}
//	path, err := img.WriteFile(dir)
//
// Page math: the event section starts at page 1, its length is the event bytes
// rounded up to whole pages, and the group section starts right after it.
// Finish fails with errs.ErrCatalogTooLarge if the result does not fit in
// section.CapacityPages.
//
// Decode reverses the process and is used to verify images before they are
// written.
package catalog
