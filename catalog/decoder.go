package catalog

import (
	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
	"github.com/arloliu/catalog24x7/section"
)

// Catalog is the decoded content of a catalog image.
type Catalog struct {
	Header section.CatalogHeader
	Events []section.EventRecord
	Groups []section.GroupRecord
}

// Decode parses a catalog image.
//
// The event section is bounded by its declared page length. The group section is
// bounded by the end of the image instead, since images built with the legacy
// group page length may advertise fewer pages than the group records occupy.
func Decode(data []byte) (*Catalog, error) {
	if len(data) != section.ImageSize {
		return nil, errors.Wrapf(errs.ErrInvalidImageSize, "got %d bytes, want %d", len(data), section.ImageSize)
	}

	header, err := section.ParseCatalogHeader(data)
	if err != nil {
		return nil, err
	}
	for _, k := range []format.SectionKind{format.SectionSchema, format.SectionFormula} {
		if !header.Section(k).IsZero() {
			return nil, errors.Wrapf(errs.ErrUnsupportedSection, "%s section %+v", k, header.Section(k))
		}
	}

	c := &Catalog{Header: header}

	ev := header.Section(format.SectionEvent)
	evData, err := sectionData(data, format.SectionEvent, int(ev.Offset), int(ev.Offset)+int(ev.Length))
	if err != nil {
		return nil, err
	}
	c.Events = make([]section.EventRecord, 0, ev.Count)
	for i := 0; i < int(ev.Count); i++ {
		rec, n, err := section.ParseEventRecord(evData)
		if err != nil {
			return nil, errors.Wrapf(err, "event %d", i)
		}
		c.Events = append(c.Events, rec)
		evData = evData[n:]
	}

	gr := header.Section(format.SectionGroup)
	grData, err := sectionData(data, format.SectionGroup, int(gr.Offset), section.CapacityPages)
	if err != nil {
		return nil, err
	}
	c.Groups = make([]section.GroupRecord, 0, gr.Count)
	for i := 0; i < int(gr.Count); i++ {
		rec, n, err := section.ParseGroupRecord(grData)
		if err != nil {
			return nil, errors.Wrapf(err, "group %d", i)
		}
		if err := rec.Validate(); err != nil {
			return nil, errors.Wrapf(err, "group %d", i)
		}
		for slot, idx := range rec.Events() {
			if int(idx) >= len(c.Events) {
				return nil, errors.Wrapf(errs.ErrEventIndexOutOfRange,
					"group %q slot %d: event %d, have %d events", rec.Name, slot, idx, len(c.Events))
			}
		}
		c.Groups = append(c.Groups, rec)
		grData = grData[n:]
	}

	return c, nil
}

// sectionData returns the bytes of pages [startPage, endPage).
func sectionData(data []byte, kind format.SectionKind, startPage, endPage int) ([]byte, error) {
	if startPage < EventSectionOffset || endPage < startPage || endPage > section.CapacityPages {
		return nil, errors.Wrapf(errs.ErrSectionOutOfRange, "%s section pages [%d, %d)", kind, startPage, endPage)
	}

	return data[startPage*section.PageSize : endPage*section.PageSize], nil
}
