package catalog

import (
	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/internal/pagebuf"
	"github.com/arloliu/catalog24x7/section"
)

// EventSectionOffset is the first page of the event section; page 0 holds the header.
const EventSectionOffset = 1

// Layout is the page arrangement of a catalog image.
type Layout struct {
	EventBytes int // total size of all event records
	EventPages int // pages spanned by the event section
	EventFill  int // zero bytes after the last event record

	GroupOffset int // first page of the group section
	GroupBytes  int // total size of all group records
	GroupPages  int // pages spanned by the group section
	GroupFill   int // zero bytes after the last group record

	// DeclaredGroupPages is the group length advertised in the header. It equals
	// GroupPages unless the legacy computation is enabled.
	DeclaredGroupPages int

	// TotalPages is the catalog length advertised in the header.
	TotalPages int
}

// ComputeLayout derives the section layout for the given record byte totals.
//
// It returns ErrCatalogTooLarge if the sections do not fit in CapacityPages.
func ComputeLayout(eventBytes, groupBytes int, legacyGroupPages bool) (Layout, error) {
	l := Layout{
		EventBytes: eventBytes,
		EventPages: pagebuf.Pages(eventBytes, section.PageSize),
		EventFill:  pagebuf.Padding(eventBytes, section.PageSize),
		GroupBytes: groupBytes,
		GroupPages: pagebuf.Pages(groupBytes, section.PageSize),
		GroupFill:  pagebuf.Padding(groupBytes, section.PageSize),
	}
	l.GroupOffset = EventSectionOffset + l.EventPages

	l.DeclaredGroupPages = l.GroupPages
	if legacyGroupPages {
		l.DeclaredGroupPages = eventBytes / section.PageSize
		if groupBytes%section.PageSize != 0 {
			l.DeclaredGroupPages++
		}
	}
	l.TotalPages = EventSectionOffset + l.EventPages + l.DeclaredGroupPages

	if used := max(l.UsedPages(), l.TotalPages); used > section.CapacityPages {
		return Layout{}, errors.Wrapf(errs.ErrCatalogTooLarge,
			"%d pages needed (events %d bytes, groups %d bytes), capacity is %d pages",
			used, eventBytes, groupBytes, section.CapacityPages)
	}

	return l, nil
}

// UsedPages returns the number of pages actually occupied by the header and both sections.
func (l Layout) UsedPages() int {
	return EventSectionOffset + l.EventPages + l.GroupPages
}

// FreePages returns the number of zero-filled pages after the group section.
func (l Layout) FreePages() int {
	return section.CapacityPages - l.UsedPages()
}
