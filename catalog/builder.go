package catalog

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
	"github.com/arloliu/catalog24x7/internal/options"
	"github.com/arloliu/catalog24x7/section"
)

// Builder accumulates event and group records and assembles them into an Image.
//
// Events must be added before the groups that reference them: a group's event
// indexes are positions in the event list as it stands when the group is added.
//
// Note: The Builder is NOT thread-safe, and it is NOT reusable after Finish.
type Builder struct {
	cfg *BuilderConfig

	eventRecords [][]byte
	groupRecords [][]byte
	eventBytes   int
	groupBytes   int

	finished bool
}

// NewBuilder creates a Builder with the given options applied.
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg := newBuilderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Builder{cfg: cfg}, nil
}

// Config returns the builder configuration.
func (b *Builder) Config() BuilderConfig {
	return *b.cfg
}

// EventCount returns the number of events added so far.
func (b *Builder) EventCount() int {
	return len(b.eventRecords)
}

// GroupCount returns the number of groups added so far.
func (b *Builder) GroupCount() int {
	return len(b.groupRecords)
}

// AddEvent encodes e and appends it to the event section.
//
// Returns the event's position, which groups use to reference it.
func (b *Builder) AddEvent(e section.EventRecord) (int, error) {
	if b.finished {
		return 0, errs.ErrBuilderFinished
	}
	if err := e.Validate(); err != nil {
		return 0, errors.Wrapf(err, "event %d", len(b.eventRecords))
	}
	if len(b.eventRecords) >= section.MaxSectionEntries {
		return 0, errors.Wrapf(errs.ErrTooManyRecords, "event %q: limit is %d", e.Name, section.MaxSectionEntries)
	}

	data := e.Bytes()
	idx := len(b.eventRecords)
	b.eventRecords = append(b.eventRecords, data)
	b.eventBytes += len(data)

	b.cfg.Logger.WithFields(logrus.Fields{
		"index":  idx,
		"name":   e.Name,
		"domain": e.Domain,
		"offset": e.Offset,
		"size":   len(data),
	}).Debug("encoded event")

	return idx, nil
}

// AddGroup encodes g and appends it to the group section.
//
// Every meaningful index in g must refer to an event already added.
// Returns the group's position.
func (b *Builder) AddGroup(g section.GroupRecord) (int, error) {
	if b.finished {
		return 0, errs.ErrBuilderFinished
	}
	if err := g.Validate(); err != nil {
		return 0, errors.Wrapf(err, "group %d", len(b.groupRecords))
	}
	for slot, idx := range g.Events() {
		if int(idx) >= len(b.eventRecords) {
			return 0, errors.Wrapf(errs.ErrEventIndexOutOfRange,
				"group %q slot %d: event %d, have %d events", g.Name, slot, idx, len(b.eventRecords))
		}
	}
	if len(b.groupRecords) >= section.MaxSectionEntries {
		return 0, errors.Wrapf(errs.ErrTooManyRecords, "group %q: limit is %d", g.Name, section.MaxSectionEntries)
	}

	data := g.Bytes()
	idx := len(b.groupRecords)
	b.groupRecords = append(b.groupRecords, data)
	b.groupBytes += len(data)

	b.cfg.Logger.WithFields(logrus.Fields{
		"index":  idx,
		"name":   g.Name,
		"events": g.Events(),
		"size":   len(data),
	}).Debug("encoded group")

	return idx, nil
}

// Finish computes the page layout and assembles the catalog image.
//
// It returns ErrCatalogTooLarge if the records do not fit in the fixed capacity.
func (b *Builder) Finish() (*Image, error) {
	if b.finished {
		return nil, errs.ErrBuilderFinished
	}
	b.finished = true

	layout, err := ComputeLayout(b.eventBytes, b.groupBytes, b.cfg.LegacyGroupPageLength)
	if err != nil {
		return nil, err
	}

	header := section.NewCatalogHeader(b.cfg.Version, b.cfg.BuildDate)
	header.Length = uint32(layout.TotalPages) //nolint: gosec
	header.SetSection(format.SectionEvent, section.SectionDescriptor{
		Offset: EventSectionOffset,
		Length: uint16(layout.EventPages),   //nolint: gosec
		Count:  uint16(len(b.eventRecords)), //nolint: gosec
	})
	header.SetSection(format.SectionGroup, section.SectionDescriptor{
		Offset: uint16(layout.GroupOffset),        //nolint: gosec
		Length: uint16(layout.DeclaredGroupPages), //nolint: gosec
		Count:  uint16(len(b.groupRecords)),       //nolint: gosec
	})

	b.cfg.Logger.WithFields(logrus.Fields{
		"events":      len(b.eventRecords),
		"event_pages": layout.EventPages,
		"groups":      len(b.groupRecords),
		"group_pages": layout.DeclaredGroupPages,
		"group_page":  layout.GroupOffset,
		"total_pages": layout.TotalPages,
	}).Debug("computed catalog layout")

	return assemble(header, layout, b.eventRecords, b.groupRecords)
}
