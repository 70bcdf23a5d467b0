package section

import (
	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/endian"
	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
)

const (
	fieldMagic      = "magic"
	fieldCatalogLen = "catalog_len"
	fieldVersion    = "version"
	fieldBuildDate  = "build_date"
)

// HeaderLayout is the page 0 record.
//
//	Bytes | Field       | Type
//	------|-------------|-----------
//	0-3   | magic       | uint32
//	4-7   | catalog_len | uint32 (pages)
//	8-15  | version     | uint64
//	16-31 | build_date  | [16]byte
//	32-63 | reserved    |
//	64-71 | schema      | descriptor
//	72-79 | event       | descriptor
//	80-87 | group       | descriptor
//	88-95 | formula     | descriptor
//
// Each descriptor is offset, length and count as uint16 followed by two reserved bytes.
var HeaderLayout = NewLayout("header", headerFields()...)

func headerFields() []Field {
	fields := []Field{
		Uint(fieldMagic, 4),
		Uint(fieldCatalogLen, 4),
		Uint(fieldVersion, 8),
		Bytes(fieldBuildDate, DateStringSize),
		Reserved(32),
	}
	for _, k := range format.SectionKinds {
		fields = append(fields,
			Uint(descField(k, "offset"), 2),
			Uint(descField(k, "length"), 2),
			Uint(descField(k, "count"), 2),
			Reserved(2),
		)
	}

	return fields
}

func descField(k format.SectionKind, name string) string {
	return k.String() + "_" + name
}

// SectionDescriptor locates one section of the catalog, in pages.
type SectionDescriptor struct {
	Offset uint16 // first page of the section
	Length uint16 // section length in pages
	Count  uint16 // number of entries in the section
}

// IsZero reports whether the descriptor describes no section.
func (d SectionDescriptor) IsZero() bool {
	return d == SectionDescriptor{}
}

// CatalogHeader is the record stored at the start of page 0.
type CatalogHeader struct {
	// Magic is MagicNumber for a valid catalog.
	Magic uint32
	// Length is the number of pages in use, including page 0.
	Length uint32
	// Version is the catalog format version.
	Version uint64
	// BuildDate is an ASCII timestamp, "YYYYMMDDhhmmss" followed by two digits.
	BuildDate [DateStringSize]byte
	// Sections is indexed by format.SectionKind.
	Sections [len(format.SectionKinds)]SectionDescriptor
}

// NewCatalogHeader creates a header with the magic number set and all sections empty.
func NewCatalogHeader(version uint64, date [DateStringSize]byte) *CatalogHeader {
	return &CatalogHeader{
		Magic:     MagicNumber,
		Version:   version,
		BuildDate: date,
	}
}

// Section returns the descriptor for kind.
func (h *CatalogHeader) Section(kind format.SectionKind) SectionDescriptor {
	return h.Sections[kind]
}

// SetSection replaces the descriptor for kind.
func (h *CatalogHeader) SetSection(kind format.SectionKind, d SectionDescriptor) {
	h.Sections[kind] = d
}

// BuildDateString returns the build date as a string.
func (h *CatalogHeader) BuildDateString() string {
	return string(h.BuildDate[:])
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h *CatalogHeader) Bytes() []byte {
	engine := endian.GetBigEndianEngine()

	b := make([]byte, HeaderSize)
	HeaderLayout.FillReserved(b)
	HeaderLayout.PutUint(b, engine, fieldMagic, uint64(h.Magic))
	HeaderLayout.PutUint(b, engine, fieldCatalogLen, uint64(h.Length))
	HeaderLayout.PutUint(b, engine, fieldVersion, h.Version)
	HeaderLayout.PutBytes(b, fieldBuildDate, h.BuildDate[:])
	for _, k := range format.SectionKinds {
		d := h.Sections[k]
		HeaderLayout.PutUint(b, engine, descField(k, "offset"), uint64(d.Offset))
		HeaderLayout.PutUint(b, engine, descField(k, "length"), uint64(d.Length))
		HeaderLayout.PutUint(b, engine, descField(k, "count"), uint64(d.Count))
	}

	return b
}

// Parse parses the header from data, which must be exactly HeaderSize bytes.
func (h *CatalogHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errors.Wrapf(errs.ErrInvalidHeaderSize, "got %d bytes", len(data))
	}

	engine := endian.GetBigEndianEngine()
	h.Magic = uint32(HeaderLayout.Uint(data, engine, fieldMagic))
	if h.Magic != MagicNumber {
		return errors.Wrapf(errs.ErrInvalidMagic, "got %#08x", h.Magic)
	}
	h.Length = uint32(HeaderLayout.Uint(data, engine, fieldCatalogLen))
	h.Version = HeaderLayout.Uint(data, engine, fieldVersion)
	copy(h.BuildDate[:], HeaderLayout.ByteField(data, fieldBuildDate))
	for _, k := range format.SectionKinds {
		h.Sections[k] = SectionDescriptor{
			Offset: uint16(HeaderLayout.Uint(data, engine, descField(k, "offset"))),
			Length: uint16(HeaderLayout.Uint(data, engine, descField(k, "length"))),
			Count:  uint16(HeaderLayout.Uint(data, engine, descField(k, "count"))),
		}
	}

	return nil
}

// ParseCatalogHeader parses a CatalogHeader from the start of data.
func ParseCatalogHeader(data []byte) (CatalogHeader, error) {
	if len(data) < HeaderSize {
		return CatalogHeader{}, errors.Wrapf(errs.ErrInvalidHeaderSize, "got %d bytes", len(data))
	}

	h := CatalogHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return CatalogHeader{}, err
	}

	return h, nil
}
