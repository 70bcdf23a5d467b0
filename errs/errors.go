// Package errs defines the sentinel errors returned by the catalog packages.
//
// Errors returned from this module wrap one of these sentinels with context, so
// callers should match them with errors.Is.
package errs

import "github.com/pkg/errors"

// Record encoding errors.
var (
	ErrNameTooLong          = errors.New("record name too long")
	ErrEmptyName            = errors.New("record name is empty")
	ErrTooManyGroupEvents   = errors.New("group references more than 16 events")
	ErrUnusedSlotNotZero    = errors.New("group event index slot past event count is not zero")
	ErrEventIndexOutOfRange = errors.New("group event index out of range")
	ErrTooManyRecords       = errors.New("too many records in section")
	ErrRecordTooLarge       = errors.New("record exceeds maximum record length")
)

// Layout and assembly errors.
var (
	ErrCatalogTooLarge   = errors.New("catalog exceeds fixed capacity")
	ErrHeaderTooLarge    = errors.New("catalog header exceeds one page")
	ErrBuilderFinished   = errors.New("builder already finished")
	ErrInvalidDateString = errors.New("build date string must be exactly 16 bytes")
)

// Decoding errors.
var (
	ErrInvalidMagic        = errors.New("invalid catalog magic number")
	ErrInvalidImageSize    = errors.New("invalid catalog image size")
	ErrInvalidHeaderSize   = errors.New("invalid catalog header size")
	ErrInvalidRecordSize   = errors.New("invalid record size")
	ErrInvalidRecordLength = errors.New("record length field does not match record size")
	ErrSectionOutOfRange   = errors.New("section extends past end of catalog")
	ErrUnsupportedSection  = errors.New("unsupported catalog section is populated")
)
