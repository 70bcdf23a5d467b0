package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/internal/options"
	"github.com/arloliu/catalog24x7/section"
)

// DefaultVersion is the catalog format version written when none is configured.
const DefaultVersion = 1

// BuilderConfig holds the settings applied to a Builder.
type BuilderConfig struct {
	// Version is written to the header version field.
	Version uint64
	// BuildDate is written to the header build date field.
	BuildDate [section.DateStringSize]byte
	// LegacyGroupPageLength derives the group section's declared page length
	// from the event section size, matching catalogs produced by earlier
	// generators. The group data itself is laid out identically.
	LegacyGroupPageLength bool
	// Logger receives per-record debug output.
	Logger logrus.FieldLogger
}

// Option configures a Builder.
type Option = options.Option[*BuilderConfig]

func newBuilderConfig() *BuilderConfig {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &BuilderConfig{
		Version:   DefaultVersion,
		BuildDate: FormatBuildDate(time.Now().UTC()),
		Logger:    discard,
	}
}

// FormatBuildDate renders t as "YYYYMMDDhhmmss" followed by two digits of centiseconds.
func FormatBuildDate(t time.Time) [section.DateStringSize]byte {
	var d [section.DateStringSize]byte
	s := t.Format("20060102150405") + fmt.Sprintf("%02d", t.Nanosecond()/int(10*time.Millisecond))
	copy(d[:], s)

	return d
}

// WithVersion sets the header version.
func WithVersion(version uint64) Option {
	return options.NoError(func(c *BuilderConfig) {
		c.Version = version
	})
}

// WithBuildDate sets the header build date from t.
func WithBuildDate(t time.Time) Option {
	return options.NoError(func(c *BuilderConfig) {
		c.BuildDate = FormatBuildDate(t)
	})
}

// WithDateString sets the header build date verbatim. date must be exactly 16 bytes.
func WithDateString(date string) Option {
	return options.New(func(c *BuilderConfig) error {
		if len(date) != section.DateStringSize {
			return errors.Wrapf(errs.ErrInvalidDateString, "%q has %d bytes", date, len(date))
		}
		copy(c.BuildDate[:], date)

		return nil
	})
}

// WithLegacyGroupPageLength enables the pre-fix group page length computation.
func WithLegacyGroupPageLength(enabled bool) Option {
	return options.NoError(func(c *BuilderConfig) {
		c.LegacyGroupPageLength = enabled
	})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *BuilderConfig) {
		if logger != nil {
			c.Logger = logger
		}
	})
}
