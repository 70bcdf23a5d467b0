package catalog24x7

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catalog24x7/catalog"
	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/format"
	"github.com/arloliu/catalog24x7/section"
)

func TestBuild(t *testing.T) {
	events := []section.EventRecord{
		section.NewEventRecord(format.DomainPhysChip, 0x18, "mcs0_read"),
		section.NewEventRecord(format.DomainPhysChip, 0x20, "mcs1_read"),
	}
	groups := []section.GroupRecord{
		section.NewGroupRecord(format.DomainPhysChip, 1, "MCS_Read_BW", 0, 1),
	}

	img, err := Build(events, groups, catalog.WithVersion(1))
	require.NoError(t, err)
	require.Equal(t, section.ImageSize, img.Size())

	c, err := catalog.Decode(img.Bytes())
	require.NoError(t, err)
	require.Equal(t, events, c.Events)
	require.Equal(t, groups, c.Groups)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("Invalid option", func(t *testing.T) {
		_, err := Build(nil, nil, catalog.WithDateString("today"))
		require.ErrorIs(t, err, errs.ErrInvalidDateString)
	})

	t.Run("Group before its events", func(t *testing.T) {
		groups := []section.GroupRecord{section.NewGroupRecord(format.DomainPhysChip, 1, "g", 0)}
		_, err := Build(nil, groups)
		require.ErrorIs(t, err, errs.ErrEventIndexOutOfRange)
	})
}
