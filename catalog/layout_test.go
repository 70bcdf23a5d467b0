package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/section"
)

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name       string
		eventBytes int
		groupBytes int
		want       Layout
	}{
		{
			name: "Empty",
			want: Layout{GroupOffset: 1, TotalPages: 1},
		},
		{
			name:       "MCS catalog",
			eventBytes: 252,
			groupBytes: 123,
			want: Layout{
				EventBytes: 252, EventPages: 1, EventFill: 3844,
				GroupOffset: 2, GroupBytes: 123, GroupPages: 1, GroupFill: 3973,
				DeclaredGroupPages: 1, TotalPages: 3,
			},
		},
		{
			name:       "Exact page boundary",
			eventBytes: 2 * section.PageSize,
			groupBytes: section.PageSize,
			want: Layout{
				EventBytes: 8192, EventPages: 2, EventFill: 0,
				GroupOffset: 3, GroupBytes: 4096, GroupPages: 1, GroupFill: 0,
				DeclaredGroupPages: 1, TotalPages: 4,
			},
		},
		{
			name:       "Full capacity",
			eventBytes: 200 * section.PageSize,
			groupBytes: 55 * section.PageSize,
			want: Layout{
				EventBytes: 819200, EventPages: 200,
				GroupOffset: 201, GroupBytes: 225280, GroupPages: 55,
				DeclaredGroupPages: 55, TotalPages: 256,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLayout(tt.eventBytes, tt.groupBytes, false)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.TotalPages, got.UsedPages())
			require.Equal(t, section.CapacityPages-got.TotalPages, got.FreePages())
		})
	}
}

func TestComputeLayout_Legacy(t *testing.T) {
	t.Run("Group length follows event bytes", func(t *testing.T) {
		got, err := ComputeLayout(9000, 123, true)
		require.NoError(t, err)
		require.Equal(t, 3, got.EventPages)
		require.Equal(t, 1, got.GroupPages)
		require.Equal(t, 3, got.DeclaredGroupPages)
		require.Equal(t, 7, got.TotalPages)
		require.Equal(t, 5, got.UsedPages())
	})

	t.Run("Same as corrected layout for small event sections", func(t *testing.T) {
		legacy, err := ComputeLayout(252, 123, true)
		require.NoError(t, err)
		fixed, err := ComputeLayout(252, 123, false)
		require.NoError(t, err)
		require.Equal(t, fixed, legacy)
	})

	t.Run("Aligned group bytes", func(t *testing.T) {
		got, err := ComputeLayout(100, section.PageSize, true)
		require.NoError(t, err)
		require.Equal(t, 0, got.DeclaredGroupPages)
		require.Equal(t, 2, got.TotalPages)
	})
}

func TestComputeLayout_TooLarge(t *testing.T) {
	_, err := ComputeLayout(255*section.PageSize+1, 0, false)
	require.ErrorIs(t, err, errs.ErrCatalogTooLarge)

	_, err = ComputeLayout(200*section.PageSize, 56*section.PageSize, false)
	require.ErrorIs(t, err, errs.ErrCatalogTooLarge)

	// Legacy declared length can overflow even when the data fits.
	_, err = ComputeLayout(170*section.PageSize, 1, true)
	require.ErrorIs(t, err, errs.ErrCatalogTooLarge)
}
