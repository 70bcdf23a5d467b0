package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomain_String(t *testing.T) {
	require.Equal(t, "PhysChip", DomainPhysChip.String())
	require.Equal(t, "VCPURemoteNode", DomainVCPURemoteNode.String())
	require.Equal(t, "Domain(42)", Domain(42).String())
}

func TestSectionKind_String(t *testing.T) {
	names := make([]string, 0, len(SectionKinds))
	for _, k := range SectionKinds {
		names = append(names, k.String())
	}

	require.Equal(t, []string{"schema", "event", "group", "formula"}, names)
	require.Equal(t, "unknown", SectionKind(9).String())
}
