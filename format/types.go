package format

import "fmt"

type (
	// Domain is the hardware domain a counter is scoped to.
	Domain uint8
	// SectionKind identifies one of the four section descriptors in the catalog header.
	SectionKind uint8
)

const (
	DomainPhysChip       Domain = 0x1 // DomainPhysChip counts per physical chip.
	DomainPhysCore       Domain = 0x2 // DomainPhysCore counts per physical core.
	DomainVCPUHomeCore   Domain = 0x3 // DomainVCPUHomeCore counts on the vCPU's home core.
	DomainVCPUHomeChip   Domain = 0x4 // DomainVCPUHomeChip counts on the vCPU's home chip.
	DomainVCPUHomeNode   Domain = 0x5 // DomainVCPUHomeNode counts on the vCPU's home node.
	DomainVCPURemoteNode Domain = 0x6 // DomainVCPURemoteNode counts on a remote node.

	SectionSchema  SectionKind = 0x0
	SectionEvent   SectionKind = 0x1
	SectionGroup   SectionKind = 0x2
	SectionFormula SectionKind = 0x3
)

// SectionKinds lists the header section descriptors in on-disk order.
var SectionKinds = [...]SectionKind{SectionSchema, SectionEvent, SectionGroup, SectionFormula}

func (d Domain) String() string {
	switch d {
	case DomainPhysChip:
		return "PhysChip"
	case DomainPhysCore:
		return "PhysCore"
	case DomainVCPUHomeCore:
		return "VCPUHomeCore"
	case DomainVCPUHomeChip:
		return "VCPUHomeChip"
	case DomainVCPUHomeNode:
		return "VCPUHomeNode"
	case DomainVCPURemoteNode:
		return "VCPURemoteNode"
	default:
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
}

func (k SectionKind) String() string {
	switch k {
	case SectionSchema:
		return "schema"
	case SectionEvent:
		return "event"
	case SectionGroup:
		return "group"
	case SectionFormula:
		return "formula"
	default:
		return "unknown"
	}
}
