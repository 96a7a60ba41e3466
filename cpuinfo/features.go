package cpuinfo

import (
	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/leaf"
)

// FeatureInfo is the result of leaf 1, the version and feature
// information leaf.
//
// EAX holds the processor signature:
//
//	31:28 reserved
//	27:20 extended family id
//	19:16 extended model id
//	15:12 processor type (and reserved)
//	11:8  family id
//	7:4   model
//	3:0   stepping id
//
// EBX holds, from the low byte up: brand index, CLFLUSH line size (in
// 8-byte units), maximum addressable logical processor ids, and the
// initial local APIC id. ECX and EDX are the feature flag words; they
// are kept but not decoded here.
type FeatureInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// DecodeFeatures wraps a leaf 1 result.
func DecodeFeatures(r cpuid.Result) (FeatureInfo, error) {
	if err := checkLeaf(r, leaf.FeatureInformation); err != nil {
		return FeatureInfo{}, err
	}

	return FeatureInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, nil
}

// ExtendedFamilyID is EAX[27:20].
func (f FeatureInfo) ExtendedFamilyID() uint8 {
	return uint8((f.EAX >> 20) & 0xff)
}

// ExtendedModelID is EAX[19:16].
func (f FeatureInfo) ExtendedModelID() uint8 {
	return uint8((f.EAX >> 16) & 0x0f)
}

// FamilyID is EAX[11:8].
func (f FeatureInfo) FamilyID() uint8 {
	return uint8((f.EAX >> 8) & 0x0f)
}

// Model is EAX[7:4].
func (f FeatureInfo) Model() uint8 {
	return uint8((f.EAX >> 4) & 0x0f)
}

// SteppingID is EAX[3:0].
func (f FeatureInfo) SteppingID() uint8 {
	return uint8(f.EAX & 0x0f)
}

// BrandIndex is EBX[7:0].
func (f FeatureInfo) BrandIndex() uint8 {
	return uint8(f.EBX)
}

// CLFlushLineSize is EBX[15:8], in units of 8 bytes.
func (f FeatureInfo) CLFlushLineSize() uint8 {
	return uint8(f.EBX >> 8)
}

// LocalAPICID is EBX[31:24]. It identifies the logical processor that
// executed CPUID, so it differs from core to core.
func (f FeatureInfo) LocalAPICID() uint8 {
	return uint8(f.EBX >> 24)
}

// CLFlushLineBytes is the CLFLUSH line size in bytes.
func (f FeatureInfo) CLFlushLineBytes() uint {
	return uint(f.CLFlushLineSize()) * 8
}

// DisplayFamily combines the family fields the way the SDM describes:
// the extended family only counts when the family id is 0xF.
func (f FeatureInfo) DisplayFamily() uint {
	family := uint(f.FamilyID())
	if family == 0xf {
		family += uint(f.ExtendedFamilyID())
	}

	return family
}

// DisplayModel prepends the extended model id for family 0x6 and 0xF.
func (f FeatureInfo) DisplayModel() uint {
	model := uint(f.Model())
	if fam := f.FamilyID(); fam == 0x6 || fam == 0xf {
		model += uint(f.ExtendedModelID()) << 4
	}

	return model
}
