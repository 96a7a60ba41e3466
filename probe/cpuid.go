package probe

import (
	"fmt"
	"io"

	"github.com/bobuhiro11/gocpuid/cpuinfo"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Report is the decoded view of leaves 0 and 1 plus the range limits.
type Report struct {
	Vendor          string    `json:"vendor" yaml:"vendor"`
	Manufacturer    string    `json:"manufacturer" yaml:"manufacturer"`
	MaxStandardLeaf Hex       `json:"max-standard-leaf" yaml:"max-standard-leaf"`
	MaxExtendedLeaf Hex       `json:"max-extended-leaf" yaml:"max-extended-leaf"`
	Signature       Signature `json:"signature" yaml:"signature"`
	BrandIndex      uint8     `json:"brand-index" yaml:"brand-index"`
	CLFlushLineSize uint      `json:"clflush-line-size" yaml:"clflush-line-size"`
	LocalAPICID     uint8     `json:"local-apic-id" yaml:"local-apic-id"`
}

// Signature is the decoded processor signature of leaf 1.
type Signature struct {
	Family           uint  `json:"family" yaml:"family"`
	Model            uint  `json:"model" yaml:"model"`
	Stepping         uint8 `json:"stepping" yaml:"stepping"`
	FamilyID         uint8 `json:"family-id" yaml:"family-id"`
	ExtendedFamilyID uint8 `json:"extended-family-id" yaml:"extended-family-id"`
	ModelID          uint8 `json:"model-id" yaml:"model-id"`
	ExtendedModelID  uint8 `json:"extended-model-id" yaml:"extended-model-id"`
	Raw              Hex   `json:"raw" yaml:"raw"`
}

// NewReport queries c and decodes the result.
func NewReport(c cpuinfo.CPU) Report {
	v := c.GetVendorInformation()
	f := c.GetFeatureInformation()

	logrus.Debugf("leaf 0x0: ebx=0x%08x ecx=0x%08x edx=0x%08x", v.EBX, v.ECX, v.EDX)
	logrus.Debugf("leaf 0x1: eax=0x%08x ebx=0x%08x", f.EAX, f.EBX)

	return Report{
		Vendor:          v.String(),
		Manufacturer:    v.Vendor().String(),
		MaxStandardLeaf: Hex(c.MaxStandardLeaf()),
		MaxExtendedLeaf: Hex(c.MaxExtendedLeaf()),
		Signature: Signature{
			Family:           f.DisplayFamily(),
			Model:            f.DisplayModel(),
			Stepping:         f.SteppingID(),
			FamilyID:         f.FamilyID(),
			ExtendedFamilyID: f.ExtendedFamilyID(),
			ModelID:          f.Model(),
			ExtendedModelID:  f.ExtendedModelID(),
			Raw:              Hex(f.EAX),
		},
		BrandIndex:      f.BrandIndex(),
		CLFlushLineSize: f.CLFlushLineBytes(),
		LocalAPICID:     f.LocalAPICID(),
	}
}

// CPUID prints the decoded vendor and feature information of c.
func CPUID(w io.Writer, c cpuinfo.CPU, format Format) error {
	r := NewReport(c)

	return write(w, format, r, r.writeText)
}

func (r Report) writeText(w io.Writer) error {
	label := color.New(color.Bold).SprintFunc()

	lines := []struct {
		name  string
		value string
	}{
		{"Vendor", fmt.Sprintf("%s (%s)", r.Vendor, r.Manufacturer)},
		{"Max standard leaf", r.MaxStandardLeaf.String()},
		{"Max extended leaf", r.MaxExtendedLeaf.String()},
		{"Signature", r.Signature.Raw.String()},
		{"Family", fmt.Sprintf("0x%x (family id 0x%x, extended 0x%x)",
			r.Signature.Family, r.Signature.FamilyID, r.Signature.ExtendedFamilyID)},
		{"Model", fmt.Sprintf("0x%x (model 0x%x, extended 0x%x)",
			r.Signature.Model, r.Signature.ModelID, r.Signature.ExtendedModelID)},
		{"Stepping", fmt.Sprintf("%d", r.Signature.Stepping)},
		{"Brand index", fmt.Sprintf("%d", r.BrandIndex)},
		{"CLFLUSH line size", fmt.Sprintf("%d bytes", r.CLFlushLineSize)},
		{"Local APIC id", fmt.Sprintf("%d", r.LocalAPICID)},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", label(fmt.Sprintf("%-18s", l.name+":")), l.value); err != nil {
			return err
		}
	}

	return nil
}
