// Package cpuinfo decodes CPUID results into typed views: the vendor
// string of leaf 0 and the processor signature of leaf 1.
package cpuinfo

import (
	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/leaf"
)

// CPU is a handle on the identification instruction. The zero value
// queries the processor the calling goroutine happens to run on; New
// injects another primitive. CPU holds no state of its own and nothing
// is cached, so it is safe for concurrent use.
type CPU struct {
	query cpuid.Func
}

// New returns a CPU backed by f. A nil f means the hardware primitive.
func New(f cpuid.Func) CPU {
	return CPU{query: f}
}

// Query returns the raw words of a leaf selector.
func (c CPU) Query(selector uint32) cpuid.Result {
	return c.query.Query(selector)
}

// Query2 returns the raw words of selector/subleaf, for leaves that
// have no typed view here (cache parameters, extended topology, ...).
func (c CPU) Query2(selector, subleaf uint32) cpuid.Result {
	return c.query.Query2(selector, subleaf)
}

// QueryCategory returns the raw words of a catalogued leaf at sub-leaf 0.
func (c CPU) QueryCategory(cat leaf.Category) cpuid.Result {
	return c.query.Query(cat.Selector())
}

// GetVendorInformation queries leaf 0 and decodes it.
func (c CPU) GetVendorInformation() VendorInfo {
	v, err := DecodeVendor(c.QueryCategory(leaf.VendorInformation))
	if err != nil {
		// only a primitive that mislabels its results gets here
		panic(err)
	}

	return v
}

// GetFeatureInformation queries leaf 1 and decodes it.
func (c CPU) GetFeatureInformation() FeatureInfo {
	f, err := DecodeFeatures(c.QueryCategory(leaf.FeatureInformation))
	if err != nil {
		panic(err)
	}

	return f
}

// MaxStandardLeaf is the highest basic leaf the processor supports.
func (c CPU) MaxStandardLeaf() uint32 {
	return c.QueryCategory(leaf.VendorInformation).EAX
}

// MaxExtendedLeaf is the highest extended leaf the processor supports.
// Processors without the extended range report something below
// leaf.ExtendedBase here.
func (c CPU) MaxExtendedLeaf() uint32 {
	return c.QueryCategory(leaf.ExtendedFunction).EAX
}

// Supported reports whether the processor implements the leaf behind cat.
func (c CPU) Supported(cat leaf.Category) bool {
	if !cat.Valid() {
		return false
	}

	if cat.Extended() {
		highest := c.MaxExtendedLeaf()

		return highest >= leaf.ExtendedBase && cat.Selector() <= highest
	}

	return cat.Selector() <= c.MaxStandardLeaf()
}
