// Package leaf is the catalog of CPUID leaves this module knows about.
//
// The selectors are the values the processor recognizes in EAX. The
// table is ordered by selector; the extended range (0x80000000 and up)
// is a separate address space and comes last. References:
// Intel SDM Vol. 2A, "CPUID - CPU Identification", Table 3-8.
package leaf

import "strconv"

// Category is one kind of CPUID leaf. The set is closed.
type Category uint8

const (
	VendorInformation Category = iota
	FeatureInformation
	CacheInformation
	ProcessorSerial
	CacheParameters
	MonitorMwait
	ThermalPowerManagement
	StructuredExtendedFeature
	DirectCacheAccess
	PerformanceMonitoring
	ExtendedTopology
	ProcessorExtendedState
	QualityOfService
	ExtendedFunction

	numCategories
)

// ExtendedBase is the first selector of the extended function range.
const ExtendedBase uint32 = 0x80000000

// Descriptor is one catalog entry.
type Descriptor struct {
	Category Category
	Label    string
	Selector uint32
}

//nolint:gochecknoglobals
var catalog = [numCategories]Descriptor{
	{VendorInformation, "Vendor Identification String", 0x0},
	{FeatureInformation, "Version/Feature Information", 0x1},
	{CacheInformation, "Cache and TLB Information", 0x2},
	{ProcessorSerial, "Processor serial number", 0x3},
	{CacheParameters, "Deterministic Cache Parameters", 0x4},
	{MonitorMwait, "MONITOR/MWAIT", 0x5},
	{ThermalPowerManagement, "Thermal and Power Management", 0x6},
	{StructuredExtendedFeature, "Structured Extended Feature Flags", 0x7},
	{DirectCacheAccess, "Direct Cache Access Information", 0x9},
	{PerformanceMonitoring, "Architectural Performance Monitoring", 0xA},
	{ExtendedTopology, "Extended Topology Enumeration", 0xB},
	{ProcessorExtendedState, "Processor Extended State Enumeration", 0xD},
	{QualityOfService, "Quality of Service", 0xF},
	{ExtendedFunction, "Extended Function CPUID Information", ExtendedBase},
}

//nolint:gochecknoglobals
var names = [numCategories]string{
	"VendorInformation",
	"FeatureInformation",
	"CacheInformation",
	"ProcessorSerial",
	"CacheParameters",
	"MonitorMwait",
	"ThermalPowerManagement",
	"StructuredExtendedFeature",
	"DirectCacheAccess",
	"PerformanceMonitoring",
	"ExtendedTopology",
	"ProcessorExtendedState",
	"QualityOfService",
	"ExtendedFunction",
}

// Catalog returns a copy of the table in catalog order.
func Catalog() []Descriptor {
	d := make([]Descriptor, len(catalog))
	copy(d, catalog[:])

	return d
}

// Categories returns every category in catalog order.
func Categories() []Category {
	c := make([]Category, 0, numCategories)
	for i := Category(0); i < numCategories; i++ {
		c = append(c, i)
	}

	return c
}

// Lookup finds the descriptor for a selector.
func Lookup(selector uint32) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Selector == selector {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// Descriptor returns the catalog entry for c. It panics on an invalid
// category, like indexing past the end of an array.
func (c Category) Descriptor() Descriptor {
	return catalog[c]
}

// Selector is the EAX value that requests this leaf.
func (c Category) Selector() uint32 {
	return catalog[c].Selector
}

// Label is the human readable name of the leaf.
func (c Category) Label() string {
	return catalog[c].Label
}

// Extended reports whether the leaf lives in the 0x80000000 range.
func (c Category) Extended() bool {
	return c.Valid() && catalog[c].Selector >= ExtendedBase
}

func (c Category) String() string {
	if !c.Valid() {
		return "Category(" + strconv.FormatInt(int64(c), 10) + ")"
	}

	return names[c]
}
