package cpuinfo

import (
	"encoding/binary"
	"fmt"

	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/leaf"
)

// VendorInfo holds the three words of leaf 0 that spell the vendor
// identification string.
type VendorInfo struct {
	EBX uint32
	ECX uint32
	EDX uint32
}

// DecodeVendor extracts the vendor words from a leaf 0 result.
func DecodeVendor(r cpuid.Result) (VendorInfo, error) {
	if err := checkLeaf(r, leaf.VendorInformation); err != nil {
		return VendorInfo{}, err
	}

	return VendorInfo{EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, nil
}

// Bytes returns the 12 vendor bytes. The register order is EBX, EDX,
// ECX, each little-endian; "GenuineIntel" is "Genu" "ineI" "ntel".
func (v VendorInfo) Bytes() [12]byte {
	var b [12]byte

	binary.LittleEndian.PutUint32(b[0:4], v.EBX)
	binary.LittleEndian.PutUint32(b[4:8], v.EDX)
	binary.LittleEndian.PutUint32(b[8:12], v.ECX)

	return b
}

// Text returns the vendor string, or ErrInvalidVendorEncoding if any
// byte is not printable ASCII.
func (v VendorInfo) Text() (string, error) {
	b := v.Bytes()

	for i, c := range b {
		if !printable(c) {
			return "", fmt.Errorf("byte 0x%02x at offset %d:%w", c, i, ErrInvalidVendorEncoding)
		}
	}

	return string(b[:]), nil
}

// String returns the vendor string with every byte that is not
// printable ASCII replaced by '?'. The result is always 12 characters.
func (v VendorInfo) String() string {
	b := v.Bytes()

	for i, c := range b {
		if !printable(c) {
			b[i] = '?'
		}
	}

	return string(b[:])
}

// Vendor maps the vendor string to a known manufacturer.
func (v VendorInfo) Vendor() Vendor {
	s, err := v.Text()
	if err != nil {
		return VendorUnknown
	}

	if vendor, ok := vendorMap[s]; ok {
		return vendor
	}

	return VendorUnknown
}

func printable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// Vendor is a processor manufacturer as reported by leaf 0.
type Vendor int

const (
	VendorUnknown Vendor = iota
	Intel
	AMD
	Hygon
	VIA
	Zhaoxin
	Transmeta
	NSC
)

//nolint:gochecknoglobals
var vendorMap = map[string]Vendor{
	"GenuineIntel": Intel,
	"AuthenticAMD": AMD,
	"AMDisbetter!": AMD, // early K5 engineering samples
	"HygonGenuine": Hygon,
	"CentaurHauls": VIA,
	"VIA VIA VIA ": VIA,
	"  Shanghai  ": Zhaoxin,
	"GenuineTMx86": Transmeta,
	"TransmetaCPU": Transmeta,
	"Geode by NSC": NSC,
}

func (v Vendor) String() string {
	switch v {
	case Intel:
		return "Intel"
	case AMD:
		return "AMD"
	case Hygon:
		return "Hygon"
	case VIA:
		return "VIA"
	case Zhaoxin:
		return "Zhaoxin"
	case Transmeta:
		return "Transmeta"
	case NSC:
		return "NSC"
	default:
		return "Unknown"
	}
}
