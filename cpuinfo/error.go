package cpuinfo

import (
	"errors"
	"fmt"

	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/leaf"
)

var (
	// ErrWrongLeaf is returned when a decoder is handed a result that
	// came from a different leaf than the one it understands.
	ErrWrongLeaf = errors.New("wrong leaf category")

	// ErrInvalidVendorEncoding is returned when the vendor words hold
	// bytes outside printable ASCII.
	ErrInvalidVendorEncoding = errors.New("invalid vendor encoding")
)

func checkLeaf(r cpuid.Result, want leaf.Category) error {
	if r.Leaf != want.Selector() {
		return fmt.Errorf("got leaf 0x%x, %s is 0x%x:%w",
			r.Leaf, want, want.Selector(), ErrWrongLeaf)
	}

	return nil
}
