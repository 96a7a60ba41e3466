package leaf_test

import (
	"testing"

	"github.com/bobuhiro11/gocpuid/leaf"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	want := []uint32{0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x9, 0xA, 0xB, 0xD, 0xF, 0x80000000}

	c := leaf.Catalog()
	if len(c) != 14 {
		t.Fatalf("expected 14 entries, got %d", len(c))
	}

	for i, d := range c {
		if d.Selector != want[i] {
			t.Errorf("entry %d (%s): expected selector 0x%x, got 0x%x", i, d.Category, want[i], d.Selector)
		}

		if d.Category != leaf.Category(i) {
			t.Errorf("entry %d: category %s is out of order", i, d.Category)
		}

		if d.Label == "" {
			t.Errorf("entry %d (%s) has no label", i, d.Category)
		}

		if i > 0 && d.Selector <= c[i-1].Selector {
			t.Errorf("entry %d: selectors not ascending", i)
		}
	}

	if last := c[len(c)-1]; last.Category != leaf.ExtendedFunction {
		t.Fatalf("last entry is %s", last.Category)
	}
}

func TestCatalogIsCopy(t *testing.T) {
	t.Parallel()

	c := leaf.Catalog()
	c[0].Selector = 0x42
	c[0].Label = "scribbled"

	if leaf.VendorInformation.Selector() != 0 {
		t.Fatal("catalog mutated through Catalog()")
	}

	if leaf.VendorInformation.Label() == "scribbled" {
		t.Fatal("catalog label mutated through Catalog()")
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	for _, c := range leaf.Categories() {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}

		d := c.Descriptor()
		if d.Category != c || d.Selector != c.Selector() || d.Label != c.Label() {
			t.Errorf("%s: descriptor mismatch %+v", c, d)
		}

		if c.Extended() != (c == leaf.ExtendedFunction) {
			t.Errorf("%s: Extended() = %v", c, c.Extended())
		}
	}

	if leaf.FeatureInformation.Selector() != 1 {
		t.Errorf("FeatureInformation selector: 0x%x", leaf.FeatureInformation.Selector())
	}

	if leaf.QualityOfService.String() != "QualityOfService" {
		t.Errorf("unexpected name %q", leaf.QualityOfService.String())
	}

	bogus := leaf.Category(200)
	if bogus.Valid() || bogus.Extended() {
		t.Error("Category(200) should be invalid")
	}

	if bogus.String() != "Category(200)" {
		t.Errorf("unexpected name %q", bogus.String())
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, d := range leaf.Catalog() {
		got, ok := leaf.Lookup(d.Selector)
		if !ok || got != d {
			t.Errorf("Lookup(0x%x) = %+v, %v", d.Selector, got, ok)
		}
	}

	// 0x8 and 0xE are reserved; 0x80000001 is real but not catalogued
	for _, sel := range []uint32{0x8, 0xE, 0x10, 0x80000001} {
		if d, ok := leaf.Lookup(sel); ok {
			t.Errorf("Lookup(0x%x) unexpectedly found %s", sel, d.Category)
		}
	}
}
