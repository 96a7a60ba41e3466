package cpuinfo_test

import (
	"errors"
	"testing"

	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/cpuinfo"
	"github.com/bobuhiro11/gocpuid/leaf"
	"github.com/google/go-cmp/cmp"
)

func TestCPUWithFixtures(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		query    cpuid.Func
		vendor   string
		family   uint
		model    uint
		stepping uint8
		apic     uint8
	}{
		{"intel", intelIvyBridge, "GenuineIntel", 0x06, 0x3a, 9, 2},
		{"amd", amdZen2, "AuthenticAMD", 0x17, 0x71, 0, 0x0b},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cpuinfo.New(tt.query)

			v := c.GetVendorInformation()
			if v.String() != tt.vendor {
				t.Fatalf("expected: %q, actual: %q", tt.vendor, v.String())
			}

			f := c.GetFeatureInformation()
			if f.DisplayFamily() != tt.family || f.DisplayModel() != tt.model {
				t.Fatalf("expected %x/%x, actual %x/%x", tt.family, tt.model, f.DisplayFamily(), f.DisplayModel())
			}

			if f.SteppingID() != tt.stepping || f.LocalAPICID() != tt.apic {
				t.Fatalf("unexpected stepping %d or apic id %d", f.SteppingID(), f.LocalAPICID())
			}
		})
	}
}

func TestCPURepeatable(t *testing.T) {
	t.Parallel()

	for _, c := range []cpuinfo.CPU{{}, cpuinfo.New(intelIvyBridge)} {
		if diff := cmp.Diff(c.GetVendorInformation(), c.GetVendorInformation()); diff != "" {
			t.Fatalf("vendor changed between calls (-first +second):\n%s", diff)
		}

		first, second := c.GetFeatureInformation(), c.GetFeatureInformation()

		// EBX[31:24] is the APIC id of whichever core ran the query
		if first.EAX != second.EAX || first.ECX != second.ECX || first.EDX != second.EDX {
			t.Fatalf("signature changed between calls: %+v vs %+v", first, second)
		}
	}
}

func TestCPURawQuery(t *testing.T) {
	t.Parallel()

	c := cpuinfo.New(amdZen2)

	r := c.Query2(0x4, 3)
	if r.Leaf != 4 || r.Subleaf != 3 || r.Words() != [4]uint32{} {
		t.Fatalf("unexpected result for unknown leaf: %v", r)
	}

	if r := c.Query(0x80000000); r.EAX != 0x8000001f {
		t.Fatalf("unexpected extended max: %v", r)
	}

	if r := c.QueryCategory(leaf.FeatureInformation); r.EAX != 0x00870f10 {
		t.Fatalf("unexpected leaf 1: %v", r)
	}

	// real hardware, reserved leaf: no panic, no error
	t.Log(cpuinfo.CPU{}.Query2(0x4fffffff, 0))
}

func TestCPUSupported(t *testing.T) {
	t.Parallel()

	c := cpuinfo.New(intelIvyBridge)

	if c.MaxStandardLeaf() != 0xd || c.MaxExtendedLeaf() != 0x80000008 {
		t.Fatalf("unexpected max leaves 0x%x 0x%x", c.MaxStandardLeaf(), c.MaxExtendedLeaf())
	}

	for cat, want := range map[leaf.Category]bool{
		leaf.VendorInformation:      true,
		leaf.ProcessorExtendedState: true,
		leaf.QualityOfService:       false,
		leaf.ExtendedFunction:       true,
		leaf.Category(99):           false,
	} {
		if got := c.Supported(cat); got != want {
			t.Errorf("%s: expected %v, actual %v", cat, want, got)
		}
	}

	noExtended := cpuinfo.New(fixture(map[uint32][4]uint32{0x0: {0x1, 0, 0, 0}}))
	if noExtended.Supported(leaf.ExtendedFunction) || noExtended.Supported(leaf.CacheInformation) {
		t.Error("leaves beyond the reported maximum should be unsupported")
	}
}

func TestCPUMislabelingPrimitive(t *testing.T) {
	t.Parallel()

	c := cpuinfo.New(func(_, subleaf uint32) cpuid.Result {
		return cpuid.Result{Leaf: 0x42, Subleaf: subleaf}
	})

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, cpuinfo.ErrWrongLeaf) {
			t.Fatalf("expected a panic with ErrWrongLeaf, got %v", err)
		}
	}()

	c.GetVendorInformation()
}
