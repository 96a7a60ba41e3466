package cpuinfo_test

import "github.com/bobuhiro11/gocpuid/cpuid"

// fixture returns a primitive that answers from a fixed table and reads
// every other leaf as zero, like a processor that doesn't know it.
func fixture(table map[uint32][4]uint32) cpuid.Func {
	return func(leaf, subleaf uint32) cpuid.Result {
		w := table[leaf]

		return cpuid.Result{
			Leaf:    leaf,
			Subleaf: subleaf,
			EAX:     w[0],
			EBX:     w[1],
			ECX:     w[2],
			EDX:     w[3],
		}
	}
}

// Ivy Bridge, family 6 model 0x3A stepping 9.
//
//nolint:gochecknoglobals
var intelIvyBridge = fixture(map[uint32][4]uint32{
	0x0:        {0x0000000d, 0x756e6547, 0x6c65746e, 0x49656e69},
	0x1:        {0x000306a9, 0x02100800, 0x7fbae3ff, 0xbfebfbff},
	0x80000000: {0x80000008, 0, 0, 0},
})

// Zen 2, family 0x17 model 0x71 stepping 0.
//
//nolint:gochecknoglobals
var amdZen2 = fixture(map[uint32][4]uint32{
	0x0:        {0x00000010, 0x68747541, 0x444d4163, 0x69746e65},
	0x1:        {0x00870f10, 0x0b100800, 0x7ed8320b, 0x178bfbff},
	0x80000000: {0x8000001f, 0x68747541, 0x444d4163, 0x69746e65},
})
