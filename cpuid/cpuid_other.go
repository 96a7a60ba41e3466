//go:build !386 && !amd64

package cpuid

// There is no CPUID on this architecture; every leaf reads as zero.
func cpuidLow(arg1, arg2 uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
