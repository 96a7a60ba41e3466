//go:build 386 || amd64

package cpuid

// implemented in cpuid_386.s and cpuid_amd64.s
func cpuidLow(arg1, arg2 uint32) (eax, ebx, ecx, edx uint32)
