// Package cpuid runs the CPUID instruction and hands back the four
// registers verbatim. Nothing here interprets the words; see package
// cpuinfo for that.
package cpuid

import "fmt"

// Result is the verbatim register contents of one CPUID invocation.
// Leaf and Subleaf record the selector that produced the words, so a
// decoder can tell which page of information it is looking at.
type Result struct {
	Leaf    uint32
	Subleaf uint32
	EAX     uint32
	EBX     uint32
	ECX     uint32
	EDX     uint32
}

// Words returns EAX, EBX, ECX and EDX in that order.
func (r Result) Words() [4]uint32 {
	return [4]uint32{r.EAX, r.EBX, r.ECX, r.EDX}
}

func (r Result) String() string {
	return fmt.Sprintf("leaf 0x%08x/0x%x: eax=0x%08x ebx=0x%08x ecx=0x%08x edx=0x%08x",
		r.Leaf, r.Subleaf, r.EAX, r.EBX, r.ECX, r.EDX)
}

// Func is a CPUID primitive. Query2 is the hardware one; tests swap in
// stubs returning fixed words.
type Func func(leaf, subleaf uint32) Result

// Query runs f with subleaf 0.
func (f Func) Query(leaf uint32) Result {
	return f.Query2(leaf, 0)
}

// Query2 runs f. A nil Func falls back to the hardware primitive.
func (f Func) Query2(leaf, subleaf uint32) Result {
	if f == nil {
		return Query2(leaf, subleaf)
	}

	return f(leaf, subleaf)
}

// Query executes CPUID with EAX=leaf and ECX=0.
func Query(leaf uint32) Result {
	return Query2(leaf, 0)
}

// Query2 executes CPUID with EAX=leaf and ECX=subleaf. The instruction
// cannot fail: leaves the processor does not know come back with
// whatever it reports for them, usually zeros or a copy of the highest
// basic leaf.
func Query2(leaf, subleaf uint32) Result {
	eax, ebx, ecx, edx := cpuidLow(leaf, subleaf)

	return Result{
		Leaf:    leaf,
		Subleaf: subleaf,
		EAX:     eax,
		EBX:     ebx,
		ECX:     ecx,
		EDX:     edx,
	}
}

// CPUID returns the raw registers for leaf with subleaf 0.
func CPUID(leaf uint32) (uint32, uint32, uint32, uint32) {
	return cpuidLow(leaf, 0)
}
