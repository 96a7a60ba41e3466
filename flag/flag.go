package flag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadNumber is returned when a leaf or sub-leaf argument is not a
// 32-bit unsigned number.
var ErrBadNumber = errors.New("not a 32-bit unsigned number")

// ParseUint32 parses a leaf or sub-leaf selector. Any Go base prefix is
// accepted (0x80000000, 0b100, 0o17, 4), as are a trailing 'h' for hex
// the way the SDM writes leaves (0Dh) and '_' digit separators.
func ParseUint32(s string) (uint32, error) {
	n := strings.TrimSpace(s)
	if len(n) == 0 {
		return 0, fmt.Errorf("%q:%w", s, ErrBadNumber)
	}

	base := 0
	if strings.HasSuffix(n, "h") || strings.HasSuffix(n, "H") {
		n = n[:len(n)-1]
		base = 16
	}

	v, err := strconv.ParseUint(n, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%q:%v:%w", s, err, ErrBadNumber)
	}

	return uint32(v), nil
}

// CLI is the command line of gocpuid.
type CLI struct {
	Verbose bool `short:"v" help:"Log the raw words of every query to stderr."`

	Probe  ProbeCMD  `cmd:"" default:"1" help:"Print the vendor and processor signature."`
	Leaves LeavesCMD `cmd:"" help:"Dump the raw words of every known leaf."`
	Query  QueryCMD  `cmd:"" help:"Run CPUID for an arbitrary leaf and sub-leaf."`
}

type ProbeCMD struct {
	Format string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}

type LeavesCMD struct {
	Format string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}

type QueryCMD struct {
	Leaf    string `arg:"" help:"Leaf selector, e.g. 4, 0xb or 80000000h."`
	Subleaf string `arg:"" optional:"" default:"0" help:"Sub-leaf selector."`
	Format  string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}
