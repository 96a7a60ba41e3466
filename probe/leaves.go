package probe

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bobuhiro11/gocpuid/cpuid"
	"github.com/bobuhiro11/gocpuid/cpuinfo"
	"github.com/bobuhiro11/gocpuid/leaf"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Record is one raw query, labelled with its catalog entry if it has one.
type Record struct {
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Leaf      Hex    `json:"leaf" yaml:"leaf"`
	Subleaf   Hex    `json:"subleaf" yaml:"subleaf"`
	Supported *bool  `json:"supported,omitempty" yaml:"supported,omitempty"`
	EAX       Hex    `json:"eax" yaml:"eax"`
	EBX       Hex    `json:"ebx" yaml:"ebx"`
	ECX       Hex    `json:"ecx" yaml:"ecx"`
	EDX       Hex    `json:"edx" yaml:"edx"`
}

func newRecord(r cpuid.Result) Record {
	rec := Record{
		Leaf:    Hex(r.Leaf),
		Subleaf: Hex(r.Subleaf),
		EAX:     Hex(r.EAX),
		EBX:     Hex(r.EBX),
		ECX:     Hex(r.ECX),
		EDX:     Hex(r.EDX),
	}

	if d, ok := leaf.Lookup(r.Leaf); ok {
		rec.Category = d.Category.String()
		rec.Label = d.Label
	}

	return rec
}

// CollectLeaves queries every catalogued leaf at sub-leaf 0.
func CollectLeaves(c cpuinfo.CPU) []Record {
	records := make([]Record, 0, len(leaf.Catalog()))

	for _, cat := range leaf.Categories() {
		r := c.QueryCategory(cat)
		supported := c.Supported(cat)

		logrus.Debugf("%s supported=%v", r, supported)

		rec := newRecord(r)
		rec.Supported = &supported
		records = append(records, rec)
	}

	return records
}

// Leaves prints the raw words of every catalogued leaf.
func Leaves(w io.Writer, c cpuinfo.CPU, format Format) error {
	records := CollectLeaves(c)

	return write(w, format, records, func(w io.Writer) error {
		return writeTable(w, records)
	})
}

// Query prints the raw words of a single leaf/subleaf.
func Query(w io.Writer, c cpuinfo.CPU, selector, subleaf uint32, format Format) error {
	r := c.Query2(selector, subleaf)
	logrus.Debug(r)

	rec := newRecord(r)

	return write(w, format, rec, func(w io.Writer) error {
		return writeTable(w, []Record{rec})
	})
}

func writeTable(w io.Writer, records []Record) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Leaf", "Subleaf", "EAX", "EBX", "ECX", "EDX", "Supported", "Label"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, r := range records {
		supported := "-"
		if r.Supported != nil {
			supported = strconv.FormatBool(*r.Supported)
		}

		table.Append([]string{
			r.Leaf.String(), fmt.Sprintf("%d", uint32(r.Subleaf)),
			r.EAX.String(), r.EBX.String(), r.ECX.String(), r.EDX.String(),
			supported, r.Label,
		})
	}

	table.Render()

	return nil
}
