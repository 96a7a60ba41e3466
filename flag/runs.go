package flag

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/bobuhiro11/gocpuid/cpuinfo"
	"github.com/bobuhiro11/gocpuid/probe"
	"github.com/sirupsen/logrus"
)

const (
	programName = "gocpuid"
	programDesc = "gocpuid queries the CPUID instruction and decodes what it reports"
)

func options(w io.Writer, c cpuinfo.CPU) []kong.Option {
	return []kong.Option{
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.BindTo(w, (*io.Writer)(nil)),
		kong.Bind(c),
	}
}

// Parse parses os.Args and runs the selected command against the
// processor this program runs on.
func Parse() error {
	c := CLI{}

	ctx := kong.Parse(&c, options(os.Stdout, cpuinfo.CPU{})...)

	return run(ctx, &c)
}

// Run parses args (without the program name) and runs the selected
// command against c, writing to w.
func Run(args []string, w io.Writer, c cpuinfo.CPU) error {
	cli := CLI{}

	parser, err := kong.New(&cli, options(w, c)...)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return run(ctx, &cli)
}

func run(ctx *kong.Context, c *CLI) error {
	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Debugf("running %q", ctx.Command())

	return ctx.Run()
}

func (p *ProbeCMD) Run(w io.Writer, c cpuinfo.CPU) error {
	format, err := probe.ParseFormat(p.Format)
	if err != nil {
		return err
	}

	return probe.CPUID(w, c, format)
}

func (l *LeavesCMD) Run(w io.Writer, c cpuinfo.CPU) error {
	format, err := probe.ParseFormat(l.Format)
	if err != nil {
		return err
	}

	return probe.Leaves(w, c, format)
}

func (q *QueryCMD) Run(w io.Writer, c cpuinfo.CPU) error {
	format, err := probe.ParseFormat(q.Format)
	if err != nil {
		return err
	}

	selector, err := ParseUint32(q.Leaf)
	if err != nil {
		return err
	}

	subleaf, err := ParseUint32(q.Subleaf)
	if err != nil {
		return err
	}

	return probe.Query(w, c, selector, subleaf, format)
}
