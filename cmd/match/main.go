package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"pkt.systems/anno"
	"pkt.systems/anno/internal/cli"
	"pkt.systems/anno/internal/report"
	"pkt.systems/version"
)

const defaultMaxColumns = 64 * 1024

const boldPrefix = "\x1b[1m"

func init() {
	version.SetDefaultModule("pkt.systems/anno")
}

func main() {
	var (
		countOnly   bool
		maxColumns  int
		colorMode   string
		showVersion bool
	)
	flags := pflag.NewFlagSet("match", pflag.ExitOnError)
	flags.BoolVarP(&countOnly, "count", "c", false, "Report only number of matches")
	flags.IntVarP(&maxColumns, "max-columns", "m", defaultMaxColumns, "Handle maximum line length of <columns>")
	flags.StringVarP(&colorMode, "color", "r", "off", "Color codes in output: auto|on|off")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: match [flags] <pattern> [file|URL|-]...\n")
		fmt.Fprintln(os.Stderr, "\nSearches standard input or named inputs for exact match of pattern.")
		fmt.Fprintln(os.Stderr, "Understands only bytes, assumes binary if and only if maximum line")
		fmt.Fprintln(os.Stderr, "length is exceeded.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.Current())
		return
	}

	rep := report.Reporter{}
	colored, err := cli.ResolveColor(colorMode)
	if err != nil {
		rep.Errorf("match: invalid --color %q: %v", colorMode, err)
		os.Exit(2)
	}
	rep.Color = colored

	args := flags.Args()
	if len(args) == 0 {
		rep.Errorf("match: no match parameter")
		os.Exit(2)
	}
	pattern := []byte(args[0])

	reader, closer, err := cli.OpenInputs(args[1:])
	if err != nil {
		fatal(rep, err)
	}
	req := anno.MatchRequest{
		Pattern:    pattern,
		Reader:     reader,
		MaxColumns: maxColumns,
	}
	if !countOnly {
		req.Writer = os.Stdout
		if colored {
			req.Highlight = anno.Style{Prefix: boldPrefix}
		}
	}
	res, err := anno.Match(req)
	if err != nil {
		fatal(rep, err)
	}
	if closer != nil {
		_ = closer.Close()
	}

	if res.Binary && res.Matches > 0 && !countOnly {
		rep.Infof("binary file matches")
	}
	if countOnly {
		rep.Infof("%d matches", res.Matches)
		if !res.Binary {
			rep.Infof("%d lines match", res.MatchedLines)
		}
	}
	if res.Matches == 0 {
		os.Exit(1)
	}
}

func fatal(rep report.Reporter, err error) {
	code := report.ExitCode(err)
	rep.Errorf("match: %v (%d)", err, code)
	os.Exit(code)
}
