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

func init() {
	version.SetDefaultModule("pkt.systems/anno")
}

func main() {
	var (
		colorMode   string
		showVersion bool
	)
	flags := pflag.NewFlagSet("textstats", pflag.ExitOnError)
	flags.StringVarP(&colorMode, "color", "r", "off", "Color codes in output: auto|on|off")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: textstats [flags] [file|URL|-]...\n")
		fmt.Fprintln(os.Stderr, "\nChecks encoding and line endings, counts lines, etc.")
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
		rep.Errorf("textstats: invalid --color %q: %v", colorMode, err)
		os.Exit(2)
	}
	rep.Color = colored

	reader, closer, err := cli.OpenInputs(flags.Args())
	if err != nil {
		fatal(rep, err)
	}
	st, err := anno.CollectStats(anno.StatsRequest{Reader: reader})
	if err != nil {
		fatal(rep, err)
	}
	if closer != nil {
		_ = closer.Close()
	}
	printReport(rep, st)
}

func printReport(rep report.Reporter, st anno.Stats) {
	rep.Infof("%d lines", st.Lines)
	if st.LongestLine > 0 {
		rep.Infof("longest line %d columns", st.LongestLine)
	}
	if st.WindowsLineEndings > 0 {
		rep.Warnf("%d windows line endings", st.WindowsLineEndings)
	}
	if st.NullChars > 0 {
		rep.Errorf("%d null characters", st.NullChars)
	}
	if st.ControlChars > 0 {
		rep.Errorf("%d control characters", st.ControlChars)
	}
	if st.UpperControlChars > 0 {
		rep.Warnf("%d upper control characters", st.UpperControlChars)
	}
	if st.TrailingWhitespace > 0 {
		rep.Warnf("%d trailing whitespaces", st.TrailingWhitespace)
	}
	if st.MissingContinuations > 0 {
		rep.Errorf("%d missing utf8 continuation bytes", st.MissingContinuations)
	}
	if st.OrphanContinuations > 0 {
		rep.Errorf("%d orphan utf8 continuation bytes", st.OrphanContinuations)
	}
	if st.OverlongEncodings > 0 {
		rep.Errorf("%d overlong utf8 encodings", st.OverlongEncodings)
	}
	if st.EncodedUpperControl > 0 {
		rep.Errorf("%d utf8 upper control characters", st.EncodedUpperControl)
	}
	if st.IllegalLeadBytes > 0 {
		rep.Errorf("%d illegal utf8 encodings", st.IllegalLeadBytes)
	}
	if st.UpperPrintable > 0 {
		line := fmt.Sprintf("%d/%d finnish letters out of upper printables", st.Latin1Finnish, st.UpperPrintable)
		if 100*st.Latin1Finnish/st.UpperPrintable > 80 {
			rep.Infof("%s", line)
		} else {
			rep.Warnf("%s", line)
		}
	}
}

func fatal(rep report.Reporter, err error) {
	code := report.ExitCode(err)
	rep.Errorf("textstats: %v (%d)", err, code)
	os.Exit(code)
}
