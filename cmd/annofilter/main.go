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

const defaultThemeName = "default"

func init() {
	version.SetDefaultModule("pkt.systems/anno")
}

func main() {
	var (
		colorMode   string
		themeName   string
		listThemes  bool
		showVersion bool
	)
	flags := pflag.NewFlagSet("annofilter", pflag.ExitOnError)
	flags.StringVarP(&colorMode, "color", "r", "auto", "Color markup: auto|on|off")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: annofilter [flags] [file|URL|-]...\n")
		fmt.Fprintln(os.Stderr, "\nAnnotates encoding and other text problems with color codes for less.")
		fmt.Fprintln(os.Stderr, "Reads stdin when no inputs are given and writes stdout.")
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
	if listThemes {
		for _, name := range anno.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	rep := report.Reporter{}
	colored, err := cli.ResolveColor(colorMode)
	if err != nil {
		rep.Errorf("annofilter: invalid --color %q: %v", colorMode, err)
		os.Exit(2)
	}
	rep.Color = colored
	theme, ok := anno.ThemeByName(themeName)
	if !ok {
		rep.Errorf("annofilter: unknown theme %q", themeName)
		os.Exit(2)
	}
	if !colored {
		theme = boringTheme()
	}

	reader, closer, err := cli.OpenInputs(flags.Args())
	if err != nil {
		fatal(rep, err)
	}
	if err := anno.Annotate(anno.AnnotateRequest{
		Reader: reader,
		Writer: os.Stdout,
		Theme:  theme,
	}); err != nil {
		fatal(rep, err)
	}
	if closer != nil {
		_ = closer.Close()
	}
}

func boringTheme() anno.Theme {
	return anno.NewTheme("boring", anno.Styles{})
}

// fatal reports an I/O failure once, with the system error text and its
// numeric code, and exits with that code.
func fatal(rep report.Reporter, err error) {
	code := report.ExitCode(err)
	rep.Errorf("annofilter: %v (%d)", err, code)
	os.Exit(code)
}
