package anno

import "sort"

const ansiReset = "\x1b[0m"

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the markup styles used by the annotator. Clean runs carry no
// style of their own; leaving a defect run always writes a reset.
type Styles struct {
	Control            Style
	Encoding           Style
	Overlong           Style
	HighControl        Style
	TrailingWhitespace Style
}

func (s Styles) prefix(cond Condition) string {
	switch cond {
	case Control:
		return s.Control.Prefix
	case Encoding:
		return s.Encoding.Prefix
	case Overlong:
		return s.Overlong.Prefix
	case HighControl:
		return s.HighControl.Prefix
	case TrailingWhitespace:
		return s.TrailingWhitespace.Prefix
	default:
		return ""
	}
}

// Theme provides named styles for defect markup.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// The default theme shares one highlight across the four encoding-level
// defects and keeps a distinct one for trailing whitespace, so a pager shows
// "something is wrong with these bytes" vs "invisible whitespace here".
var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Control:            Style{Prefix: "\x1b[41;97m"},
		Encoding:           Style{Prefix: "\x1b[41;97m"},
		Overlong:           Style{Prefix: "\x1b[41;97m"},
		HighControl:        Style{Prefix: "\x1b[41;97m"},
		TrailingWhitespace: Style{Prefix: "\x1b[43m"},
	}},
	"mono": theme{name: "mono", styles: Styles{
		Control:            Style{Prefix: "\x1b[7m"},
		Encoding:           Style{Prefix: "\x1b[7m"},
		Overlong:           Style{Prefix: "\x1b[7m"},
		HighControl:        Style{Prefix: "\x1b[7m"},
		TrailingWhitespace: Style{Prefix: "\x1b[4m"},
	}},
	"boring": theme{name: "boring", styles: Styles{}},
}

// DefaultTheme returns the standard red/yellow highlight theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
