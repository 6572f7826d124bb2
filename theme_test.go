package anno

import (
	"sort"
	"testing"
)

func TestDefaultThemeMarkup(t *testing.T) {
	styles := DefaultTheme().Styles()
	for _, cond := range []Condition{Control, Encoding, Overlong, HighControl} {
		if got := styles.prefix(cond); got != "\x1b[41;97m" {
			t.Fatalf("%v prefix = %q", cond, got)
		}
	}
	if got := styles.prefix(TrailingWhitespace); got != "\x1b[43m" {
		t.Fatalf("trailing whitespace prefix = %q", got)
	}
	if got := styles.prefix(Clean); got != "" {
		t.Fatalf("clean prefix = %q, want empty", got)
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	theme, ok := ThemeByName("boring")
	if !ok {
		t.Fatalf("boring theme missing")
	}
	styles := theme.Styles()
	for _, cond := range []Condition{Control, Encoding, Overlong, HighControl, TrailingWhitespace} {
		if got := styles.prefix(cond); got != "" {
			t.Fatalf("%v prefix = %q, want empty", cond, got)
		}
	}
}

func TestThemeByNameUnknown(t *testing.T) {
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("expected lookup failure")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("themes not sorted: %v", names)
	}
	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	for _, want := range []string{"default", "boring", "mono"} {
		if !found[want] {
			t.Fatalf("theme %q missing from %v", want, names)
		}
	}
}

func TestConditionString(t *testing.T) {
	cases := map[Condition]string{
		Clean:              "clean",
		Control:            "control",
		Encoding:           "encoding",
		Overlong:           "overlong",
		HighControl:        "high-control",
		TrailingWhitespace: "trailing-whitespace",
		Condition(99):      "unknown",
	}
	for cond, want := range cases {
		if got := cond.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", cond, got, want)
		}
	}
}
